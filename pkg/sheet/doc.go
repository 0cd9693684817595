// Package sheet contains the structural steps that turn a raw spreadsheet
// grid into a normalized table.
//
// Variable sheets are column oriented: the title row is located among the
// first few rows, column titles are resolved to canonical names and the rows
// below become the data. Metadata and additional-information sheets are key
// value lists: labels in the first column are checked for presence and
// reduced to one value per canonical field.
//
// Every function here is pure. None of them produce diagnostics; callers
// decide how findings are reported.
package sheet
