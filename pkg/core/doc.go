// Package core defines the diagnostic types shared by every critique stage.
//
// A TestResult is one severity-tagged finding. Stages append results to an
// ordered slice that is threaded through the pipeline as an explicit return
// value; the order of the slice is the order in which checks ran.
package core
