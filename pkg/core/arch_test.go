package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/idp-tools/codebook"

// packageImports returns the imports of every non-test file in dir, keyed
// by file name.
func packageImports(t *testing.T, dir string) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[path] = append(imports[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnlyStdlib verifies pkg/core depends on nothing but the
// standard library, so every stage can share its result types.
func TestCoreImportsOnlyStdlib(t *testing.T) {
	for file, imports := range packageImports(t, ".") {
		for _, imp := range imports {
			// stdlib paths have no dot in their first element
			if strings.Contains(strings.SplitN(imp, "/", 2)[0], ".") {
				t.Errorf("%s imports non-stdlib package: %s", file, imp)
			}
		}
	}
}

// TestPkgDoesNotImportInternal verifies no public package reaches into
// internal/ or the CLI.
func TestPkgDoesNotImportInternal(t *testing.T) {
	entries, err := os.ReadDir("..")
	if err != nil {
		t.Fatalf("Failed to read pkg directory: %v", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for file, imports := range packageImports(t, filepath.Join("..", entry.Name())) {
			for _, imp := range imports {
				if strings.HasPrefix(imp, modulePath+"/internal/") {
					t.Errorf("%s imports internal package: %s (pkg must not import internal packages)", file, imp)
				}
			}
		}
	}
}

// TestEngineDoesNotImportCritic verifies the lower layers never import the
// orchestrator that sits on top of them.
func TestEngineDoesNotImportCritic(t *testing.T) {
	lower := []string{"core", "fuzzy", "table", "sheet", "schema", "codebook"}
	for _, name := range lower {
		for file, imports := range packageImports(t, filepath.Join("..", name)) {
			for _, imp := range imports {
				if imp == modulePath+"/pkg/critic" || imp == modulePath+"/pkg/workbook" {
					t.Errorf("%s imports %s (lower layers must not depend on it)", file, imp)
				}
			}
		}
	}
}
