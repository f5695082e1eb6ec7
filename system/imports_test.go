package system

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The simulation packages must build without a window toolkit so headless
// runs work on machines without cgo or X11.
func TestSimulationPackagesAvoidEbiten(t *testing.T) {
	dirs := []string{".", "../obj", "../ecs", "../ecs/component", "../ecs/entity", "../ecs/system", "../physics", "../prefabs", "../common"}
	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(dir, "*.go"))
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) == 0 {
				t.Fatalf("no go files in %s", dir)
			}
			fset := token.NewFileSet()
			for _, name := range files {
				f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
				if err != nil {
					t.Fatalf("parse %s: %v", name, err)
				}
				for _, imp := range f.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					if strings.Contains(path, "ebiten") {
						t.Fatalf("%s imports %s", name, path)
					}
				}
			}
		})
	}
}
