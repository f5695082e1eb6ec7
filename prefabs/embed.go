package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml scenarios/*.yaml
var PrefabsFS embed.FS

// Dir is the on-disk prefab directory that overrides the embedded copies.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ListScenarios returns the scenario names found embedded or on disk, sorted.
func ListScenarios() ([]string, error) {
	seen := map[string]bool{}
	embedded, err := fs.Glob(PrefabsFS, "scenarios/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list scenarios: %w", err)
	}
	onDisk, _ := filepath.Glob(filepath.Join(Dir, "scenarios", "*.yaml"))
	for _, p := range append(embedded, onDisk...) {
		name := strings.TrimSuffix(path.Base(filepath.ToSlash(p)), ".yaml")
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func scenarioPath(name string) string {
	name = strings.TrimSuffix(cleanPrefabPath(name), ".yaml")
	name = strings.TrimPrefix(name, "scenarios/")
	return "scenarios/" + name + ".yaml"
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}

	s := filepath.ToSlash(name)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
