package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matthewnyc2/LLM/internal/catalog"
	"github.com/matthewnyc2/LLM/internal/clock"
	"github.com/matthewnyc2/LLM/internal/config"
	"github.com/matthewnyc2/LLM/internal/deploy"
	"github.com/matthewnyc2/LLM/internal/engine"
	"github.com/matthewnyc2/LLM/internal/fsops"
	"github.com/matthewnyc2/LLM/internal/history"
	"github.com/matthewnyc2/LLM/internal/project"
	"github.com/matthewnyc2/LLM/internal/selection"
)

// testWorld wires a real engine against a scratch directory: real files,
// real selection store, real history log. Only the clock, project locator
// and platform are pinned so output bytes are reproducible.
type testWorld struct {
	eng *engine.Engine
	dir string
	log history.Log
}

// livePath returns the path of a deploy destination inside the scratch dir.
func (w *testWorld) livePath(name string) string {
	return filepath.Join(w.dir, "live", name)
}

// projectPath returns the path of a per-project destination.
func (w *testWorld) projectPath(name string) string {
	return filepath.Join(w.dir, "repo", name)
}

// templatePath returns the path of a target's template file.
func (w *testWorld) templatePath(name string) string {
	return filepath.Join(w.dir, "llm", "templates", name)
}

func setupTestEngine(t *testing.T) *testWorld {
	t.Helper()

	dir := t.TempDir()
	root := filepath.Join(dir, "llm")

	fs := fsops.NewRealFS()
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	paths := &config.Paths{
		Root:       root,
		Selections: filepath.Join(root, "selections"),
		Templates:  filepath.Join(root, "templates"),
		Generated:  filepath.Join(root, "generated"),
		Catalog:    filepath.Join(root, "catalog.yaml"),
		Targets:    filepath.Join(root, "targets.yaml"),
		History:    filepath.Join(root, "history.jsonl"),
	}

	cat, err := catalog.New([]catalog.Definition{
		{
			Key:      "github",
			Name:     "GitHub",
			Category: "Code",
			Config:   []byte(`{"command": "npx", "args": ["-y", "github-mcp"]}`),
		},
		{
			Key:      "postgres",
			Name:     "PostgreSQL",
			Category: "Databases",
			Config:   []byte(`{"command": "pg-mcp", "env": {"PG_URL": "postgres://localhost/db"}}`),
		},
		{
			Key:      "wiki",
			Name:     "Wiki",
			Category: "Knowledge",
			Config:   []byte(`{"type": "http", "url": "https://wiki.example/mcp"}`),
		},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	targets, err := deploy.New([]deploy.Target{
		{
			Name:          "editor",
			DisplayName:   "Editor",
			LaunchCommand: "editor --mcp",
			Paths: map[deploy.Class][]string{
				deploy.ClassUnix: {
					filepath.Join(dir, "live", "editor.json"),
					filepath.Join(dir, "live", "alt", "editor.json"),
				},
				deploy.ClassProject: {
					"{project_root}/.editor.json",
				},
			},
		},
		{
			Name:        "codex",
			DisplayName: "Codex",
			Paths: map[deploy.Class][]string{
				deploy.ClassUnix: {
					filepath.Join(dir, "live", "config.toml"),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to build targets: %v", err)
	}

	locator := project.NewFakeLocator(filepath.Join(dir, "repo"))
	selections := selection.NewFileStore(fs, paths.Selections, clk)
	log := history.NewFileLog(fs, paths.History, clk)
	platform := engine.Platform{
		GOOS: "linux",
		Home: filepath.Join(dir, "home"),
		Lookup: func(string) (string, bool) {
			return "", false
		},
	}

	eng := engine.New(fs, clk, locator, cat, targets, selections, log, paths, platform)
	return &testWorld{eng: eng, dir: dir, log: log}
}

// seedFile writes a pre-existing destination file, creating parents.
func seedFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed %s: %v", path, err)
	}
}

// readFile reads a destination file written by a deploy.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
