package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		// Clear LLM_ROOT env var
		oldRoot := os.Getenv("LLM_ROOT")
		defer os.Setenv("LLM_ROOT", oldRoot)
		os.Unsetenv("LLM_ROOT")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}

		// Verify paths are constructed correctly
		if paths.Selections != filepath.Join(paths.Root, "selections") {
			t.Errorf("Selections path incorrect: got %s", paths.Selections)
		}
		if paths.Templates != filepath.Join(paths.Root, "templates") {
			t.Errorf("Templates path incorrect: got %s", paths.Templates)
		}
		if paths.Generated != filepath.Join(paths.Root, "generated") {
			t.Errorf("Generated path incorrect: got %s", paths.Generated)
		}
		if paths.Catalog != filepath.Join(paths.Root, "catalog.yaml") {
			t.Errorf("Catalog path incorrect: got %s", paths.Catalog)
		}
		if paths.Targets != filepath.Join(paths.Root, "targets.yaml") {
			t.Errorf("Targets path incorrect: got %s", paths.Targets)
		}
		if paths.History != filepath.Join(paths.Root, "history.jsonl") {
			t.Errorf("History path incorrect: got %s", paths.History)
		}

		// Verify root ends with .llm
		if filepath.Base(paths.Root) != ".llm" {
			t.Errorf("Root should end with .llm, got: %s", paths.Root)
		}
	})

	t.Run("respects LLM_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/llm/path"

		oldRoot := os.Getenv("LLM_ROOT")
		defer os.Setenv("LLM_ROOT", oldRoot)

		os.Setenv("LLM_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}

		// Verify other paths use the custom root
		if paths.Selections != filepath.Join(customRoot, "selections") {
			t.Errorf("Selections should be under custom root, got: %s", paths.Selections)
		}
		if paths.History != filepath.Join(customRoot, "history.jsonl") {
			t.Errorf("History should be under custom root, got: %s", paths.History)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	t.Run("creates all necessary directories", func(t *testing.T) {
		tmpDir := t.TempDir()

		root := filepath.Join(tmpDir, "llm")
		paths := &Paths{
			Root:       root,
			Selections: filepath.Join(root, "selections"),
			Templates:  filepath.Join(root, "templates"),
			Generated:  filepath.Join(root, "generated"),
			Catalog:    filepath.Join(root, "catalog.yaml"),
			Targets:    filepath.Join(root, "targets.yaml"),
			History:    filepath.Join(root, "history.jsonl"),
		}

		err := paths.EnsureDirectories()
		if err != nil {
			t.Fatalf("EnsureDirectories failed: %v", err)
		}

		// Verify directories exist
		dirs := []string{paths.Root, paths.Selections, paths.Templates, paths.Generated}
		for _, dir := range dirs {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				t.Errorf("Directory %s was not created", dir)
			}
		}
	})

	t.Run("succeeds if directories already exist", func(t *testing.T) {
		tmpDir := t.TempDir()

		root := filepath.Join(tmpDir, "llm")
		paths := &Paths{
			Root:       root,
			Selections: filepath.Join(root, "selections"),
			Templates:  filepath.Join(root, "templates"),
			Generated:  filepath.Join(root, "generated"),
		}

		// Create directories first
		if err := os.MkdirAll(paths.Selections, 0755); err != nil {
			t.Fatalf("failed to pre-create selections: %v", err)
		}
		if err := os.MkdirAll(paths.Generated, 0755); err != nil {
			t.Fatalf("failed to pre-create generated: %v", err)
		}

		// Should not fail
		err := paths.EnsureDirectories()
		if err != nil {
			t.Errorf("EnsureDirectories should succeed with existing dirs: %v", err)
		}
	})

	t.Run("creates nested directories", func(t *testing.T) {
		tmpDir := t.TempDir()

		// Use deeply nested paths
		deepRoot := filepath.Join(tmpDir, "a", "b", "c", "llm")
		paths := &Paths{
			Root:       deepRoot,
			Selections: filepath.Join(deepRoot, "selections"),
			Templates:  filepath.Join(deepRoot, "templates"),
			Generated:  filepath.Join(deepRoot, "generated"),
		}

		err := paths.EnsureDirectories()
		if err != nil {
			t.Fatalf("EnsureDirectories failed for nested path: %v", err)
		}

		// Verify nested directories exist
		if _, err := os.Stat(deepRoot); os.IsNotExist(err) {
			t.Error("Nested root directory was not created")
		}
	})
}
