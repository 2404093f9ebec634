// Package config manages llm configuration and filesystem paths.
//
// Configuration includes the locations of llm data directories, which can
// be customized via environment variables. The default root is ~/.llm/
// containing selections/, templates/, generated/, the optional catalog and
// target override files, and the deploy history log.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by llm.
type Paths struct {
	// Root is the base directory for all llm data (default: ~/.llm)
	Root string

	// Selections is the directory containing per-target selection files
	Selections string

	// Templates is the directory containing per-target source templates
	Templates string

	// Generated is the directory rendered previews are written to
	Generated string

	// Catalog is the path to the optional user catalog extension file
	Catalog string

	// Targets is the path to the optional target override file
	Targets string

	// History is the path to the deploy history log
	History string
}

// DefaultPaths returns the default paths for llm.
// Paths can be overridden with environment variables:
// - LLM_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("LLM_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".llm")
	}

	return &Paths{
		Root:       root,
		Selections: filepath.Join(root, "selections"),
		Templates:  filepath.Join(root, "templates"),
		Generated:  filepath.Join(root, "generated"),
		Catalog:    filepath.Join(root, "catalog.yaml"),
		Targets:    filepath.Join(root, "targets.yaml"),
		History:    filepath.Join(root, "history.jsonl"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Selections,
		p.Templates,
		p.Generated,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
