// Package project locates the project root used for per-project deployments.
//
// Destination paths in the project deployment class contain a {project_root}
// placeholder. The locator resolves it by walking up from the working
// directory looking for a git repository, the same heuristic editors use.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator finds the project root for a starting directory.
type Locator interface {
	// Root returns the project root for the given start directory.
	// Returns an error if no project can be found.
	Root(start string) (string, error)
}

// GitLocator implements Locator by walking up to the enclosing git repository.
type GitLocator struct{}

// NewGitLocator creates a new GitLocator.
func NewGitLocator() *GitLocator {
	return &GitLocator{}
}

// Root finds the project root by walking up from start looking for a .git entry.
func (l *GitLocator) Root(start string) (string, error) {
	absPath, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root directory
			return "", fmt.Errorf("not in a git repository")
		}
		current = parent
	}
}

// FakeLocator implements Locator with a predetermined root for testing.
type FakeLocator struct {
	root string
	err  error
}

// NewFakeLocator creates a new FakeLocator.
func NewFakeLocator(root string) *FakeLocator {
	return &FakeLocator{root: root}
}

// SetError sets an error to be returned by Root.
func (l *FakeLocator) SetError(err error) {
	l.err = err
}

// Root returns the predetermined root.
func (l *FakeLocator) Root(start string) (string, error) {
	if l.err != nil {
		return "", l.err
	}
	return l.root, nil
}
