package cli

import (
	"encoding/json"
	"fmt"
	"os"

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

// newEngine creates a new engine with real implementations of all
// dependencies. The builtin catalog and targets are extended by the
// user's catalog.yaml and targets.yaml when present.
func newEngine() (*engine.Engine, error) {
	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	clk := &clock.RealClock{}
	locator := project.NewGitLocator()

	userCatalog, err := catalog.LoadFile(fs, paths.Catalog)
	if err != nil {
		return nil, err
	}
	cat := catalog.Merge(catalog.Builtin(), userCatalog)

	userTargets, err := deploy.LoadFile(fs, paths.Targets)
	if err != nil {
		return nil, err
	}
	targets := deploy.Merge(deploy.Builtin(), userTargets)

	selections := selection.NewFileStore(fs, paths.Selections, clk)
	log := history.NewFileLog(fs, paths.History, clk)

	// Create engine
	return engine.New(fs, clk, locator, cat, targets, selections, log, paths, engine.HostPlatform()), nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
