// Package engine provides the core business logic for llm operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It coordinates target lookup, selection state,
// template parsing and rendering, and the deployment fanout.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Select/Deselect/Clear: Manages per-target server selections
//   - Deploy: Fans the selection out to a target's config destinations
//   - Generate: Renders a preview from the target's source template
package engine

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/matthewnyc2/LLM/internal/catalog"
	"github.com/matthewnyc2/LLM/internal/clock"
	"github.com/matthewnyc2/LLM/internal/config"
	"github.com/matthewnyc2/LLM/internal/deploy"
	"github.com/matthewnyc2/LLM/internal/fsops"
	"github.com/matthewnyc2/LLM/internal/history"
	"github.com/matthewnyc2/LLM/internal/project"
	"github.com/matthewnyc2/LLM/internal/selection"
	"github.com/matthewnyc2/LLM/internal/template"
)

// Platform describes the host the engine deploys on.
type Platform struct {
	// GOOS decides the default deployment classes and TOML qualifier.
	GOOS string

	// Home is the user home directory used for `~` expansion.
	Home string

	// Lookup resolves environment variables in path templates.
	Lookup func(name string) (string, bool)
}

// HostPlatform returns the Platform of the running process.
func HostPlatform() Platform {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Platform{GOOS: runtime.GOOS, Home: home, Lookup: os.LookupEnv}
}

// Engine orchestrates all llm operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs         fsops.FS
	clock      clock.Clock
	locator    project.Locator
	catalog    *catalog.Catalog
	targets    *deploy.Descriptor
	selections selection.Store
	history    history.Log
	paths      *config.Paths
	platform   Platform
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	clk clock.Clock,
	locator project.Locator,
	cat *catalog.Catalog,
	targets *deploy.Descriptor,
	selections selection.Store,
	log history.Log,
	paths *config.Paths,
	platform Platform,
) *Engine {
	return &Engine{
		fs:         fs,
		clock:      clk,
		locator:    locator,
		catalog:    cat,
		targets:    targets,
		selections: selections,
		history:    log,
		paths:      paths,
		platform:   platform,
	}
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Targets returns the target descriptor the engine was built with.
func (e *Engine) Targets() *deploy.Descriptor {
	return e.targets
}

// qualifier is the TOML section qualifier for this host.
func (e *Engine) qualifier() string {
	return deploy.Qualifier(e.platform.GOOS)
}

// resolver builds a path resolver rooted at cwd.
func (e *Engine) resolver(cwd string) *deploy.Resolver {
	if cwd == "" {
		cwd = "."
	}
	return deploy.NewResolver(e.platform.Home, e.platform.Lookup, e.locator, cwd)
}

// targetFormat is the config format a target's template and preview use,
// taken from the target's own destination paths.
func targetFormat(target deploy.Target) template.Format {
	for _, class := range deploy.Classes() {
		for _, path := range target.Paths[class] {
			if format, err := template.FormatForPath(path); err == nil {
				return format
			}
		}
	}
	return template.FormatJSON
}

// templatePath is where the target's source template lives.
func (e *Engine) templatePath(target deploy.Target) string {
	return filepath.Join(e.paths.Templates, target.Name+string(formatExt(target)))
}

// generatedPath is where the target's rendered preview is written.
func (e *Engine) generatedPath(target deploy.Target) string {
	return filepath.Join(e.paths.Generated, target.Name+string(formatExt(target)))
}

type fileExt string

func formatExt(target deploy.Target) fileExt {
	if targetFormat(target) == template.FormatTOML {
		return ".toml"
	}
	return ".json"
}

// record appends a history entry, best effort. History failures never fail
// the operation they describe.
func (e *Engine) record(event string, details map[string]string) {
	_ = e.history.Append(event, details)
}
