package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matthewnyc2/LLM/internal/deploy"
)

// Deploy fans a target's selection out to its config destinations.
//
// The plan covers the requested classes, defaulting to this host's
// machine-global class plus project. Every destination gets its own result;
// once the target and selection check out, the operation itself cannot fail.
func (e *Engine) Deploy(ctx context.Context, req *DeployRequest) (*DeployResult, error) {
	if !e.targets.Has(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	sel := e.selections.Load(req.Target)
	if sel.Empty() {
		return nil, fmt.Errorf("%w for target %q", ErrEmptySelection, req.Target)
	}

	classes, err := resolveClasses(req.Classes, e.platform.GOOS)
	if err != nil {
		return nil, err
	}

	dests, err := deploy.Plan(e.targets, req.Target, classes, e.resolver(req.CWD))
	if err != nil {
		return nil, err
	}

	fanout := deploy.NewFanout(e.fs, e.catalog, e.qualifier())
	results := fanout.Deploy(dests, sel, req.DryRun)

	result := &DeployResult{
		Target:  req.Target,
		Servers: sel.Names(),
		Classes: classNames(classes),
		DryRun:  req.DryRun,
		Results: results,
	}

	if !req.DryRun {
		e.record("deploy", map[string]string{
			"target":    req.Target,
			"classes":   strings.Join(result.Classes, ","),
			"written":   strconv.Itoa(result.Written()),
			"unchanged": strconv.Itoa(result.Unchanged()),
			"failed":    strconv.Itoa(result.Failed()),
		})
	}

	return result, nil
}

// resolveClasses parses requested class names, falling back to the host
// defaults when none are given.
func resolveClasses(names []string, goos string) ([]deploy.Class, error) {
	if len(names) == 0 {
		return deploy.DefaultClasses(goos), nil
	}

	classes := make([]deploy.Class, 0, len(names))
	for _, name := range names {
		class, err := deploy.ParseClass(name)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

func classNames(classes []deploy.Class) []string {
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = string(class)
	}
	return names
}
