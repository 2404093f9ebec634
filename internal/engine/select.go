package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthewnyc2/LLM/internal/selection"
)

// Select adds servers to a target's selection, or replaces it outright.
// Unknown server names are skipped and reported, never fatal: the selection
// that results contains every requested server the catalog knows.
func (e *Engine) Select(ctx context.Context, req *SelectRequest) (*SelectResult, error) {
	if !e.targets.Has(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	var valid, skipped []string
	for _, name := range req.Servers {
		if e.catalog.Has(name) {
			valid = append(valid, name)
		} else {
			skipped = append(skipped, name)
		}
	}

	current := e.selections.Load(req.Target)
	next := selection.NewSet(valid...)
	if !req.Replace {
		next = current.Union(next)
	}

	var added []string
	for _, name := range valid {
		if !current.Has(name) {
			added = append(added, name)
		}
	}

	if err := e.selections.Save(req.Target, next); err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}

	e.record("select", map[string]string{
		"target":  req.Target,
		"servers": strings.Join(next.Names(), ","),
	})

	return &SelectResult{
		Target:   req.Target,
		Selected: next.Names(),
		Added:    added,
		Skipped:  skipped,
	}, nil
}

// Deselect removes servers from a target's selection. Names not currently
// selected are skipped and reported. No catalog check here: a server removed
// from the catalog must still be deselectable.
func (e *Engine) Deselect(ctx context.Context, req *DeselectRequest) (*SelectResult, error) {
	if !e.targets.Has(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	current := e.selections.Load(req.Target)
	next := current.Clone()

	var removed, skipped []string
	for _, name := range req.Servers {
		if next.Has(name) {
			next.Remove(name)
			removed = append(removed, name)
		} else {
			skipped = append(skipped, name)
		}
	}

	if err := e.selections.Save(req.Target, next); err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}

	e.record("deselect", map[string]string{
		"target":  req.Target,
		"servers": strings.Join(removed, ","),
	})

	return &SelectResult{
		Target:   req.Target,
		Selected: next.Names(),
		Removed:  removed,
		Skipped:  skipped,
	}, nil
}

// ClearSelection drops a target's selection entirely.
func (e *Engine) ClearSelection(ctx context.Context, req *ClearRequest) (*ClearResult, error) {
	if !e.targets.Has(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	cleared := e.selections.Load(req.Target).Names()
	if err := e.selections.Clear(req.Target); err != nil {
		return nil, fmt.Errorf("failed to clear selection: %w", err)
	}

	e.record("clear", map[string]string{"target": req.Target})

	return &ClearResult{Target: req.Target, Cleared: cleared}, nil
}
