package engine

import (
	"context"
	"fmt"

	"github.com/matthewnyc2/LLM/internal/deploy"
)

// Status reports a target's selection and a preview of the default deploy
// plan, with per-destination existence.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	target, ok := e.targets.Get(req.Target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	sel := e.selections.Load(req.Target)

	result := &StatusResult{
		Target:        target.Name,
		DisplayName:   target.DisplayName,
		LaunchCommand: target.LaunchCommand,
		Servers:       sel.Names(),
	}

	// Timestamp from the persisted record, if one exists
	if records, err := e.selections.List(); err == nil {
		for _, record := range records {
			if record.Target == req.Target {
				result.UpdatedAt = record.UpdatedAt
				break
			}
		}
	}

	classes := deploy.DefaultClasses(e.platform.GOOS)
	dests, err := deploy.Plan(e.targets, req.Target, classes, e.resolver(req.CWD))
	if err != nil {
		return nil, err
	}

	for _, dest := range dests {
		status := DestinationStatus{
			Path:   dest.Path,
			Class:  string(dest.Class),
			Format: string(dest.Format),
		}
		if dest.Err != nil {
			status.Problem = dest.Err.Error()
		} else if exists, err := e.fs.Exists(dest.Path); err == nil {
			status.Exists = exists
		}
		result.Destinations = append(result.Destinations, status)
	}

	return result, nil
}
