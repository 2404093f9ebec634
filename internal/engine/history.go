package engine

import (
	"context"
	"fmt"
)

// History returns logged events, oldest first.
func (e *Engine) History(ctx context.Context, req *HistoryRequest) (*HistoryResult, error) {
	entries, err := e.history.Tail(req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return &HistoryResult{Entries: entries}, nil
}
