package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/matthewnyc2/LLM/internal/catalog"
	"github.com/matthewnyc2/LLM/internal/selection"
)

// ListTargets returns every configured target with its selection count, in
// descriptor order.
func (e *Engine) ListTargets(ctx context.Context) ([]TargetInfo, error) {
	infos := make([]TargetInfo, 0, e.targets.Len())
	for _, target := range e.targets.Targets() {
		infos = append(infos, TargetInfo{
			Name:          target.Name,
			DisplayName:   target.DisplayName,
			LaunchCommand: target.LaunchCommand,
			Format:        string(targetFormat(target)),
			SelectedCount: e.selections.Load(target.Name).Len(),
		})
	}
	return infos, nil
}

// ListServers returns the catalog grouped by category, in catalog order.
// With a target set, each server is marked selected or not for it.
func (e *Engine) ListServers(ctx context.Context, req *ListServersRequest) ([]CategoryInfo, error) {
	var sel selection.Set
	if req.Target != "" {
		if !e.targets.Has(req.Target) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
		}
		sel = e.selections.Load(req.Target)
	}

	var categories []CategoryInfo
	for _, category := range e.catalog.Categories() {
		info := CategoryInfo{Name: category.Name}
		for _, key := range category.Keys {
			def, _ := e.catalog.Get(key)
			info.Servers = append(info.Servers, serverInfo(def, sel))
		}
		categories = append(categories, info)
	}
	return categories, nil
}

// DescribeServer returns full detail for one catalog server, including its
// config block as indented JSON.
func (e *Engine) DescribeServer(ctx context.Context, key string) (*DescribeServerResult, error) {
	def, ok := e.catalog.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServer, key)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, def.Config, "", "  "); err != nil {
		return nil, fmt.Errorf("server %q has invalid config: %w", key, err)
	}

	return &DescribeServerResult{
		ServerInfo: serverInfo(def, nil),
		Config:     buf.String(),
	}, nil
}

func serverInfo(def catalog.Definition, sel selection.Set) ServerInfo {
	return ServerInfo{
		Key:         def.Key,
		Name:        def.Name,
		Description: def.Description,
		Repo:        def.Repo,
		Category:    def.Category,
		Selected:    sel != nil && sel.Has(def.Key),
	}
}
