package engine

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/matthewnyc2/LLM/internal/template"
)

// Generate renders a target's preview config from its source template into
// the generated directory. Live destinations are never touched: generate is
// how a selection is inspected before a deploy, and how users of tools llm
// does not deploy to copy a ready-made block.
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	target, ok := e.targets.Get(req.Target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	format := targetFormat(target)
	templatePath := e.templatePath(target)

	var doc *template.Document
	text, err := e.fs.ReadFile(templatePath)
	switch {
	case err == nil:
		doc, err = template.Parse(text, format, e.qualifier())
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", templatePath, err)
		}
	case os.IsNotExist(err):
		templatePath = ""
	default:
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	sel := e.selections.Load(req.Target)
	rendered, err := template.Render(doc, sel, e.catalog, format)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", req.Target, err)
	}

	outputPath := e.generatedPath(target)
	if err := e.fs.AtomicWrite(outputPath, rendered, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	e.record("generate", map[string]string{
		"target":  req.Target,
		"servers": strings.Join(sel.Names(), ","),
	})

	return &GenerateResult{
		Target:       req.Target,
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		Servers:      sel.Names(),
	}, nil
}
