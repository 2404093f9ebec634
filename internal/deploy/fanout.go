package deploy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matthewnyc2/LLM/internal/catalog"
	"github.com/matthewnyc2/LLM/internal/fsops"
	"github.com/matthewnyc2/LLM/internal/selection"
	"github.com/matthewnyc2/LLM/internal/template"
)

// Result is the outcome for one destination.
type Result struct {
	Path   string
	Class  Class
	Format template.Format

	// Created means the file did not exist before this deploy.
	Created bool

	// Unchanged means the rendered content matched the file byte-for-byte,
	// so no write happened.
	Unchanged bool

	Err error
}

// Failed reports whether the destination was not brought up to date.
func (r Result) Failed() bool {
	return r.Err != nil
}

// MarshalJSON flattens Err to its message so results serialize cleanly.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Path      string          `json:"path"`
		Class     Class           `json:"class"`
		Format    template.Format `json:"format"`
		Created   bool            `json:"created,omitempty"`
		Unchanged bool            `json:"unchanged,omitempty"`
		Error     string          `json:"error,omitempty"`
	}{Path: r.Path, Class: r.Class, Format: r.Format, Created: r.Created, Unchanged: r.Unchanged}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// Fanout merges a selection into every planned destination.
type Fanout struct {
	fs        fsops.FS
	catalog   *catalog.Catalog
	qualifier string
}

// NewFanout creates a Fanout. qualifier selects which TOML section variant
// is ours when a destination file carries per-OS sections.
func NewFanout(fs fsops.FS, cat *catalog.Catalog, qualifier string) *Fanout {
	return &Fanout{fs: fs, catalog: cat, qualifier: qualifier}
}

// Deploy processes destinations strictly in order, one result per
// destination. It never returns an error itself: every failure is local to
// its destination, and a bad path cannot abort the siblings after it. With
// dryRun set nothing is written; results report what a real run would do.
func (f *Fanout) Deploy(dests []Destination, sel selection.Set, dryRun bool) []Result {
	results := make([]Result, 0, len(dests))
	for _, dest := range dests {
		results = append(results, f.deployOne(dest, sel, dryRun))
	}
	return results
}

func (f *Fanout) deployOne(dest Destination, sel selection.Set, dryRun bool) Result {
	res := Result{Path: dest.Path, Class: dest.Class, Format: dest.Format}
	if dest.Err != nil {
		res.Err = dest.Err
		return res
	}

	existing, err := f.fs.ReadFile(dest.Path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		res.Err = fmt.Errorf("failed to read %s: %w", dest.Path, err)
		return res
	}

	// An absent file renders from scratch; an unreadable one is left alone
	var doc *template.Document
	if exists {
		doc, err = template.Parse(existing, dest.Format, f.qualifier)
		if err != nil {
			res.Err = fmt.Errorf("cannot update %s: %w", dest.Path, err)
			return res
		}
	}

	rendered, err := template.Render(doc, sel, f.catalog, dest.Format)
	if err != nil {
		res.Err = fmt.Errorf("cannot render %s: %w", dest.Path, err)
		return res
	}

	if exists && bytes.Equal(existing, rendered) {
		res.Unchanged = true
		return res
	}

	res.Created = !exists
	if dryRun {
		return res
	}
	if err := f.fs.AtomicWrite(dest.Path, rendered, 0644); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", dest.Path, err)
		return res
	}
	return res
}
