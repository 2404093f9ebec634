package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/matthewnyc2/LLM/internal/selection"
)

func TestSelect_AddsAndMerges(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	result, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github", "wiki"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"github", "wiki"}) {
		t.Errorf("Selected = %v, want [github wiki]", result.Selected)
	}
	if !reflect.DeepEqual(result.Added, []string{"github", "wiki"}) {
		t.Errorf("Added = %v, want [github wiki]", result.Added)
	}

	// A second select merges and reports only the new server as added
	result, err = env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"postgres", "github"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"github", "postgres", "wiki"}) {
		t.Errorf("Selected = %v, want [github postgres wiki]", result.Selected)
	}
	if !reflect.DeepEqual(result.Added, []string{"postgres"}) {
		t.Errorf("Added = %v, want [postgres]", result.Added)
	}

	// Persisted
	saved := env.selections.Load("demo")
	if saved.Len() != 3 {
		t.Errorf("persisted selection has %d servers, want 3", saved.Len())
	}
}

func TestSelect_ReplaceSwapsSelection(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github", "wiki"}}); err != nil {
		t.Fatalf("first select failed: %v", err)
	}

	result, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"postgres"}, Replace: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"postgres"}) {
		t.Errorf("Selected = %v, want [postgres]", result.Selected)
	}
}

func TestSelect_SkipsUnknownServers(t *testing.T) {
	env := newTestEngine(t)

	result, err := env.eng.Select(context.Background(), &SelectRequest{
		Target:  "demo",
		Servers: []string{"github", "no-such-server", "also-missing"},
	})
	if err != nil {
		t.Fatalf("unknown servers must not be fatal, got: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"github"}) {
		t.Errorf("Selected = %v, want [github]", result.Selected)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"no-such-server", "also-missing"}) {
		t.Errorf("Skipped = %v, want the two unknown names", result.Skipped)
	}
}

func TestSelect_UnknownTarget(t *testing.T) {
	env := newTestEngine(t)

	_, err := env.eng.Select(context.Background(), &SelectRequest{Target: "ghost", Servers: []string{"github"}})
	assertErrorIs(t, err, ErrUnknownTarget)
}

func TestSelect_RecordsHistory(t *testing.T) {
	env := newTestEngine(t)

	if _, err := env.eng.Select(context.Background(), &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	entry := env.lastEvent(t)
	if entry.Event != "select" {
		t.Errorf("event = %q, want %q", entry.Event, "select")
	}
	if entry.Details["target"] != "demo" {
		t.Errorf("details target = %q, want %q", entry.Details["target"], "demo")
	}
}

func TestDeselect_RemovesAndSkips(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github", "wiki"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := env.eng.Deselect(ctx, &DeselectRequest{Target: "demo", Servers: []string{"wiki", "postgres"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"github"}) {
		t.Errorf("Selected = %v, want [github]", result.Selected)
	}
	if !reflect.DeepEqual(result.Removed, []string{"wiki"}) {
		t.Errorf("Removed = %v, want [wiki]", result.Removed)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"postgres"}) {
		t.Errorf("Skipped = %v, want [postgres]", result.Skipped)
	}
}

// A server that has left the catalog must still be deselectable, otherwise a
// catalog change could strand a selection.
func TestDeselect_WorksForServersGoneFromCatalog(t *testing.T) {
	env := newTestEngine(t)

	if err := env.selections.Save("demo", selection.NewSet("retired-server", "github")); err != nil {
		t.Fatalf("failed to seed selection: %v", err)
	}

	result, err := env.eng.Deselect(context.Background(), &DeselectRequest{Target: "demo", Servers: []string{"retired-server"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Selected, []string{"github"}) {
		t.Errorf("Selected = %v, want [github]", result.Selected)
	}
}

func TestClearSelection(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github", "postgres"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := env.eng.ClearSelection(ctx, &ClearRequest{Target: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Cleared, []string{"github", "postgres"}) {
		t.Errorf("Cleared = %v, want [github postgres]", result.Cleared)
	}

	if !env.selections.Load("demo").Empty() {
		t.Error("selection still present after clear")
	}

	// Clearing an already-empty selection is fine
	if _, err := env.eng.ClearSelection(ctx, &ClearRequest{Target: "demo"}); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}

// Selections are per target: changing one must not touch another.
func TestSelect_TargetsAreIndependent(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select demo failed: %v", err)
	}
	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "codex", Servers: []string{"postgres"}}); err != nil {
		t.Fatalf("select codex failed: %v", err)
	}
	if _, err := env.eng.ClearSelection(ctx, &ClearRequest{Target: "codex"}); err != nil {
		t.Fatalf("clear codex failed: %v", err)
	}

	demo := env.selections.Load("demo").Names()
	if !reflect.DeepEqual(demo, []string{"github"}) {
		t.Errorf("demo selection = %v, want [github]", demo)
	}
}
