package engine

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDeploy_WritesAllDestinations(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// unix destination + project destination
	if len(result.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(result.Results))
	}
	if result.Written() != 2 || result.Failed() != 0 {
		t.Errorf("written=%d failed=%d, want 2 written, 0 failed", result.Written(), result.Failed())
	}
	if !reflect.DeepEqual(result.Classes, []string{"unix", "project"}) {
		t.Errorf("Classes = %v, want [unix project]", result.Classes)
	}

	livePath := filepath.Join(env.dir, "live", "demo.json")
	data, err := os.ReadFile(livePath)
	if err != nil {
		t.Fatalf("live config not written: %v", err)
	}
	want := "{\n  \"mcpServers\": {\n    \"github\": {\n      \"command\": \"npx\",\n      \"args\": [\n        \"github-mcp\"\n      ]\n    }\n  }\n}\n"
	if string(data) != want {
		t.Errorf("live config = %q, want %q", string(data), want)
	}

	projectPath := filepath.Join(env.dir, "repo", ".demo.json")
	if _, err := os.Stat(projectPath); err != nil {
		t.Errorf("project config not written: %v", err)
	}
}

func TestDeploy_SecondRunIsUnchanged(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo"}); err != nil {
		t.Fatalf("first deploy failed: %v", err)
	}

	result, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo"})
	if err != nil {
		t.Fatalf("second deploy failed: %v", err)
	}
	if result.Unchanged() != 2 || result.Written() != 0 {
		t.Errorf("unchanged=%d written=%d, want all unchanged", result.Unchanged(), result.Written())
	}
}

func TestDeploy_EmptySelectionRefused(t *testing.T) {
	env := newTestEngine(t)

	_, err := env.eng.Deploy(context.Background(), &DeployRequest{Target: "demo"})
	assertErrorIs(t, err, ErrEmptySelection)
}

func TestDeploy_UnknownTarget(t *testing.T) {
	env := newTestEngine(t)

	_, err := env.eng.Deploy(context.Background(), &DeployRequest{Target: "ghost"})
	assertErrorIs(t, err, ErrUnknownTarget)
}

func TestDeploy_BadClassName(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	_, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo", Classes: []string{"mac"}})
	if err == nil || !strings.Contains(err.Error(), "unknown deployment class") {
		t.Errorf("got %v, want unknown deployment class error", err)
	}
}

func TestDeploy_DryRunWritesNothing(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo", DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Written() != 2 {
		t.Errorf("dry run should report 2 would-be writes, got %d", result.Written())
	}
	if _, err := os.Stat(filepath.Join(env.dir, "live", "demo.json")); !os.IsNotExist(err) {
		t.Error("dry run wrote the live config")
	}

	// Dry runs are previews, not events
	for _, entry := range env.log.Entries {
		if entry.Event == "deploy" {
			t.Error("dry run must not be recorded in history")
		}
	}
}

func TestDeploy_PartialFailureIsolation(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	// Break the first (unix) destination so only project can be written
	livePath := filepath.Join(env.dir, "live", "demo.json")
	if err := os.MkdirAll(filepath.Dir(livePath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(livePath, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo"})
	if err != nil {
		t.Fatalf("deploy must not fail as a whole: %v", err)
	}
	if result.Failed() != 1 || result.Written() != 1 {
		t.Errorf("failed=%d written=%d, want 1 and 1", result.Failed(), result.Written())
	}

	// The broken file is untouched, the sibling was written
	data, _ := os.ReadFile(livePath)
	if string(data) != "{broken" {
		t.Errorf("broken destination modified: %q", string(data))
	}
	if _, err := os.Stat(filepath.Join(env.dir, "repo", ".demo.json")); err != nil {
		t.Errorf("healthy sibling not written: %v", err)
	}
}

func TestDeploy_TOMLTarget(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "codex", Servers: []string{"postgres"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := env.eng.Deploy(ctx, &DeployRequest{Target: "codex", Classes: []string{"unix"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Written() != 1 {
		t.Fatalf("written = %d, want 1", result.Written())
	}

	data, err := os.ReadFile(filepath.Join(env.dir, "live", "config.toml"))
	if err != nil {
		t.Fatalf("toml config not written: %v", err)
	}
	want := "[mcp_servers.postgres]\ncommand = \"pg-mcp\"\n"
	if string(data) != want {
		t.Errorf("toml config = %q, want %q", string(data), want)
	}
}

func TestDeploy_RecordsHistoryCounts(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo"}); err != nil {
		t.Fatalf("deploy failed: %v", err)
	}

	entry := env.lastEvent(t)
	if entry.Event != "deploy" {
		t.Fatalf("event = %q, want %q", entry.Event, "deploy")
	}
	if entry.Details["written"] != "2" || entry.Details["failed"] != "0" {
		t.Errorf("details = %v, want written=2 failed=0", entry.Details)
	}
}

func TestStatus_ReportsSelectionAndPlan(t *testing.T) {
	env := newTestEngine(t)
	ctx := context.Background()

	if _, err := env.eng.Select(ctx, &SelectRequest{Target: "demo", Servers: []string{"github", "wiki"}}); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := env.eng.Deploy(ctx, &DeployRequest{Target: "demo", Classes: []string{"unix"}}); err != nil {
		t.Fatalf("deploy failed: %v", err)
	}

	result, err := env.eng.Status(ctx, &StatusRequest{Target: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DisplayName != "Demo Tool" || result.LaunchCommand != "demo" {
		t.Errorf("got display=%q launch=%q", result.DisplayName, result.LaunchCommand)
	}
	if !reflect.DeepEqual(result.Servers, []string{"github", "wiki"}) {
		t.Errorf("Servers = %v, want [github wiki]", result.Servers)
	}
	if result.UpdatedAt != "2024-01-15T10:30:00Z" {
		t.Errorf("UpdatedAt = %q, want the fake clock timestamp", result.UpdatedAt)
	}
	if len(result.Destinations) != 2 {
		t.Fatalf("got %d destinations, want 2", len(result.Destinations))
	}
	if !result.Destinations[0].Exists {
		t.Error("deployed unix destination should report Exists")
	}
	if result.Destinations[1].Exists {
		t.Error("never-deployed project destination should not report Exists")
	}
}

func TestStatus_UnknownTarget(t *testing.T) {
	env := newTestEngine(t)

	_, err := env.eng.Status(context.Background(), &StatusRequest{Target: "ghost"})
	assertErrorIs(t, err, ErrUnknownTarget)
}
