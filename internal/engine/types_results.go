package engine

import (
	"github.com/matthewnyc2/LLM/internal/deploy"
	"github.com/matthewnyc2/LLM/internal/history"
)

// SelectResult represents the result of a selection change.
type SelectResult struct {
	// Target is the tool whose selection changed
	Target string `json:"target"`

	// Selected is the full selection after the change, sorted
	Selected []string `json:"selected"`

	// Added lists servers newly added by this call
	Added []string `json:"added,omitempty"`

	// Removed lists servers removed by this call
	Removed []string `json:"removed,omitempty"`

	// Skipped lists requested names that were ignored: unknown to the
	// catalog on select, not in the selection on deselect
	Skipped []string `json:"skipped,omitempty"`
}

// ClearResult represents the result of clearing a selection.
type ClearResult struct {
	// Target is the tool whose selection was cleared
	Target string `json:"target"`

	// Cleared lists the servers that were selected before the clear
	Cleared []string `json:"cleared,omitempty"`
}

// DestinationStatus describes one planned destination path.
type DestinationStatus struct {
	Path   string `json:"path"`
	Class  string `json:"class"`
	Format string `json:"format"`

	// Exists reports whether a file is already present at the path
	Exists bool `json:"exists"`

	// Problem is set when the destination cannot be deployed to
	Problem string `json:"problem,omitempty"`
}

// StatusResult represents a target's current selection and deploy plan.
type StatusResult struct {
	Target        string `json:"target"`
	DisplayName   string `json:"display_name"`
	LaunchCommand string `json:"launch_command,omitempty"`

	// Servers is the sorted selection
	Servers []string `json:"servers"`

	// UpdatedAt is when the selection was last saved, empty if never
	UpdatedAt string `json:"updated_at,omitempty"`

	// Destinations previews the default-class deploy plan
	Destinations []DestinationStatus `json:"destinations"`
}

// DeployResult represents the result of one deploy operation.
type DeployResult struct {
	// Target is the tool deployed to
	Target string `json:"target"`

	// Servers is the selection that was deployed, sorted
	Servers []string `json:"servers"`

	// Classes are the deployment classes the plan covered
	Classes []string `json:"classes"`

	// DryRun reports whether writes were suppressed
	DryRun bool `json:"dry_run,omitempty"`

	// Results holds one entry per destination, in plan order
	Results []deploy.Result `json:"results"`
}

// Written counts destinations actually brought up to date by a write.
func (r *DeployResult) Written() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && !res.Unchanged {
			n++
		}
	}
	return n
}

// Unchanged counts destinations already up to date.
func (r *DeployResult) Unchanged() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && res.Unchanged {
			n++
		}
	}
	return n
}

// Failed counts destinations that could not be updated.
func (r *DeployResult) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// GenerateResult represents the result of rendering a preview config.
type GenerateResult struct {
	// Target is the tool the preview is for
	Target string `json:"target"`

	// TemplatePath is the source template, empty if none existed
	TemplatePath string `json:"template_path,omitempty"`

	// OutputPath is the rendered preview file
	OutputPath string `json:"output_path"`

	// Servers is the selection that was rendered, sorted
	Servers []string `json:"servers"`
}

// TargetInfo summarizes one configured target.
type TargetInfo struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	LaunchCommand string `json:"launch_command,omitempty"`
	Format        string `json:"format"`

	// SelectedCount is how many servers are selected for this target
	SelectedCount int `json:"selected_count"`
}

// ServerInfo summarizes one catalog server.
type ServerInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Repo        string `json:"repo,omitempty"`
	Category    string `json:"category"`

	// Selected is set when the listing was scoped to a target
	Selected bool `json:"selected,omitempty"`
}

// CategoryInfo groups servers under their catalog category.
type CategoryInfo struct {
	Name    string       `json:"name"`
	Servers []ServerInfo `json:"servers"`
}

// DescribeServerResult is the full detail for one catalog server.
type DescribeServerResult struct {
	ServerInfo

	// Config is the server's config block as indented JSON
	Config string `json:"config"`
}

// InitResult represents the result of initializing the llm root.
type InitResult struct {
	// Root is the llm data directory
	Root string `json:"root"`

	// Created lists the files this init wrote, in creation order
	Created []string `json:"created,omitempty"`
}

// HistoryResult represents logged events, oldest first.
type HistoryResult struct {
	Entries []history.Entry `json:"entries"`
}
