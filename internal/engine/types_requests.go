package engine

// SelectRequest represents a request to add servers to a target's selection.
type SelectRequest struct {
	// Target is the tool whose selection changes
	Target string

	// Servers are the catalog keys to select
	Servers []string

	// Replace swaps the whole selection instead of merging
	Replace bool
}

// DeselectRequest represents a request to remove servers from a selection.
type DeselectRequest struct {
	// Target is the tool whose selection changes
	Target string

	// Servers are the keys to remove
	Servers []string
}

// ClearRequest represents a request to drop a target's selection entirely.
type ClearRequest struct {
	// Target is the tool whose selection is cleared
	Target string
}

// StatusRequest represents a request for a target's selection and plan.
type StatusRequest struct {
	// Target is the tool to report on
	Target string

	// CWD anchors project-root detection for the destination preview
	CWD string
}

// DeployRequest represents a request to deploy a selection to a target's
// config destinations.
type DeployRequest struct {
	// Target is the tool to deploy to
	Target string

	// Classes limits the deploy to the named deployment classes.
	// Empty means the host defaults: the machine-global class plus project.
	Classes []string

	// DryRun renders and reports without writing
	DryRun bool

	// CWD anchors project-root detection
	CWD string
}

// GenerateRequest represents a request to render a target's preview config
// from its source template.
type GenerateRequest struct {
	// Target is the tool to generate for
	Target string
}

// ListServersRequest represents a request to list catalog servers.
type ListServersRequest struct {
	// Target, when set, marks each server selected/unselected for it
	Target string
}

// HistoryRequest represents a request to read back logged events.
type HistoryRequest struct {
	// Limit caps how many recent entries return; 0 means all
	Limit int
}
