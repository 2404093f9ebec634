package engine

import (
	"context"
	"fmt"

	"github.com/matthewnyc2/LLM/internal/template"
)

const jsonTemplateSkeleton = "{\n  \"mcpServers\": {}\n}\n"

const catalogSeed = `# Extra MCP servers for this machine. Merged over the builtin catalog;
# a server with a builtin key replaces the builtin definition.
#
# servers:
#   - key: internal-tools
#     name: Internal Tools
#     description: Company-internal MCP gateway
#     category: Internal
#     config:
#       command: npx
#       args: ["-y", "@corp/internal-mcp"]
#       env:
#         INTERNAL_TOKEN: "changeme"
`

const targetsSeed = `# Extra deploy targets for this machine. Merged over the builtin targets;
# a target with a builtin name replaces the builtin definition.
#
# targets:
#   - name: my-tool
#     display_name: My Tool
#     launch_command: mytool
#     paths:
#       unix: ["~/.config/mytool/mcp.json"]
#       project: ["{project_root}/.mytool/mcp.json"]
`

// Init prepares the llm root: data directories, a template skeleton per
// target, and commented catalog/target override files. Existing files are
// left alone, so init is safe to re-run.
func (e *Engine) Init(ctx context.Context) (*InitResult, error) {
	if err := e.paths.EnsureDirectories(); err != nil {
		return nil, err
	}

	result := &InitResult{Root: e.paths.Root}

	for _, target := range e.targets.Targets() {
		path := e.templatePath(target)
		skeleton := jsonTemplateSkeleton
		if targetFormat(target) == template.FormatTOML {
			skeleton = tomlTemplateSkeleton(target.DisplayName)
		}
		created, err := e.writeIfMissing(path, []byte(skeleton))
		if err != nil {
			return nil, err
		}
		if created {
			result.Created = append(result.Created, path)
		}
	}

	created, err := e.writeIfMissing(e.paths.Catalog, []byte(catalogSeed))
	if err != nil {
		return nil, err
	}
	if created {
		result.Created = append(result.Created, e.paths.Catalog)
	}

	created, err = e.writeIfMissing(e.paths.Targets, []byte(targetsSeed))
	if err != nil {
		return nil, err
	}
	if created {
		result.Created = append(result.Created, e.paths.Targets)
	}

	e.record("init", map[string]string{"root": e.paths.Root})

	return result, nil
}

func tomlTemplateSkeleton(displayName string) string {
	return "# " + displayName + " MCP servers.\n" +
		"# Add [mcp_servers.<name>] sections here, or qualify per OS with\n" +
		"# [windows.mcp_servers.<name>] and [unix.mcp_servers.<name>].\n"
}

// writeIfMissing writes data to path unless something is already there.
func (e *Engine) writeIfMissing(path string, data []byte) (bool, error) {
	exists, err := e.fs.Exists(path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return false, nil
	}
	if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
