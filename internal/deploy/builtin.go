package deploy

// Builtin returns the descriptor for the tools llm knows out of the box.
// codex keeps its config in TOML, everything else in JSON.
func Builtin() *Descriptor {
	d, err := New(builtinTargets())
	if err != nil {
		// Static data, a failure here is a programming error
		panic("deploy: invalid builtin targets: " + err.Error())
	}
	return d
}

func builtinTargets() []Target {
	return []Target{
		{
			Name:          "amazonq",
			DisplayName:   "Amazon Q",
			LaunchCommand: "q",
			Paths: map[Class][]string{
				ClassWindows: {
					`%USERPROFILE%\.aws\amazonq\mcp.json`,
					`%USERPROFILE%\.aitk\mcp.json`,
				},
				ClassUnix:    {"~/.aws/amazonq/mcp.json"},
				ClassProject: {"{project_root}/.amazonq/mcp.json"},
			},
		},
		{
			Name:          "claude-code",
			DisplayName:   "Claude Code (VSCode)",
			LaunchCommand: "claude",
			Paths: map[Class][]string{
				ClassWindows: {`%USERPROFILE%\.claude.json`},
				ClassUnix:    {"~/.claude.json"},
				ClassProject: {"{project_root}/.mcp.json"},
			},
		},
		{
			Name:          "claude-desktop",
			DisplayName:   "Claude Desktop",
			LaunchCommand: "claude",
			Paths: map[Class][]string{
				ClassWindows: {`%APPDATA%\Claude\claude_desktop_config.json`},
				ClassUnix:    {"~/Library/Application Support/Claude/claude_desktop_config.json"},
				ClassProject: {"{project_root}/.claude_desktop_config.json"},
			},
		},
		{
			Name:          "cline",
			DisplayName:   "Cline",
			LaunchCommand: "cline",
			Paths: map[Class][]string{
				ClassWindows: {`%APPDATA%\Code\User\globalStorage\saoudrizwan.claude-dev\settings\cline_mcp_settings.json`},
				ClassUnix:    {"~/.config/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json"},
				ClassProject: {"{project_root}/.clinerules"},
			},
		},
		{
			Name:          "gemini-cli",
			DisplayName:   "Gemini CLI",
			LaunchCommand: "gemini",
			Paths: map[Class][]string{
				ClassWindows: {`%USERPROFILE%\.gemini\settings.json`},
				ClassUnix:    {"~/.gemini/settings.json"},
				ClassProject: {"{project_root}/.gemini/settings.json"},
			},
		},
		{
			Name:          "github-copilot",
			DisplayName:   "GitHub Copilot",
			LaunchCommand: "copilot --allow-all-tools --allow-all-paths",
			Paths: map[Class][]string{
				ClassWindows: {`%APPDATA%\Code\User\settings.json`},
				ClassUnix:    {"~/.config/Code/User/settings.json"},
				ClassProject: {"{project_root}/.vscode/mcp.json"},
			},
		},
		{
			Name:          "kilo-code",
			DisplayName:   "Kilo (Cursor fork)",
			LaunchCommand: "kilocode",
			Paths: map[Class][]string{
				ClassWindows: {`%APPDATA%\Code\User\globalStorage\kilocode.kilo-code\settings\mcp_settings.json`},
				ClassUnix:    {"~/.config/Code/User/globalStorage/kilocode.kilo-code/settings/mcp_settings.json"},
				ClassProject: {"{project_root}/.kilocode/mcp.json"},
			},
		},
		{
			Name:          "opencode",
			DisplayName:   "Opencode",
			LaunchCommand: "opencode",
			Paths: map[Class][]string{
				ClassWindows: {`%USERPROFILE%\.config\opencode\opencode.json`},
				ClassUnix:    {"~/.config/opencode/opencode.json"},
				ClassProject: {"{project_root}/opencode.json"},
			},
		},
		{
			Name:          "roo-code",
			DisplayName:   "Roo Code",
			LaunchCommand: "roo-code",
			Paths: map[Class][]string{
				ClassWindows: {`%APPDATA%\Code\User\globalStorage\rooveterinaryinc.roo-cline\settings\cline_mcp_settings.json`},
				ClassUnix:    {"~/.config/Code/User/globalStorage/rooveterinaryinc.roo-cline/settings/cline_mcp_settings.json"},
				ClassProject: {"{project_root}/.roo/mcp.json"},
			},
		},
		{
			Name:          "codex",
			DisplayName:   "Codex",
			LaunchCommand: "codex",
			Paths: map[Class][]string{
				ClassWindows: {`%USERPROFILE%\.codex\config.toml`},
				ClassUnix:    {"~/.codex/config.toml"},
				ClassProject: {"{project_root}/.codex/config.toml"},
			},
		},
	}
}
