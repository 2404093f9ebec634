package catalog

import "encoding/json"

// Builtin returns the built-in server catalog.
func Builtin() *Catalog {
	c, err := New(builtinDefinitions())
	if err != nil {
		panic("catalog: bad builtin definition: " + err.Error())
	}
	return c
}

func builtinDefinitions() []Definition {
	return []Definition{
		// Browser Automation
		{
			Key:         "playwright",
			Name:        "Playwright MCP",
			Description: "Browser automation and web scraping",
			Repo:        "https://github.com/microsoft/playwright-mcp",
			Category:    "Browser Automation",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@playwright/mcp@latest"]}`),
		},
		{
			Key:         "puppeteer",
			Name:        "Puppeteer MCP",
			Description: "Headless browser control via Puppeteer",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Browser Automation",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-puppeteer"]}`),
		},
		{
			Key:         "browserbase",
			Name:        "Browserbase MCP",
			Description: "Cloud-based browser automation",
			Repo:        "https://github.com/browserbase/mcp-server-browserbase",
			Category:    "Browser Automation",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/@browserbasehq/mcp-browserbase/mcp"}`),
		},
		{
			Key:         "skyvern",
			Name:        "Skyvern MCP",
			Description: "Browser control for LLMs via Skyvern",
			Repo:        "https://github.com/Skyvern-AI/skyvern",
			Category:    "Browser Automation",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["skyvern-mcp"]}`),
		},

		// Code & Version Control
		{
			Key:         "github",
			Name:        "GitHub MCP",
			Description: "Interact with GitHub repositories, issues, and PRs",
			Repo:        "https://github.com/github/github-mcp-server",
			Category:    "Code & Version Control",
			Config:      json.RawMessage(`{"type": "stdio", "command": "docker", "args": ["run", "-i", "--rm", "-e", "GITHUB_PERSONAL_ACCESS_TOKEN", "ghcr.io/github/github-mcp-server"]}`),
		},
		{
			Key:         "git",
			Name:        "Git MCP",
			Description: "Git repository operations and analysis",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Code & Version Control",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-git"]}`),
		},
		{
			Key:         "gitlab",
			Name:        "GitLab MCP",
			Description: "GitLab integration and API access",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Code & Version Control",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-gitlab"]}`),
		},

		// Databases
		{
			Key:         "postgres",
			Name:        "PostgreSQL MCP",
			Description: "Query and manage PostgreSQL databases",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-postgres"]}`),
		},
		{
			Key:         "supabase",
			Name:        "Supabase MCP",
			Description: "Supabase database and auth integration",
			Repo:        "https://github.com/supabase-community/supabase-mcp",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/supabase/mcp"}`),
		},
		{
			Key:         "mongodb",
			Name:        "MongoDB MCP",
			Description: "MongoDB database access and queries",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-mongodb"]}`),
		},
		{
			Key:         "mysql",
			Name:        "MySQL MCP",
			Description: "MySQL/MariaDB database access",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-mysql"]}`),
		},
		{
			Key:         "mindsdb",
			Name:        "MindsDB MCP",
			Description: "Connect AI to multiple data sources",
			Repo:        "https://github.com/mindsdb/mindsdb_mcp_server",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["mindsdb-mcp"]}`),
		},
		{
			Key:         "sqlite",
			Name:        "SQLite MCP",
			Description: "SQLite database operations and business insights",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Databases",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-sqlite"]}`),
		},

		// Communication
		{
			Key:         "slack",
			Name:        "Slack MCP",
			Description: "Send messages and manage Slack workspace",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Communication",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/slack/mcp"}`),
		},
		{
			Key:         "gmail",
			Name:        "Gmail MCP",
			Description: "Read and send emails via Gmail",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Communication",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["gmail-mcp"]}`),
		},
		{
			Key:         "discord",
			Name:        "Discord MCP",
			Description: "Discord server and message management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Communication",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["discord-mcp"]}`),
		},

		// Cloud Platforms
		{
			Key:         "aws",
			Name:        "AWS MCP",
			Description: "Amazon Web Services integration",
			Repo:        "https://github.com/aws/aws-mcp-server",
			Category:    "Cloud Platforms",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@aws-sdk/mcp-server"]}`),
		},
		{
			Key:         "azure",
			Name:        "Azure MCP",
			Description: "Microsoft Azure services integration",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Cloud Platforms",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["azure-mcp"]}`),
		},
		{
			Key:         "cloudflare",
			Name:        "Cloudflare MCP",
			Description: "Cloudflare Workers, KV, R2, D1",
			Repo:        "https://github.com/cloudflare/mcp-server-cloudflare",
			Category:    "Cloud Platforms",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@cloudflare/mcp-server-cloudflare"]}`),
		},
		{
			Key:         "kubernetes",
			Name:        "Kubernetes MCP",
			Description: "Kubernetes cluster management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Cloud Platforms",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-kubernetes"]}`),
		},
		{
			Key:         "docker",
			Name:        "Docker MCP",
			Description: "Docker container and image management",
			Repo:        "https://github.com/docker/mcp-server-docker",
			Category:    "Cloud Platforms",
			Config:      json.RawMessage(`{"type": "stdio", "command": "docker", "args": ["run", "-i", "--rm", "-v", "/var/run/docker.sock:/var/run/docker.sock", "mcp-docker"]}`),
		},

		// Productivity & Collaboration
		{
			Key:         "notion",
			Name:        "Notion MCP",
			Description: "Notion databases and pages access",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/notion/mcp"}`),
		},
		{
			Key:         "airtable",
			Name:        "Airtable MCP",
			Description: "Airtable base and records management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-airtable"]}`),
		},
		{
			Key:         "jira",
			Name:        "Jira MCP",
			Description: "Jira project and issue management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/jira/mcp"}`),
		},
		{
			Key:         "asana",
			Name:        "Asana MCP",
			Description: "Asana project and task management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-asana"]}`),
		},
		{
			Key:         "trello",
			Name:        "Trello MCP",
			Description: "Trello board and card management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-trello"]}`),
		},
		{
			Key:         "monday",
			Name:        "Monday.com MCP",
			Description: "Monday.com workspace management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Productivity & Collaboration",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-monday"]}`),
		},

		// Search & Data Extraction
		{
			Key:         "exa",
			Name:        "Exa MCP",
			Description: "Web search and content extraction",
			Repo:        "https://github.com/exa-labs/mcp",
			Category:    "Search & Data Extraction",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/exa/mcp"}`),
		},
		{
			Key:         "perplexity",
			Name:        "Perplexity MCP",
			Description: "Perplexity AI search integration",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Search & Data Extraction",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-perplexity"]}`),
		},
		{
			Key:         "brave-search",
			Name:        "Brave Search MCP",
			Description: "Brave Search API integration",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Search & Data Extraction",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-brave"]}`),
		},
		{
			Key:         "fetch",
			Name:        "Fetch MCP",
			Description: "Web content fetching and HTML to markdown conversion",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Search & Data Extraction",
			Config:      json.RawMessage(`{"type": "stdio", "command": "uvx", "args": ["mcp-server-fetch"]}`),
		},

		// Developer Tools
		{
			Key:         "openapi",
			Name:        "OpenAPI MCP",
			Description: "Access any API with OpenAPI documentation",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-openapi"]}`),
		},
		{
			Key:         "pulumi",
			Name:        "Pulumi MCP",
			Description: "Infrastructure as Code with Pulumi",
			Repo:        "https://github.com/pulumi/pulumi-mcp",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@pulumi/mcp-server"]}`),
		},
		{
			Key:         "terraform",
			Name:        "Terraform MCP",
			Description: "Terraform infrastructure management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-terraform"]}`),
		},
		{
			Key:         "ref",
			Name:        "Ref Tools MCP",
			Description: "Access documentation for APIs, services, libraries",
			Repo:        "https://github.com/ref-tools/ref-tools-mcp",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["ref-tools-mcp"]}`),
		},
		{
			Key:         "desktop-commander",
			Name:        "Desktop Commander MCP",
			Description: "Terminal control, file system search and diff editing",
			Repo:        "https://github.com/wonderwhy-er/DesktopCommanderMCP",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@wonderwhy-er/desktop-commander"]}`),
		},
		{
			Key:         "serena",
			Name:        "Serena MCP",
			Description: "Semantic code retrieval and editing toolkit",
			Repo:        "https://github.com/oraios/serena",
			Category:    "Developer Tools",
			Config:      json.RawMessage(`{"type": "stdio", "command": "uvx", "args": ["serena"]}`),
		},

		// File Systems
		{
			Key:         "local-filesystem",
			Name:        "Local Filesystem MCP",
			Description: "Read/write local file system",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "File Systems",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-filesystem"]}`),
		},
		{
			Key:         "s3",
			Name:        "AWS S3 MCP",
			Description: "Amazon S3 bucket management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "File Systems",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-s3"]}`),
		},

		// Knowledge & Memory
		{
			Key:         "obsidian",
			Name:        "Obsidian Notes MCP",
			Description: "Obsidian vault access and management",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Knowledge & Memory",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-obsidian"]}`),
		},
		{
			Key:         "memory",
			Name:        "Memory MCP",
			Description: "Knowledge graph-based persistent memory system",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Knowledge & Memory",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-memory"]}`),
		},

		// Finance
		{
			Key:         "alpha-vantage",
			Name:        "Alpha Vantage MCP",
			Description: "Stock market data and analysis",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Finance",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-alpha-vantage"]}`),
		},
		{
			Key:         "cryptocompare",
			Name:        "CryptoCompare MCP",
			Description: "Cryptocurrency price and market data",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Finance",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-cryptocompare"]}`),
		},

		// Media Processing
		{
			Key:         "mermaid",
			Name:        "Mermaid MCP",
			Description: "AI-powered diagram generation",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Media Processing",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-mermaid"]}`),
		},
		{
			Key:         "imagemagick",
			Name:        "ImageMagick MCP",
			Description: "Image processing and manipulation",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Media Processing",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-imagemagick"]}`),
		},

		// Social Media
		{
			Key:         "youtube",
			Name:        "YouTube MCP",
			Description: "YouTube video search and access",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Social Media",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-youtube"]}`),
		},
		{
			Key:         "twitter",
			Name:        "Twitter/X MCP",
			Description: "Twitter/X API integration",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Social Media",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-twitter"]}`),
		},
		{
			Key:         "reddit",
			Name:        "Reddit MCP",
			Description: "Reddit data and community access",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "Social Media",
			Config:      json.RawMessage(`{"type": "stdio", "command": "npx", "args": ["@modelcontextprotocol/server-reddit"]}`),
		},

		// AI & Research
		{
			Key:         "sequential-thinking",
			Name:        "Sequential Thinking MCP",
			Description: "Advanced reasoning and problem solving",
			Repo:        "https://github.com/modelcontextprotocol/servers",
			Category:    "AI & Research",
			Config:      json.RawMessage(`{"type": "http", "url": "https://server.smithery.ai/@smithery-ai/server-sequential-thinking/mcp"}`),
		},
		{
			Key:         "context7",
			Name:        "Context7 MCP",
			Description: "Fetch documentation and code examples",
			Repo:        "https://github.com/context7-ai/context7-mcp",
			Category:    "AI & Research",
			Config:      json.RawMessage(`{"type": "http", "url": "https://mcp.context7.com/mcp"}`),
		},
		{
			Key:         "zen",
			Name:        "Zen MCP",
			Description: "Multi-AI orchestration for code analysis and development",
			Repo:        "https://github.com/BeehiveInnovations/zen-mcp-server",
			Category:    "AI & Research",
			Config:      json.RawMessage(`{"type": "stdio", "command": "uvx", "args": ["zen-mcp"]}`),
		},
		{
			Key:         "gemini-cli-server",
			Name:        "Gemini CLI MCP Server",
			Description: "Gemini CLI running as MCP server with custom tools",
			Repo:        "https://github.com/google-gemini/gemini-cli",
			Category:    "AI & Research",
			Config:      json.RawMessage(`{"type": "stdio", "command": "gemini", "args": ["mcp", "server"]}`),
		},
		{
			Key:         "claude-desktop-server",
			Name:        "Claude Desktop MCP Server",
			Description: "Claude Desktop as MCP server with FastMCP integration",
			Repo:        "https://github.com/modelcontextprotocol/python-sdk",
			Category:    "AI & Research",
			Config:      json.RawMessage(`{"type": "stdio", "command": "uv", "args": ["run", "--with", "mcp[cli]", "mcp", "run"]}`),
		},
	}
}
