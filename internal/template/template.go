// Package template parses and renders server blocks inside tool config files.
//
// A config file is treated as a template: the container of server entries
// (under "mcpServers", "mcp_servers", or "mcp") is owned by this tool, while
// everything around it belongs to the target application and passes through
// byte-preserved. Parse lifts a file into a Document; Render writes one back
// with exactly the selected servers in the container.
//
// JSON documents keep their top-level key order, including the container's
// own position. TOML documents are never fully parsed: a line-oriented scan
// extracts `[mcp_servers.<name>]` sections (optionally qualified with a
// platform segment like `[windows.mcp_servers.<name>]`) and leaves all other
// lines untouched.
package template

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matthewnyc2/LLM/internal/catalog"
	"github.com/matthewnyc2/LLM/internal/selection"
)

// Format identifies a supported config file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// containerAliases are the JSON keys recognized as the server container,
// in priority order.
var containerAliases = []string{"mcpServers", "mcp_servers", "mcp"}

// tomlContainerKey is the table prefix used when synthesizing TOML sections.
const tomlContainerKey = "mcp_servers"

// FormatForPath derives the format from a file path's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Entry is one top-level key of a JSON document with its raw value.
type Entry struct {
	Key string
	Raw json.RawMessage
}

// Block holds one server's content: raw JSON for JSON documents, verbatim
// lines (section headers included) for TOML documents.
type Block struct {
	Raw   json.RawMessage
	Lines []string
}

// Document is the parsed form of a config file.
type Document struct {
	Format    Format
	Qualifier string

	// Order lists server names first-seen order, without duplicates.
	// Every name in Order has an entry in Blocks.
	Order  []string
	Blocks map[string]Block

	// ContainerKey and Entries are set for JSON documents. Entries keeps
	// the top-level keys in source order; the container's entry marks
	// where the rebuilt container is written on render.
	ContainerKey string
	Entries      []Entry

	// Header is set for TOML documents: the lines before the first
	// server section of any qualifier.
	Header []string
}

// Parse lifts config text into a Document. It does not touch the filesystem.
//
// Malformed JSON reports an error wrapping ErrFormat; a JSON object without
// any recognized container key reports ErrMissingContainer. The TOML scan
// accepts any input.
func Parse(text []byte, format Format, qualifier string) (*Document, error) {
	switch format {
	case FormatJSON:
		return parseJSON(text, qualifier)
	case FormatTOML:
		return parseTOML(text, qualifier), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Render produces the config file content for the given selection.
//
// Server order is the document's order filtered to the selection, then
// selected servers the document has never seen, in catalog order. A server's
// content comes from the document when present, otherwise from the catalog.
// A nil document renders as if from an empty file. The output is
// deterministic: identical inputs yield identical bytes.
func Render(doc *Document, sel selection.Set, cat *catalog.Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, FormatTOML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if doc == nil {
		doc = emptyDocument(format)
	}
	names := orderedNames(doc, sel, cat)

	if format == FormatJSON {
		return renderJSON(doc, names, cat)
	}
	return renderTOML(doc, names, cat)
}

// orderedNames resolves the selection against the document order and the
// catalog: document order wins for known servers, catalog order for new ones.
func orderedNames(doc *Document, sel selection.Set, cat *catalog.Catalog) []string {
	var names []string
	inDoc := make(map[string]bool, len(doc.Order))

	for _, name := range doc.Order {
		inDoc[name] = true
		if sel.Has(name) {
			names = append(names, name)
		}
	}

	if cat != nil {
		for _, key := range cat.Keys() {
			if sel.Has(key) && !inDoc[key] {
				names = append(names, key)
			}
		}
	}

	return names
}

func emptyDocument(format Format) *Document {
	doc := &Document{Format: format, Blocks: make(map[string]Block)}
	if format == FormatJSON {
		doc.ContainerKey = containerAliases[0]
		doc.Entries = []Entry{{Key: doc.ContainerKey}}
	}
	return doc
}
