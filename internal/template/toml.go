package template

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matthewnyc2/LLM/internal/catalog"
)

// qualifierWords are the platform segments recognized in section headers.
// "wsl" appears in configs written by older tooling and is treated like any
// other qualifier.
var qualifierWords = []string{"windows", "unix", "wsl"}

// tomlLineKind classifies one line of a TOML document.
type tomlLineKind int

const (
	tomlPlain tomlLineKind = iota
	tomlBlockStart
	tomlForeignStart
)

// parseTOML runs the line scan. The machine has two states, outside a server
// block and inside one:
//
//   - A matching section header (`[mcp_servers.<name>…]`, optionally prefixed
//     with the document's qualifier) opens the named block. Sub-tables and
//     re-opened names append to the block already stored under that name.
//   - A section header carrying a different qualifier closes the open block;
//     following lines are dropped until the next matching header.
//   - Any other line belongs to the open block, or to the header when no
//     block has started yet.
//
// The scan never interprets TOML values, so any input is accepted.
func parseTOML(text []byte, qualifier string) *Document {
	doc := &Document{
		Format:    FormatTOML,
		Qualifier: qualifier,
		Blocks:    make(map[string]Block),
	}

	currentName := ""
	inBlock := false
	headerDone := false

	for _, line := range splitLines(text) {
		name, kind := classifyTOMLLine(line, qualifier)
		switch kind {
		case tomlBlockStart:
			headerDone = true
			block, exists := doc.Blocks[name]
			if !exists {
				doc.Order = append(doc.Order, name)
			}
			block.Lines = append(block.Lines, line)
			doc.Blocks[name] = block
			currentName, inBlock = name, true

		case tomlForeignStart:
			headerDone = true
			currentName, inBlock = "", false

		default:
			if inBlock {
				block := doc.Blocks[currentName]
				block.Lines = append(block.Lines, line)
				doc.Blocks[currentName] = block
			} else if !headerDone {
				doc.Header = append(doc.Header, line)
			}
			// Lines after a foreign section and outside any block are dropped
		}
	}

	return doc
}

// classifyTOMLLine reports whether a line opens a server block for this
// document's qualifier, opens one for a different qualifier, or is plain
// content. For block starts it returns the server name, the first path
// segment after the container key.
func classifyTOMLLine(line, qualifier string) (string, tomlLineKind) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return "", tomlPlain
	}
	inner := trimmed[1:]

	for _, marker := range []string{tomlContainerKey + ".", "mcpServers."} {
		if strings.HasPrefix(inner, marker) {
			if name := sectionName(inner[len(marker):]); name != "" {
				return name, tomlBlockStart
			}
			return "", tomlPlain
		}
		if qualifier != "" {
			if qualified := qualifier + "." + marker; strings.HasPrefix(inner, qualified) {
				if name := sectionName(inner[len(qualified):]); name != "" {
					return name, tomlBlockStart
				}
				return "", tomlPlain
			}
		}
	}

	if segment, rest, ok := strings.Cut(inner, "."); ok && isQualifierWord(segment) && segment != qualifier {
		if strings.HasPrefix(rest, tomlContainerKey+".") || strings.HasPrefix(rest, "mcpServers.") {
			return "", tomlForeignStart
		}
	}

	return "", tomlPlain
}

// sectionName extracts the block name from the section path after the
// container key: "git.env] …" yields "git".
func sectionName(rest string) string {
	name, _, _ := strings.Cut(rest, "]")
	name, _, _ = strings.Cut(name, ".")
	return name
}

func isQualifierWord(segment string) bool {
	for _, word := range qualifierWords {
		if segment == word {
			return true
		}
	}
	return false
}

// splitLines splits on newlines the way line iteration does: the trailing
// newline does not produce an empty final line.
func splitLines(text []byte) []string {
	if len(text) == 0 {
		return nil
	}
	lines := strings.Split(string(text), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// renderTOML writes the header, then the selected blocks separated by blank
// lines. Stored lines keep everything as parsed except the qualifier prefix
// on section headers, which is stripped so the output is the plain
// `[mcp_servers.<name>]` form the target reads.
func renderTOML(doc *Document, names []string, cat *catalog.Catalog) ([]byte, error) {
	var lines []string

	if len(doc.Header) > 0 {
		lines = append(lines, doc.Header...)
		if strings.TrimSpace(doc.Header[len(doc.Header)-1]) != "" {
			lines = append(lines, "")
		}
	}

	for _, name := range names {
		blockLines, err := tomlBlockLines(doc, name, cat)
		if err != nil {
			return nil, err
		}
		if len(blockLines) == 0 {
			continue
		}

		lines = append(lines, blockLines...)
		if strings.TrimSpace(blockLines[len(blockLines)-1]) != "" {
			lines = append(lines, "")
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

func tomlBlockLines(doc *Document, name string, cat *catalog.Catalog) ([]string, error) {
	if block, ok := doc.Blocks[name]; ok && len(block.Lines) > 0 {
		return stripQualifier(block.Lines, doc.Qualifier), nil
	}
	if cat != nil {
		if def, ok := cat.Get(name); ok {
			return synthesizeTOMLBlock(def)
		}
	}
	return nil, nil
}

// stripQualifier rewrites qualified section headers to their plain form:
// `[windows.mcp_servers.git]` becomes `[mcp_servers.git]`. Leading
// whitespace and everything else on the line stay as they were.
func stripQualifier(blockLines []string, qualifier string) []string {
	if qualifier == "" {
		return blockLines
	}

	prefix := "[" + qualifier + "."
	out := make([]string, len(blockLines))
	for i, line := range blockLines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			out[i] = strings.Replace(line, prefix, "[", 1)
		} else {
			out[i] = line
		}
	}
	return out
}

// synthesizeTOMLBlock renders a catalog definition as a TOML section,
// walking the config JSON in its authored key order.
func synthesizeTOMLBlock(def catalog.Definition) ([]string, error) {
	keys, values, err := scanObject(def.Config)
	if err != nil {
		return nil, fmt.Errorf("server %q: %w", def.Key, err)
	}

	lines := []string{"[" + tomlContainerKey + "." + tomlKey(def.Key) + "]"}
	for _, key := range keys {
		value, err := tomlValue(values[key])
		if err != nil {
			return nil, fmt.Errorf("server %q, key %q: %w", def.Key, key, err)
		}
		lines = append(lines, tomlKey(key)+" = "+value)
	}
	return lines, nil
}

// tomlValue converts a raw JSON value to its TOML literal. Strings are
// quoted, arrays become inline arrays, objects become inline tables with
// quoted keys, numbers and booleans pass through as written.
func tomlValue(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "", fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", s), nil

	case '[':
		elements, err := scanArray(raw)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(elements))
		for i, element := range elements {
			part, err := tomlValue(element)
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return "[" + strings.Join(parts, ", ") + "]", nil

	case '{':
		keys, values, err := scanObject(raw)
		if err != nil {
			return "", err
		}
		if len(keys) == 0 {
			return "{}", nil
		}
		parts := make([]string, len(keys))
		for i, key := range keys {
			value, err := tomlValue(values[key])
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("%q = %s", key, value)
		}
		return "{ " + strings.Join(parts, ", ") + " }", nil

	case 'n':
		return "", fmt.Errorf("null has no TOML form")

	default:
		// true, false, and number literals are valid TOML as written
		return trimmed, nil
	}
}

// tomlKey quotes a key unless it is a valid bare key (A-Za-z0-9_-).
func tomlKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return fmt.Sprintf("%q", key)
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_'
		if !ok {
			return false
		}
	}
	return true
}
