package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matthewnyc2/LLM/internal/catalog"
)

// parseJSON scans the top-level object token by token so that key order and
// raw value bytes survive. Only the container value is descended into;
// every other entry passes through untouched.
func parseJSON(text []byte, qualifier string) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrFormat)
	}

	var entries []Entry
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrFormat, keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}

		// Duplicate keys keep the first position, last value
		if i, seen := index[key]; seen {
			entries[i].Raw = raw
		} else {
			index[key] = len(entries)
			entries = append(entries, Entry{Key: key, Raw: raw})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrFormat)
	}

	containerKey := ""
	var containerRaw json.RawMessage
	for _, alias := range containerAliases {
		if i, ok := index[alias]; ok {
			containerKey = alias
			containerRaw = entries[i].Raw
			break
		}
	}
	if containerKey == "" {
		return nil, ErrMissingContainer
	}

	order, rawBlocks, err := scanObject(containerRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: server container: %v", ErrFormat, err)
	}

	doc := &Document{
		Format:       FormatJSON,
		Qualifier:    qualifier,
		Order:        order,
		Blocks:       make(map[string]Block, len(rawBlocks)),
		ContainerKey: containerKey,
		Entries:      entries,
	}
	for name, raw := range rawBlocks {
		doc.Blocks[name] = Block{Raw: raw}
	}
	return doc, nil
}

// scanObject reads a JSON object preserving key order and raw values.
func scanObject(raw json.RawMessage) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("value is not an object")
	}

	var order []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return order, values, nil
}

// scanArray reads a JSON array preserving element order as raw values.
func scanArray(raw json.RawMessage) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("value is not an array")
	}

	var elements []json.RawMessage
	for dec.More() {
		var element json.RawMessage
		if err := dec.Decode(&element); err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return elements, nil
}

// renderJSON reassembles the document with the container rebuilt in place.
// Output matches two-space-indented marshaling: keys in source order, raw
// values re-indented at their depth, one trailing newline.
func renderJSON(doc *Document, names []string, cat *catalog.Catalog) ([]byte, error) {
	if doc.ContainerKey == "" {
		return nil, ErrMissingContainerKey
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range doc.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		if err := writeKey(&buf, entry.Key); err != nil {
			return nil, err
		}

		if entry.Key == doc.ContainerKey {
			if err := writeContainer(&buf, doc, names, cat); err != nil {
				return nil, err
			}
		} else if err := json.Indent(&buf, entry.Raw, "  ", "  "); err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Key, err)
		}
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func writeContainer(buf *bytes.Buffer, doc *Document, names []string, cat *catalog.Catalog) error {
	if len(names) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n    ")
		if err := writeKey(buf, name); err != nil {
			return err
		}

		raw := blockRaw(doc, name, cat)
		if raw == nil {
			return fmt.Errorf("no content for server %q", name)
		}
		if err := json.Indent(buf, raw, "    ", "  "); err != nil {
			return fmt.Errorf("server %q: %w", name, err)
		}
	}
	buf.WriteString("\n  }")
	return nil
}

// blockRaw picks a server's JSON content: the document's bytes when the
// server was parsed from the source, the catalog definition otherwise.
func blockRaw(doc *Document, name string, cat *catalog.Catalog) json.RawMessage {
	if block, ok := doc.Blocks[name]; ok && block.Raw != nil {
		return block.Raw
	}
	if cat != nil {
		if def, ok := cat.Get(name); ok {
			return def.Config
		}
	}
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteString(": ")
	return nil
}
