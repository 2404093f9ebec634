// Package catalog holds the server definitions that can be deployed into
// tool configurations.
//
// The built-in catalog covers the commonly used MCP servers; users can layer
// their own definitions on top via a catalog.yaml file. A Catalog is
// immutable once constructed.
package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// keyPattern restricts server keys to names safe for config sections and filenames.
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Definition describes one deployable server.
type Definition struct {
	// Key identifies the server in selections and rendered config blocks.
	Key string

	// Name is the human-readable display name.
	Name string

	// Description is a one-line summary shown in listings.
	Description string

	// Repo points at the server's source repository.
	Repo string

	// Category groups servers in listings. Display only.
	Category string

	// Config is the canonical block content, stored as JSON with the
	// authored key order. It is written into target configs verbatim.
	Config json.RawMessage
}

// Category is a named group of server keys in catalog order.
type Category struct {
	Name string
	Keys []string
}

// Catalog is an immutable, ordered collection of server definitions.
type Catalog struct {
	keys []string
	defs map[string]Definition
}

// New builds a Catalog from the given definitions, preserving their order.
// Keys must match keyPattern, be unique, and carry valid JSON config.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		keys: make([]string, 0, len(defs)),
		defs: make(map[string]Definition, len(defs)),
	}

	for _, def := range defs {
		if !keyPattern.MatchString(def.Key) {
			return nil, fmt.Errorf("invalid server key %q", def.Key)
		}
		if _, exists := c.defs[def.Key]; exists {
			return nil, fmt.Errorf("duplicate server key %q", def.Key)
		}
		if len(def.Config) == 0 || !json.Valid(def.Config) {
			return nil, fmt.Errorf("server %q has invalid config", def.Key)
		}

		c.keys = append(c.keys, def.Key)
		c.defs[def.Key] = def
	}

	return c, nil
}

// Get returns the definition for the given key.
func (c *Catalog) Get(key string) (Definition, bool) {
	def, ok := c.defs[key]
	return def, ok
}

// Has reports whether the catalog contains the given key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.defs[key]
	return ok
}

// Keys returns all server keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Definitions returns all definitions in catalog order.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.keys))
	for _, key := range c.keys {
		defs = append(defs, c.defs[key])
	}
	return defs
}

// Categories groups the server keys by category, in order of first appearance.
func (c *Catalog) Categories() []Category {
	var categories []Category
	index := make(map[string]int)

	for _, key := range c.keys {
		name := c.defs[key].Category
		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, Category{Name: name})
		}
		categories[i].Keys = append(categories[i].Keys, key)
	}

	return categories
}

// Merge layers extra definitions over a base catalog and returns a new one.
// Overriding definitions keep the base position; new keys append in extra's
// order.
func Merge(base, extra *Catalog) *Catalog {
	merged := &Catalog{
		keys: make([]string, 0, len(base.keys)+len(extra.keys)),
		defs: make(map[string]Definition, len(base.keys)+len(extra.keys)),
	}

	for _, key := range base.keys {
		def := base.defs[key]
		if override, ok := extra.defs[key]; ok {
			def = override
		}
		merged.keys = append(merged.keys, key)
		merged.defs[key] = def
	}

	for _, key := range extra.keys {
		if _, exists := merged.defs[key]; exists {
			continue
		}
		merged.keys = append(merged.keys, key)
		merged.defs[key] = extra.defs[key]
	}

	return merged
}
