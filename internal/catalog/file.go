package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/matthewnyc2/LLM/internal/fsops"
)

// fileServer is one entry in a user catalog file.
//
// Config fields are typed so the generated JSON has a stable key order;
// unrecognized config keys land in Extra and follow the known fields.
type fileServer struct {
	Key         string     `yaml:"key"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Repo        string     `yaml:"repo,omitempty"`
	Category    string     `yaml:"category,omitempty"`
	Config      fileConfig `yaml:"config"`
}

type fileConfig struct {
	Type    string                 `yaml:"type,omitempty"`
	Command string                 `yaml:"command,omitempty"`
	Args    []string               `yaml:"args,omitempty"`
	URL     string                 `yaml:"url,omitempty"`
	Env     map[string]string      `yaml:"env,omitempty"`
	Extra   map[string]interface{} `yaml:",inline"`
}

type catalogFile struct {
	Servers []fileServer `yaml:"servers"`
}

// LoadFile reads user server definitions from a catalog YAML file.
// A missing file yields an empty catalog.
func LoadFile(fs fsops.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil)
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	defs := make([]Definition, 0, len(file.Servers))
	for _, srv := range file.Servers {
		cfg, err := srv.Config.toJSON()
		if err != nil {
			return nil, fmt.Errorf("server %q: %w", srv.Key, err)
		}

		category := srv.Category
		if category == "" {
			category = "User Defined"
		}

		defs = append(defs, Definition{
			Key:         srv.Key,
			Name:        srv.Name,
			Description: srv.Description,
			Repo:        srv.Repo,
			Category:    category,
			Config:      cfg,
		})
	}

	cat, err := New(defs)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file: %w", err)
	}
	return cat, nil
}

// toJSON renders the config as a JSON object with a deterministic key
// order: type, command, args, url, env, then extras sorted by key.
func (c fileConfig) toJSON() (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value interface{}) error {
		if buf.Len() > 1 {
			buf.WriteString(", ")
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
		buf.Write(kb)
		buf.WriteString(": ")
		buf.Write(vb)
		return nil
	}

	if c.Type != "" {
		if err := write("type", c.Type); err != nil {
			return nil, err
		}
	}
	if c.Command != "" {
		if err := write("command", c.Command); err != nil {
			return nil, err
		}
	}
	if len(c.Args) > 0 {
		if err := write("args", c.Args); err != nil {
			return nil, err
		}
	}
	if c.URL != "" {
		if err := write("url", c.URL); err != nil {
			return nil, err
		}
	}
	if len(c.Env) > 0 {
		if err := write("env", c.Env); err != nil {
			return nil, err
		}
	}

	extras := make([]string, 0, len(c.Extra))
	for key := range c.Extra {
		extras = append(extras, key)
	}
	sort.Strings(extras)
	for _, key := range extras {
		if err := write(key, c.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes()), nil
}
