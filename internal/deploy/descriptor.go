// Package deploy plans destination paths for configured tools and fans a
// rendered selection out to them.
//
// A deploy never stops at the first bad destination: every planned path gets
// its own attempt and its own result, and a failure at one path leaves the
// others untouched.
package deploy

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/matthewnyc2/LLM/internal/fsops"
)

// Class is a deployment class: where a tool keeps the config being managed.
type Class string

const (
	// ClassWindows is the machine-global location on Windows.
	ClassWindows Class = "windows"

	// ClassUnix is the machine-global location on Linux and macOS.
	ClassUnix Class = "unix"

	// ClassProject is the per-project location under the project root.
	ClassProject Class = "project"
)

// Classes lists every deployment class.
func Classes() []Class {
	return []Class{ClassWindows, ClassUnix, ClassProject}
}

// ParseClass validates a class name from user input.
func ParseClass(s string) (Class, error) {
	for _, c := range Classes() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown deployment class %q (want windows, unix, or project)", s)
}

// DefaultClasses returns the classes a deploy targets when none are named:
// the machine-global class for the given GOOS plus the project class.
func DefaultClasses(goos string) []Class {
	if goos == "windows" {
		return []Class{ClassWindows, ClassProject}
	}
	return []Class{ClassUnix, ClassProject}
}

// Qualifier returns the TOML section qualifier for the given GOOS.
func Qualifier(goos string) string {
	if goos == "windows" {
		return "windows"
	}
	return "unix"
}

// Target describes one tool whose config llm maintains.
type Target struct {
	// Name is the identity used on the command line and in state filenames.
	Name string

	// DisplayName is the human-readable tool name.
	DisplayName string

	// LaunchCommand is how the user starts the tool. Display-only metadata;
	// llm never executes it.
	LaunchCommand string

	// Paths holds unresolved path templates per class. Templates may use
	// `~`, `$VAR`, `${VAR}`, `%VAR%`, and `{project_root}`.
	Paths map[Class][]string
}

// Descriptor is an ordered, immutable set of targets.
type Descriptor struct {
	names   []string
	targets map[string]Target
}

// New builds a Descriptor from targets, preserving their order.
func New(targets []Target) (*Descriptor, error) {
	d := &Descriptor{targets: make(map[string]Target, len(targets))}
	for _, t := range targets {
		if t.Name == "" {
			return nil, fmt.Errorf("target with empty name")
		}
		if _, dup := d.targets[t.Name]; dup {
			return nil, fmt.Errorf("duplicate target %q", t.Name)
		}
		for class := range t.Paths {
			if _, err := ParseClass(string(class)); err != nil {
				return nil, fmt.Errorf("target %q: %w", t.Name, err)
			}
		}
		d.names = append(d.names, t.Name)
		d.targets[t.Name] = t
	}
	return d, nil
}

// Get returns the target by name.
func (d *Descriptor) Get(name string) (Target, bool) {
	t, ok := d.targets[name]
	return t, ok
}

// Has reports whether the target exists.
func (d *Descriptor) Has(name string) bool {
	_, ok := d.targets[name]
	return ok
}

// Names returns target names in descriptor order.
func (d *Descriptor) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Targets returns all targets in descriptor order.
func (d *Descriptor) Targets() []Target {
	out := make([]Target, 0, len(d.names))
	for _, name := range d.names {
		out = append(out, d.targets[name])
	}
	return out
}

// Len returns the number of targets.
func (d *Descriptor) Len() int {
	return len(d.names)
}

// Merge layers extra over base: same-name targets are replaced in place,
// new targets append in extra's order.
func Merge(base, extra *Descriptor) *Descriptor {
	merged := &Descriptor{targets: make(map[string]Target)}
	for _, name := range base.names {
		merged.names = append(merged.names, name)
		merged.targets[name] = base.targets[name]
	}
	for _, name := range extra.names {
		if _, known := merged.targets[name]; !known {
			merged.names = append(merged.names, name)
		}
		merged.targets[name] = extra.targets[name]
	}
	return merged
}

// fileTarget is the targets.yaml shape of one target.
type fileTarget struct {
	Name          string              `yaml:"name"`
	DisplayName   string              `yaml:"display_name"`
	LaunchCommand string              `yaml:"launch_command"`
	Paths         map[string][]string `yaml:"paths"`
}

type targetsFile struct {
	Targets []fileTarget `yaml:"targets"`
}

// LoadFile reads a targets.yaml. A missing file yields an empty Descriptor.
func LoadFile(fs fsops.FS, path string) (*Descriptor, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check targets file: %w", err)
	}
	if !exists {
		return New(nil)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var parsed targetsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid targets file %s: %w", path, err)
	}

	targets := make([]Target, 0, len(parsed.Targets))
	for _, ft := range parsed.Targets {
		t := Target{
			Name:          ft.Name,
			DisplayName:   ft.DisplayName,
			LaunchCommand: ft.LaunchCommand,
			Paths:         make(map[Class][]string, len(ft.Paths)),
		}
		if t.DisplayName == "" {
			t.DisplayName = ft.Name
		}
		for className, paths := range ft.Paths {
			class, err := ParseClass(className)
			if err != nil {
				return nil, fmt.Errorf("invalid targets file %s: target %q: %w", path, ft.Name, err)
			}
			t.Paths[class] = paths
		}
		targets = append(targets, t)
	}

	desc, err := New(targets)
	if err != nil {
		return nil, fmt.Errorf("invalid targets file %s: %w", path, err)
	}
	return desc, nil
}
