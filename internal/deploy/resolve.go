package deploy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matthewnyc2/LLM/internal/project"
	"github.com/matthewnyc2/LLM/internal/template"
)

var percentVarPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// Resolver expands path templates into concrete paths.
//
// Supported placeholders: a leading `~`, `$VAR` and `${VAR}`, Windows-style
// `%VAR%`, and `{project_root}`. The project root comes from the locator,
// falling back to the working directory when the locator finds nothing.
type Resolver struct {
	home    string
	lookup  func(string) (string, bool)
	locator project.Locator
	workdir string
}

// NewResolver creates a Resolver.
func NewResolver(home string, lookup func(string) (string, bool), locator project.Locator, workdir string) *Resolver {
	return &Resolver{home: home, lookup: lookup, locator: locator, workdir: workdir}
}

// Resolve expands every placeholder in raw. An unset environment variable is
// an error: a half-expanded path would silently write to the wrong place.
func (r *Resolver) Resolve(raw string) (string, error) {
	path := raw

	if strings.Contains(path, "{project_root}") {
		path = strings.ReplaceAll(path, "{project_root}", r.projectRoot())
	}

	switch {
	case path == "~":
		if r.home == "" {
			return "", fmt.Errorf("cannot expand %q: home directory unknown", raw)
		}
		path = r.home
	case strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`):
		if r.home == "" {
			return "", fmt.Errorf("cannot expand %q: home directory unknown", raw)
		}
		path = r.home + path[1:]
	}

	var missing []string
	path = percentVarPattern.ReplaceAllStringFunc(path, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := r.lookup(name)
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	path = expandDollar(path, func(name string) string {
		value, ok := r.lookup(name)
		if !ok {
			missing = append(missing, name)
			return ""
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("cannot expand %q: environment variable %s not set", raw, missing[0])
	}

	return path, nil
}

func (r *Resolver) projectRoot() string {
	if r.locator != nil {
		if root, err := r.locator.Root(r.workdir); err == nil {
			return root
		}
	}
	return r.workdir
}

// expandDollar expands $VAR and ${VAR} references. Unlike os.Expand it
// leaves a bare `$` and Windows drive-relative text alone unless a variable
// name actually follows.
func expandDollar(s string, mapping func(string) string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			b.WriteByte(s[i])
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "{") {
			end := strings.IndexByte(rest, '}')
			if end > 1 {
				b.WriteString(mapping(rest[1:end]))
				i += end + 1
				continue
			}
			b.WriteByte('$')
			continue
		}
		nameLen := 0
		for nameLen < len(rest) && isVarByte(rest[nameLen], nameLen == 0) {
			nameLen++
		}
		if nameLen == 0 {
			b.WriteByte('$')
			continue
		}
		b.WriteString(mapping(rest[:nameLen]))
		i += nameLen
	}
	return b.String()
}

func isVarByte(c byte, first bool) bool {
	if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

// Destination is one planned deploy path.
type Destination struct {
	// Path is resolved and absolute when Err is nil, the raw template
	// otherwise.
	Path   string
	Class  Class
	Format template.Format

	// Err marks a destination that already failed during planning, from an
	// unresolvable placeholder or an unsupported file format. The fanout
	// reports it without attempting a write.
	Err error
}

// Plan resolves the target's path templates for the given classes into
// destinations, in class order then path order. A destination that cannot be
// resolved is included with its error so the deploy can report it; only an
// unknown target fails the plan itself.
func Plan(desc *Descriptor, targetName string, classes []Class, resolver *Resolver) ([]Destination, error) {
	target, ok := desc.Get(targetName)
	if !ok {
		return nil, fmt.Errorf("unknown target %q", targetName)
	}

	var dests []Destination
	for _, class := range classes {
		for _, raw := range target.Paths[class] {
			dest := Destination{Class: class}
			resolved, err := resolver.Resolve(raw)
			if err != nil {
				dest.Path = raw
				dest.Err = err
			} else {
				dest.Path = resolved
			}

			format, err := template.FormatForPath(dest.Path)
			if err != nil && dest.Err == nil {
				dest.Err = err
			}
			dest.Format = format

			dests = append(dests, dest)
		}
	}
	return dests, nil
}
