package selection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matthewnyc2/LLM/internal/clock"
	"github.com/matthewnyc2/LLM/internal/fsops"
)

// Store provides an interface for persisting per-target selections.
type Store interface {
	// Load returns the stored selection for the given target.
	// A missing or unreadable file yields an empty set; Load never fails.
	Load(target string) Set

	// Save replaces the stored selection for the given target atomically.
	Save(target string, servers Set) error

	// Clear removes the stored selection for the given target.
	// Clearing a target with no stored selection is not an error.
	Clear(target string) error

	// List returns all stored selections sorted by target.
	List() ([]Record, error)
}

// Record is the on-disk shape of a selection file.
type Record struct {
	Target    string   `json:"target"`
	Servers   []string `json:"servers"`
	UpdatedAt string   `json:"updated_at"`
}

// FileStore implements Store using one JSON file per target.
type FileStore struct {
	fs    fsops.FS
	dir   string
	clock clock.Clock
}

// NewFileStore creates a new FileStore rooted at the given directory.
func NewFileStore(fs fsops.FS, dir string, clk clock.Clock) *FileStore {
	return &FileStore{
		fs:    fs,
		dir:   dir,
		clock: clk,
	}
}

// Load returns the stored selection for the given target.
func (s *FileStore) Load(target string) Set {
	if err := s.fs.ValidateIdentifier(target); err != nil {
		return NewSet()
	}

	data, err := s.fs.ReadFile(s.path(target))
	if err != nil {
		return NewSet()
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return NewSet()
	}

	return NewSet(rec.Servers...)
}

// Save replaces the stored selection for the given target atomically.
func (s *FileStore) Save(target string, servers Set) error {
	if err := s.fs.ValidateIdentifier(target); err != nil {
		return fmt.Errorf("invalid target name: %w", err)
	}

	rec := Record{
		Target:    target,
		Servers:   servers.Names(),
		UpdatedAt: clock.Timestamp(s.clock.Now()),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path(target), data, 0644); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}

	return nil
}

// Clear removes the stored selection for the given target.
func (s *FileStore) Clear(target string) error {
	if err := s.fs.ValidateIdentifier(target); err != nil {
		return fmt.Errorf("invalid target name: %w", err)
	}

	if err := s.fs.Remove(s.path(target)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove selection: %w", err)
	}

	return nil
}

// List returns all stored selections sorted by target.
// Files that cannot be parsed are skipped.
func (s *FileStore) List() ([]Record, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read selections directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := s.fs.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		rec.Target = strings.TrimSuffix(entry.Name(), ".json")
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Target < records[j].Target })
	return records, nil
}

func (s *FileStore) path(target string) string {
	return filepath.Join(s.dir, target+".json")
}

// FakeStore implements Store in memory for testing.
type FakeStore struct {
	selections map[string]Set
	saveErr    error
}

// NewFakeStore creates a new FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{selections: make(map[string]Set)}
}

// SetSaveError sets an error to be returned by Save.
func (s *FakeStore) SetSaveError(err error) {
	s.saveErr = err
}

// Load returns the stored selection for the given target.
func (s *FakeStore) Load(target string) Set {
	if sel, ok := s.selections[target]; ok {
		return sel.Clone()
	}
	return NewSet()
}

// Save replaces the stored selection for the given target.
func (s *FakeStore) Save(target string, servers Set) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.selections[target] = servers.Clone()
	return nil
}

// Clear removes the stored selection for the given target.
func (s *FakeStore) Clear(target string) error {
	delete(s.selections, target)
	return nil
}

// List returns all stored selections sorted by target.
func (s *FakeStore) List() ([]Record, error) {
	records := make([]Record, 0, len(s.selections))
	for target, sel := range s.selections {
		records = append(records, Record{Target: target, Servers: sel.Names()})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Target < records[j].Target })
	return records, nil
}
