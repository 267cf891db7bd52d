// Package manifest records which strategy materialized each provisioned
// target, so a later removal can tell a snapshot copy from a live link.
package manifest

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/linker"
	"github.com/arthur-debert/extlinker/pkg/types"
	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"
)

// FormatVersion is written to every manifest.
const FormatVersion = 1

type document struct {
	Version int                `toml:"version"`
	Entries []types.LinkRecord `toml:"entry"`
}

// Store is a manifest file loaded in memory. Every mutation is written back
// atomically.
type Store struct {
	mu      sync.Mutex
	path    string
	entries map[string]types.LinkRecord
	now     func() time.Time
}

// Open loads the manifest at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]types.LinkRecord),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read manifest %q", path).
			WithDetail("path", path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to parse manifest %q", path).
			WithDetail("path", path)
	}
	for _, entry := range doc.Entries {
		s.entries[entry.Target] = entry
	}
	return s, nil
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Record stores the strategy used for spec, replacing any earlier entry for
// the same target.
func (s *Store) Record(spec types.LinkSpec, strategy types.Strategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[spec.Target] = types.LinkRecord{
		Source:   spec.Source,
		Target:   spec.Target,
		Strategy: strategy,
		Created:  s.now().UTC().Truncate(time.Second),
	}
	return s.save()
}

// Lookup returns the entry for target
func (s *Store) Lookup(target string) (types.LinkRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[target]
	return entry, ok
}

// Forget drops the entry for target. Unknown targets are ignored.
func (s *Store) Forget(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[target]; !ok {
		return nil
	}
	delete(s.entries, target)
	return s.save()
}

// Entries returns all entries sorted by target
func (s *Store) Entries() []types.LinkRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted()
}

func (s *Store) sorted() []types.LinkRecord {
	entries := make([]types.LinkRecord, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Target < entries[j].Target
	})
	return entries
}

func (s *Store) save() error {
	data, err := toml.Marshal(document{Version: FormatVersion, Entries: s.sorted()})
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "failed to encode manifest")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to create manifest directory for %q", s.path).
			WithDetail("path", s.path)
	}
	if err := renameio.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write manifest %q", s.path).
			WithDetail("path", s.path)
	}
	return nil
}

var _ linker.Recorder = (*Store)(nil)
