package testutil

import (
	"sync"

	"github.com/arthur-debert/extlinker/pkg/types"
)

// MemoryRecorder keeps strategy records in memory.
type MemoryRecorder struct {
	mu      sync.Mutex
	records map[string]types.LinkRecord
	// Forgotten lists every target passed to Forget, in order.
	Forgotten []string
	// RecordErr, when set, is returned by Record after storing the entry.
	RecordErr error
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{records: make(map[string]types.LinkRecord)}
}

func (r *MemoryRecorder) Record(spec types.LinkSpec, strategy types.Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[spec.Target] = types.LinkRecord{Source: spec.Source, Target: spec.Target, Strategy: strategy}
	return r.RecordErr
}

func (r *MemoryRecorder) Lookup(target string) (types.LinkRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[target]
	return record, ok
}

func (r *MemoryRecorder) Forget(target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, target)
	r.Forgotten = append(r.Forgotten, target)
	return nil
}
