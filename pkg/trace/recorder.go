// Package trace records execution history for introspection during
// testing: a mutex-guarded recorder multiple harness workers can
// append to concurrently, plus gob checkpointing and JSON export of
// what it collected.
package trace

import (
	"sort"
	"sync"

	"github.com/oisee/m6800/pkg/cpu"
)

// Entry records the machine state after one executed instruction.
type Entry struct {
	MachineID int
	Step      int
	PC        uint16
	State     cpu.State
}

// Recorder collects Entry values from one or more machines running
// concurrently. Every method takes the same lock, so a harness.Pool
// can share one Recorder across all its workers.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends e.
func (r *Recorder) Record(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of all recorded entries, sorted by machine ID
// then by step, so output is stable regardless of which worker
// recorded which entry first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].MachineID != out[j].MachineID {
			return out[i].MachineID < out[j].MachineID
		}
		return out[i].Step < out[j].Step
	})
	return out
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
