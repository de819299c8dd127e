package trace

import (
	"encoding/gob"
	"os"

	"github.com/oisee/m6800/pkg/cpu"
)

// Snapshot captures everything needed to resume one machine: its
// register file and a full memory dump.
type Snapshot struct {
	State  cpu.State
	Memory [65536]byte
}

func init() {
	gob.Register(cpu.State{})
}

// SaveCheckpoint writes snap to path.
func SaveCheckpoint(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(snap)
}

// LoadCheckpoint reads a snapshot previously written by SaveCheckpoint.
func LoadCheckpoint(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
