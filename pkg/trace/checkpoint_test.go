package trace

import (
	"path/filepath"
	"testing"

	"github.com/oisee/m6800/pkg/cpu"
)

func TestCheckpointRoundTrip(t *testing.T) {
	snap := &Snapshot{State: cpu.State{A: 0x12, B: 0x34, X: 0xBEEF, PC: 0x0100, SP: 0x00FF, CCR: 0x05}}
	snap.Memory[0] = 0xAA
	snap.Memory[65535] = 0xBB

	path := filepath.Join(t.TempDir(), "snapshot.gob")
	if err := SaveCheckpoint(path, snap); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if loaded.State != snap.State {
		t.Errorf("State = %+v, want %+v", loaded.State, snap.State)
	}
	if loaded.Memory[0] != 0xAA || loaded.Memory[65535] != 0xBB {
		t.Errorf("memory dump not restored: [0]=%#02x [65535]=%#02x", loaded.Memory[0], loaded.Memory[65535])
	}
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	_, err := LoadCheckpoint(filepath.Join(t.TempDir(), "does-not-exist.gob"))
	if err == nil {
		t.Fatal("want error for missing checkpoint file")
	}
}
