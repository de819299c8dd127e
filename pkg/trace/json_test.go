package trace

import (
	"encoding/json"
	"testing"

	"github.com/oisee/m6800/pkg/cpu"
)

func TestExportJSONRoundTrip(t *testing.T) {
	entries := []Entry{
		{MachineID: 0, Step: 0, PC: 0x0000, State: cpu.State{A: 0x01}},
		{MachineID: 0, Step: 1, PC: 0x0002, State: cpu.State{A: 0x02}},
	}
	data, err := ExportJSON(entries)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len(decoded) = %d, want 2", len(decoded))
	}
	if decoded[1]["pc"].(float64) != 2 {
		t.Errorf("decoded[1][pc] = %v, want 2", decoded[1]["pc"])
	}
	if decoded[1]["a"].(float64) != 2 {
		t.Errorf("decoded[1][a] = %v, want 2", decoded[1]["a"])
	}
}

func TestExportJSONEmpty(t *testing.T) {
	data, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("ExportJSON(nil) = %s, want []", data)
	}
}
