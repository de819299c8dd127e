package trace

import "encoding/json"

// record is the JSON wire shape for one Entry. cpu.State has no JSON
// tags of its own (it is an internal register file, not a wire type),
// so Entry is flattened into tagged fields here rather than exporting
// tags on cpu.State itself.
type record struct {
	MachineID int    `json:"machine_id"`
	Step      int    `json:"step"`
	PC        uint16 `json:"pc"`
	A         uint8  `json:"a"`
	B         uint8  `json:"b"`
	X         uint16 `json:"x"`
	SP        uint16 `json:"sp"`
	CCR       uint8  `json:"ccr"`
}

// ExportJSON renders entries as an indented JSON array.
func ExportJSON(entries []Entry) ([]byte, error) {
	out := make([]record, len(entries))
	for i, e := range entries {
		out[i] = record{
			MachineID: e.MachineID,
			Step:      e.Step,
			PC:        e.PC,
			A:         e.State.A,
			B:         e.State.B,
			X:         e.State.X,
			SP:        e.State.SP,
			CCR:       e.State.CCR,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
