package harness

import (
	"errors"
	"testing"

	"github.com/oisee/m6800/pkg/cpu"
)

// TestPoolMatchesSerialExecution checks the determinism property a
// batch scheduler must hold: stepping machines through the pool must
// produce the same final states as stepping each one serially in a
// loop, since concurrency here only affects scheduling, not outcomes.
func TestPoolMatchesSerialExecution(t *testing.T) {
	program := []byte{0x8B, 0x01, 0x8B, 0x01, 0x8B, 0x01} // ADDA #1, three times
	const n = 12

	serial := make([]cpu.State, n)
	for i := 0; i < n; i++ {
		m := NewMachine(i, 0, program)
		for s := 0; s < 3; s++ {
			if _, err := m.Exec.Step(); err != nil {
				t.Fatalf("serial machine %d step %d: %v", i, s, err)
			}
		}
		serial[i] = m.Exec.State()
	}

	pool := NewPool(Config{NumWorkers: 4})
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = Job{Machine: NewMachine(i, 0, program), MaxSteps: 3}
	}
	outcomes := pool.RunJobs(jobs)

	for i := 0; i < n; i++ {
		if outcomes[i].Err != nil {
			t.Fatalf("pool machine %d: %v", i, outcomes[i].Err)
		}
		if !outcomes[i].FinalState.Equal(serial[i]) {
			t.Errorf("machine %d: pool state %+v != serial state %+v", i, outcomes[i].FinalState, serial[i])
		}
	}

	completed, stepped := pool.Stats()
	if completed != n {
		t.Errorf("completed = %d, want %d", completed, n)
	}
	if stepped != n*3 {
		t.Errorf("stepped = %d, want %d", stepped, n*3)
	}
}

func TestRunJobsStopsOnDone(t *testing.T) {
	program := []byte{0x8B, 0x01, 0x8B, 0x01, 0x8B, 0x01, 0x8B, 0x01}
	m := NewMachine(0, 0, program)
	pool := NewPool(Config{NumWorkers: 1})

	job := Job{
		Machine:  m,
		MaxSteps: 100,
		Done: func(e *cpu.Executor) bool {
			return e.State().A >= 2
		},
	}
	outcomes := pool.RunJobs([]Job{job})
	if outcomes[0].FinalState.A != 2 {
		t.Fatalf("A = %d, want 2", outcomes[0].FinalState.A)
	}
	if outcomes[0].StepsRun != 2 {
		t.Fatalf("StepsRun = %d, want 2", outcomes[0].StepsRun)
	}
}

func TestOutcomeErrPropagatesFromStep(t *testing.T) {
	m := NewMachine(0, 0, []byte{0x04}) // unassigned opcode
	pool := NewPool(Config{NumWorkers: 1})

	outcomes := pool.RunJobs([]Job{{Machine: m, MaxSteps: 1}})
	if outcomes[0].Err == nil {
		t.Fatal("want error for invalid opcode")
	}
	var de *cpu.DecodeError
	if !errors.As(outcomes[0].Err, &de) {
		t.Fatalf("got %T, want *cpu.DecodeError", outcomes[0].Err)
	}
}

func TestRunJobsPreservesOrder(t *testing.T) {
	pool := NewPool(Config{NumWorkers: 8})
	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = Job{Machine: NewMachine(i, 0, []byte{0x01}), MaxSteps: 1} // NOP
	}
	outcomes := pool.RunJobs(jobs)
	for i, o := range outcomes {
		if o.MachineID != i {
			t.Fatalf("outcomes[%d].MachineID = %d, want %d", i, o.MachineID, i)
		}
	}
}
