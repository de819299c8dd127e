// Package harness drives many independent (Executor, Memory) pairs
// concurrently across a worker pool. It adds no architectural
// semantics of its own; it exists purely so test and benchmark code
// can run a batch of machines to completion without hand-rolling
// goroutine plumbing each time.
package harness

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/oisee/m6800/pkg/cpu"
	"github.com/oisee/m6800/pkg/memory"
)

// Config controls a batch run.
type Config struct {
	NumWorkers int
	Verbose    bool
}

// Machine is one independent processor under the pool's control. No
// two goroutines ever drive the same Machine's Exec at once.
type Machine struct {
	ID     int
	Exec   *cpu.Executor
	Memory *memory.Flat
}

// NewMachine wires a fresh Executor to a fresh Memory and loads
// program at origin, the shape every harness caller needs to set up a
// machine before handing it to a Job.
func NewMachine(id int, origin uint16, program []byte) *Machine {
	mem := memory.New()
	mem.Load(origin, program)
	e := cpu.New()
	e.AttachMemory(mem)
	e.SetPC(origin)
	return &Machine{ID: id, Exec: e, Memory: mem}
}

// Job is one unit of batch work: step Machine until Done reports
// completion or MaxSteps is reached, whichever comes first. Done may
// be nil, in which case the job always runs exactly MaxSteps steps
// (or stops early on a decode/execution error).
type Job struct {
	Machine  *Machine
	MaxSteps int
	Done     func(*cpu.Executor) bool
}

// Outcome records what happened to one Job.
type Outcome struct {
	MachineID  int
	StepsRun   int
	FinalState cpu.State
	Err        error
}

// Pool runs jobs across a fixed number of worker goroutines: a closed
// channel of work indices, a waitgroup of workers, atomic counters for
// progress.
type Pool struct {
	Config
	completed atomic.Int64
	stepped   atomic.Int64
}

// NewPool returns a Pool with NumWorkers workers, defaulting to
// runtime.NumCPU() when Config.NumWorkers is not positive.
func NewPool(cfg Config) *Pool {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	return &Pool{Config: cfg}
}

// Stats returns the running totals of completed jobs and instructions
// stepped across all jobs so far.
func (p *Pool) Stats() (completed, stepped int64) {
	return p.completed.Load(), p.stepped.Load()
}

// RunJobs runs every job to completion and returns one Outcome per
// job, in the same order jobs were given. Each Machine is stepped by
// exactly one goroutine for its entire job, so concurrency here can
// never change a machine's outcome versus running it serially.
func (p *Pool) RunJobs(jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))
	indices := make(chan int, len(jobs))
	for i := range jobs {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < p.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				outcomes[i] = p.runOne(jobs[i])
				n := p.completed.Add(1)
				if p.Verbose {
					fmt.Fprintf(os.Stderr, "  [%d/%d] machine %d: %d steps\n",
						n, len(jobs), jobs[i].Machine.ID, outcomes[i].StepsRun)
				}
			}
		}()
	}
	wg.Wait()
	return outcomes
}

func (p *Pool) runOne(job Job) Outcome {
	m := job.Machine
	steps := 0
	for steps < job.MaxSteps {
		if job.Done != nil && job.Done(m.Exec) {
			break
		}
		if _, err := m.Exec.Step(); err != nil {
			return Outcome{MachineID: m.ID, StepsRun: steps, FinalState: m.Exec.State(), Err: err}
		}
		steps++
		p.stepped.Add(1)
	}
	return Outcome{MachineID: m.ID, StepsRun: steps, FinalState: m.Exec.State()}
}
