// Package bench times trials and reports their results.
package bench

import (
	"strconv"
)

// Trial is a named workload. Setup runs once before timing starts,
// Op is the timed operation.
type Trial struct {
	Name  string
	Setup func()
	Op    func()
}

// Result is the elapsed wall time in seconds of all iterations of a trial.
type Result struct {
	Name       string
	Iterations int
	Elapsed    float64
}

func (r Result) String() string {
	return r.Name + " time: " + strconv.FormatFloat(r.Elapsed, 'f', -1, 64)
}

// Runner runs every trial a fixed number of times.
type Runner struct {
	iterations int
	clock      Clock
	sink       Sink
}

func NewRunner(iterations int, clock Clock, sink Sink) *Runner {
	return &Runner{
		iterations: iterations,
		clock:      clock,
		sink:       sink,
	}
}

// Run times the trial and emits its result. A panic in Op is not recovered.
func (r *Runner) Run(t Trial) Result {
	if t.Setup != nil {
		t.Setup()
	}

	start := r.clock.Now()
	for i := 0; i < r.iterations; i++ {
		t.Op()
	}
	res := Result{
		Name:       t.Name,
		Iterations: r.iterations,
		Elapsed:    max(r.clock.Now()-start, 0),
	}

	r.sink.Emit(res)
	return res
}

// RunAll runs trials in order.
func (r *Runner) RunAll(trials []Trial) []Result {
	results := make([]Result, 0, len(trials))
	for _, t := range trials {
		results = append(results, r.Run(t))
	}
	return results
}
