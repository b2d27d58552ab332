package bench

import (
	"cmp"

	"github.com/chen3feng/stl4go"
	"github.com/rs/zerolog"
)

// Sink receives the result of each trial.
type Sink interface {
	Emit(r Result)
}

// LogSink writes results through a zerolog logger at info level.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(r Result) {
	s.logger.Info().
		Str("trial", r.Name).
		Int("iterations", r.Iterations).
		Float64("elapsed", r.Elapsed).
		Msg(r.String())
}

// Tee emits to every sink in order.
type Tee []Sink

func (t Tee) Emit(r Result) {
	for _, s := range t {
		s.Emit(r)
	}
}

// Collector keeps results in memory.
type Collector struct {
	results []Result
}

func (c *Collector) Emit(r Result) {
	c.results = append(c.results, r)
}

func (c *Collector) Results() []Result {
	return c.results
}

type rank struct {
	elapsed float64
	seq     int
}

func rankCompare(a, b rank) int {
	if a.elapsed == b.elapsed {
		return cmp.Compare(a.seq, b.seq)
	}
	return cmp.Compare(a.elapsed, b.elapsed)
}

// Ranked returns the results fastest first. Ties keep emit order.
func (c *Collector) Ranked() []Result {
	skl := stl4go.NewSkipListFunc[rank, Result](rankCompare)
	for i, r := range c.results {
		skl.Insert(rank{r.Elapsed, i}, r)
	}

	ranked := make([]Result, 0, len(c.results))
	skl.ForEachIf(func(_ rank, r Result) bool {
		ranked = append(ranked, r)
		return true
	})
	return ranked
}
