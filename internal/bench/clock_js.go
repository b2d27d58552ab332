//go:build js

package bench

import "syscall/js"

// PerformanceClock reads performance.now() of the host page.
type PerformanceClock struct {
	perf js.Value
}

func (c PerformanceClock) Now() float64 {
	return c.perf.Call("now").Float() / 1000
}

func DefaultClock() Clock {
	perf := js.Global().Get("performance")
	if perf.IsUndefined() {
		return WallClock{}
	}
	return PerformanceClock{perf: perf}
}
