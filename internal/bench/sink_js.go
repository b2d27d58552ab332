//go:build js

package bench

import (
	"syscall/js"

	"github.com/rs/zerolog"
)

// ConsoleSink writes result lines to the browser console.
type ConsoleSink struct {
	console js.Value
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{console: js.Global().Get("console")}
}

func (s *ConsoleSink) Emit(r Result) {
	s.console.Call("log", r.String())
}

func DefaultSink(zerolog.Logger) Sink {
	return NewConsoleSink()
}
