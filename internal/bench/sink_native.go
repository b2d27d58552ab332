//go:build !js

package bench

import "github.com/rs/zerolog"

func DefaultSink(logger zerolog.Logger) Sink {
	return NewLogSink(logger)
}
