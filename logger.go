package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Fields carried by result events, hidden in plain output.
var resultFields = []string{"trial", "iterations", "elapsed"}

func newLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(configGetLogLevel())
	if err != nil {
		return zerolog.Nop(), err
	}

	switch format := configGetLogFormat(); format {
	case "plain":
		cw := zerolog.ConsoleWriter{
			Out:           w,
			NoColor:       true,
			PartsOrder:    []string{zerolog.MessageFieldName},
			FieldsExclude: resultFields,
		}
		return zerolog.New(cw).Level(level), nil

	case "json":
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil

	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", errUnknownLogFormat, format)
	}
}
