package main

import (
	"errors"
)

var (
	ErrLookupMismatch = errors.New("lookup returned an unexpected index")

	errUnknownLogFormat = errors.New("unknown log format")
)
