// Package uuidkey holds the key representations of a UUID used by the trials.
package uuidkey

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// U128 is a UUID read as a big endian 128-bit integer.
type U128 struct {
	Hi, Lo uint64
}

func FromUUID(id uuid.UUID) U128 {
	return U128{
		Hi: binary.BigEndian.Uint64(id[:8]),
		Lo: binary.BigEndian.Uint64(id[8:]),
	}
}

// Fold xors the two halves together.
func (u U128) Fold() uint64 {
	return u.Hi ^ u.Lo
}

func (u U128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}
