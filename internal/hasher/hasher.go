// Package hasher plugs hand written hash accumulators into a general
// purpose hash table.
package hasher

import (
	"encoding/binary"
	"errors"
	"hash"
)

// ErrWrongUsage is raised by Fold when it is fed anything but a single word.
var ErrWrongUsage = errors.New("hasher: wrong usage of fold hasher")

// Hasher accumulates the hash of a key.
type Hasher interface {
	hash.Hash64
	WriteUint64(v uint64)
}

// Hashable is a key that feeds itself into a Hasher.
type Hashable interface {
	comparable
	Hash(h Hasher)
}

// BuildHasher returns a fresh Hasher for every key hashed.
type BuildHasher func() Hasher

var _ Hasher = (*Fold)(nil)

// Fold returns the last word written as the hash, without mixing.
// It is only valid for keys that write exactly one uint64.
type Fold struct {
	sum uint64
}

func NewFold() Hasher {
	return &Fold{}
}

func (f *Fold) WriteUint64(v uint64) {
	f.sum = v
}

func (f *Fold) Sum64() uint64 {
	return f.sum
}

// Write always panics.
func (f *Fold) Write([]byte) (int, error) {
	panic(ErrWrongUsage)
}

func (f *Fold) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, f.sum)
}

func (f *Fold) Reset() {
	f.sum = 0
}

func (f *Fold) Size() int { return 8 }

func (f *Fold) BlockSize() int { return 8 }
