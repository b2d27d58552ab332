package uuidkey

import (
	"github.com/xgzlucario/keybench/internal/hasher"
	"github.com/xgzlucario/keybench/internal/nohash"
)

// NoHashKey hashes to the folded payload and is stored in a nohash.Map.
type NoHashKey struct {
	nohash.Enabled
	v U128
}

func NewNoHashKey(u U128) NoHashKey {
	return NoHashKey{v: u}
}

func (k NoHashKey) Sum64() uint64 {
	return k.v.Fold()
}

// ManualKey writes the folded payload into a hasher.Hasher as a single word.
type ManualKey U128

func (k ManualKey) Hash(h hasher.Hasher) {
	h.WriteUint64(U128(k).Fold())
}
