package uuidkey

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xgzlucario/keybench/internal/hasher"
)

func TestFromUUID(t *testing.T) {
	assert := assert.New(t)

	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	u := FromUUID(id)
	assert.Equal(uint64(0x0011223344556677), u.Hi)
	assert.Equal(uint64(0x8899aabbccddeeff), u.Lo)
	assert.Equal(uint64(0x0011223344556677^0x8899aabbccddeeff), u.Fold())
	assert.Equal("00112233445566778899aabbccddeeff", u.String())
}

func manualSum(k ManualKey) uint64 {
	h := hasher.NewFold()
	k.Hash(h)
	return h.Sum64()
}

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 100; i++ {
		u := FromUUID(uuid.New())
		a, b := NewNoHashKey(u), ManualKey(u)

		// same payload, same hash under both wrappers
		assert.Equal(u.Fold(), a.Sum64())
		assert.Equal(a.Sum64(), manualSum(b))

		// structural equality
		assert.Equal(NewNoHashKey(u), a)
		assert.True(a == NewNoHashKey(u))
		assert.True(b == ManualKey(u))
	}

	u := U128{Hi: 0x1234, Lo: 0xabcd}
	hi := U128{Hi: 0x1235, Lo: 0xabcd}
	lo := U128{Hi: 0x1234, Lo: 0xabce}
	for _, other := range []U128{hi, lo} {
		assert.NotEqual(NewNoHashKey(u).Sum64(), NewNoHashKey(other).Sum64())
		assert.NotEqual(manualSum(ManualKey(u)), manualSum(ManualKey(other)))
		assert.False(NewNoHashKey(u) == NewNoHashKey(other))
	}

	// swapped halves cancel out
	swapped := U128{Hi: u.Lo, Lo: u.Hi}
	assert.Equal(NewNoHashKey(u).Sum64(), NewNoHashKey(swapped).Sum64())
	assert.NotEqual(NewNoHashKey(u), NewNoHashKey(swapped))
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)

	data, err := Generate(10000)
	assert.Nil(err)
	assert.Len(data, 10000)
	assert.True(data.Distinct())

	for i, e := range data {
		assert.Equal(i, e.Index)
		assert.Equal(uuid.Version(4), e.ID.Version())
		assert.Equal(uuid.RFC4122, e.ID.Variant())
	}

	empty, err := Generate(0)
	assert.Nil(err)
	assert.Len(empty, 0)
}

func TestGenerateDuplicate(t *testing.T) {
	assert := assert.New(t)

	a := bytes.Repeat([]byte{0xaa}, 16)
	b := bytes.Repeat([]byte{0xbb}, 16)
	c := bytes.Repeat([]byte{0xcc}, 16)
	uuid.SetRand(bytes.NewReader(bytes.Join([][]byte{a, a, b, a, c}, nil)))
	defer uuid.SetRand(nil)

	data, err := Generate(3)
	assert.Nil(err)
	assert.Len(data, 3)
	assert.True(data.Distinct())
	assert.Equal(2, data[2].Index)

	dup := Dataset{data[0], data[1], data[0]}
	assert.False(dup.Distinct())
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestGenerateError(t *testing.T) {
	uuid.SetRand(failReader{})
	defer uuid.SetRand(nil)

	data, err := Generate(10)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
}
