package uuidkey

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// Entry pairs an identifier with its position in the dataset.
type Entry struct {
	ID    uuid.UUID
	Index int
}

type Dataset []Entry

// Generate returns n entries with random v4 identifiers and indices 0..n-1.
// A duplicate draw is discarded, so identifiers are pairwise distinct.
func Generate(n int) (Dataset, error) {
	data := make(Dataset, 0, n)
	seen := mapset.NewThreadUnsafeSetWithSize[uuid.UUID](n)

	for len(data) < n {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate identifier %d: %w", len(data), err)
		}
		if !seen.Add(id) {
			continue
		}
		data = append(data, Entry{ID: id, Index: len(data)})
	}
	return data, nil
}

// Distinct reports whether no identifier appears twice.
func (d Dataset) Distinct() bool {
	set := mapset.NewThreadUnsafeSetWithSize[uuid.UUID](len(d))
	for _, e := range d {
		set.Add(e.ID)
	}
	return set.Cardinality() == len(d)
}
