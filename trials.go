package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xgzlucario/keybench/internal/bench"
	"github.com/xgzlucario/keybench/internal/hasher"
	"github.com/xgzlucario/keybench/internal/nohash"
	"github.com/xgzlucario/keybench/internal/table"
	"github.com/xgzlucario/keybench/internal/uuidkey"
)

const (
	Iterations = 1000
	DataSize   = 10000

	// lookupOnly names the trial that times lookups against a prebuilt table.
	lookupOnly = ", no write"
)

var (
	_ table.Table[uuidkey.NoHashKey, int] = (*nohash.Map[uuidkey.NoHashKey, int])(nil)
	_ table.Table[uuidkey.ManualKey, int] = (*hasher.Map[uuidkey.ManualKey, int])(nil)
)

// strategy is one way of keying the table by an identifier.
type strategy[K comparable] struct {
	name     string
	key      func(id uuid.UUID) K
	newTable func(capacity int) table.Table[K, int]
}

var (
	uuidDefault = strategy[uuid.UUID]{
		name: "uuid default hash",
		key:  func(id uuid.UUID) uuid.UUID { return id },
		newTable: func(capacity int) table.Table[uuid.UUID, int] {
			return table.NewBuiltin[uuid.UUID, int](capacity)
		},
	}

	u128Default = strategy[uuidkey.U128]{
		name: "u128 default hash",
		key:  uuidkey.FromUUID,
		newTable: func(capacity int) table.Table[uuidkey.U128, int] {
			return table.NewBuiltin[uuidkey.U128, int](capacity)
		},
	}

	u128NoHash = strategy[uuidkey.NoHashKey]{
		name: "u128 xor hash with nohash map",
		key: func(id uuid.UUID) uuidkey.NoHashKey {
			return uuidkey.NewNoHashKey(uuidkey.FromUUID(id))
		},
		newTable: func(capacity int) table.Table[uuidkey.NoHashKey, int] {
			return nohash.New[uuidkey.NoHashKey, int](capacity)
		},
	}

	u128Manual = strategy[uuidkey.ManualKey]{
		name: "u128 xor hash manual impl",
		key: func(id uuid.UUID) uuidkey.ManualKey {
			return uuidkey.ManualKey(uuidkey.FromUUID(id))
		},
		newTable: func(capacity int) table.Table[uuidkey.ManualKey, int] {
			return hasher.New[uuidkey.ManualKey, int](capacity, hasher.NewFold)
		},
	}
)

func (s strategy[K]) build(data uuidkey.Dataset) table.Table[K, int] {
	t := s.newTable(len(data))
	for _, e := range data {
		t.Put(s.key(e.ID), e.Index)
	}
	return t
}

// lookup panics unless every identifier maps back to its own index.
func (s strategy[K]) lookup(t table.Table[K, int], data uuidkey.Dataset) {
	for _, e := range data {
		index, ok := t.Get(s.key(e.ID))
		if !ok || index != e.Index {
			panic(fmt.Errorf("%w: %s: key %s got (%d, %v), want %d",
				ErrLookupMismatch, s.name, uuidkey.FromUUID(e.ID), index, ok, e.Index))
		}
	}
}

// trials returns the build+lookup trial and the lookup only trial. The table
// of the lookup only trial is built right before it runs.
func (s strategy[K]) trials(data uuidkey.Dataset) []bench.Trial {
	var prebuilt table.Table[K, int]
	return []bench.Trial{
		{
			Name: s.name,
			Op:   func() { s.lookup(s.build(data), data) },
		},
		{
			Name:  s.name + lookupOnly,
			Setup: func() { prebuilt = s.build(data) },
			Op:    func() { s.lookup(prebuilt, data) },
		},
	}
}

// buildTrials lists every trial in run order. Later trials run on warm caches.
func buildTrials(data uuidkey.Dataset) []bench.Trial {
	var trials []bench.Trial
	trials = append(trials, uuidDefault.trials(data)...)
	trials = append(trials, u128Default.trials(data)...)
	trials = append(trials, u128NoHash.trials(data)...)
	trials = append(trials, u128Manual.trials(data)...)
	return trials
}

// runSuite generates a dataset of size entries and runs all trials on it.
func runSuite(runner *bench.Runner, size int) ([]bench.Result, error) {
	data, err := uuidkey.Generate(size)
	if err != nil {
		return nil, err
	}
	return runner.RunAll(buildTrials(data)), nil
}
