package bench

import "time"

// Clock reads a timestamp in fractional seconds.
type Clock interface {
	Now() float64
}

// WallClock reads the system wall clock.
type WallClock struct{}

func (WallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
