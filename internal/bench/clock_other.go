//go:build !linux && !js

package bench

func DefaultClock() Clock { return WallClock{} }
