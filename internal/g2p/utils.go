package g2p

import (
	"errors"
	"math"
)

type Real = float64

var (
	ErrConfig    = errors.New("g2p: configuration error")
	ErrIndex     = errors.New("g2p: index error")
	ErrFrozen    = errors.New("g2p: frame already initialized")
	ErrNoSurface = errors.New("g2p: no surface attached")
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clamp limits x to [lo, hi].
func clamp(x, lo, hi Real) Real {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

func isActive(a, b, c Real) bool {
	return math.Abs(a) >= ActiveEps || math.Abs(b) >= ActiveEps || math.Abs(c) >= ActiveEps
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
