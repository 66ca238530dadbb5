package g2p

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Surface decides, in its own local frame, whether a point can pass.
type Surface interface {
	PassableLocal(p r3.Vec) bool
}

// Plane is a slab of thickness 2*Tolerance at depth Z. HalfWidth (x) and
// HalfHeight (y) bound it when positive; zero means unbounded.
type Plane struct {
	Z          Real
	Tolerance  Real
	HalfWidth  Real
	HalfHeight Real
}

func (pl *Plane) Begin() error {
	if pl.Tolerance < 0 || pl.HalfWidth < 0 || pl.HalfHeight < 0 {
		return fmt.Errorf("%w: plane tolerance and half sizes must be >= 0, got %+v", ErrConfig, *pl)
	}
	return nil
}

func (pl *Plane) PassableLocal(p r3.Vec) bool {
	if math.Abs(p.Z-pl.Z) > pl.Tolerance {
		return false
	}
	if pl.HalfWidth > 0 && math.Abs(p.X) > pl.HalfWidth {
		return false
	}
	if pl.HalfHeight > 0 && math.Abs(p.Y) > pl.HalfHeight {
		return false
	}
	return true
}

// Composite combines surfaces sharing one local frame. With RequireAll a point
// must pass every part, otherwise any part is enough.
type Composite struct {
	Parts      []Surface
	RequireAll bool
}

func (c *Composite) Begin() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("%w: composite surface has no parts", ErrConfig)
	}
	for i, s := range c.Parts {
		if s == nil {
			return fmt.Errorf("%w: composite part #%d is nil", ErrConfig, i)
		}
		if b, ok := s.(beginner); ok {
			if err := b.Begin(); err != nil {
				return fmt.Errorf("composite part #%d: %w", i, err)
			}
		}
	}
	return nil
}

func (c *Composite) PassableLocal(p r3.Vec) bool {
	for _, s := range c.Parts {
		ok := s.PassableLocal(p)
		if c.RequireAll && !ok {
			return false
		}
		if !c.RequireAll && ok {
			return true
		}
	}
	return c.RequireAll && len(c.Parts) > 0
}
