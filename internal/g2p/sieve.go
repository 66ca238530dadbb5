package g2p

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sieve is a calibration plate with a rows×cols grid of round holes.
// Hole ids are row-major: id = row*cols + col. Lengths are in meters.
type Sieve struct {
	rows, cols int
	x, y       []Real // hole centers, local frame
	large      []bool
	dHole      Real
	dLarge     Real
	z          Real
	tol        Real
}

// NewSieve validates the hole layout. centers must hold rows*cols (x, y)
// pairs in row-major order.
func NewSieve(rows, cols int, centers [][2]Real, dHole, dLarge Real, largeIDs []int, z, tol Real) (*Sieve, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: sieve grid must be positive, got %dx%d", ErrConfig, rows, cols)
	}
	n := rows * cols
	if len(centers) != n {
		return nil, fmt.Errorf("%w: sieve needs %d hole centers, got %d", ErrConfig, n, len(centers))
	}
	if !(dHole > 0) || !(dLarge > 0) {
		return nil, fmt.Errorf("%w: hole diameters must be > 0, got %.6g and %.6g", ErrConfig, dHole, dLarge)
	}
	if tol < 0 {
		return nil, fmt.Errorf("%w: sieve z tolerance must be >= 0, got %.6g", ErrConfig, tol)
	}
	s := &Sieve{
		rows: rows, cols: cols,
		x: make([]Real, n), y: make([]Real, n),
		large: make([]bool, n),
		dHole: dHole, dLarge: dLarge,
		z: z, tol: tol,
	}
	for i, c := range centers {
		s.x[i], s.y[i] = c[0], c[1]
	}
	for _, id := range largeIDs {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%w: large hole id %d outside [0,%d)", ErrIndex, id, n)
		}
		s.large[id] = true
	}
	DebugLog("Created sieve %dx%d at z=%.6g, holes %.6g/%.6g, large=%v", rows, cols, z, dHole, dLarge, largeIDs)
	return s, nil
}

// GridCenters lays holes on a regular grid centred on (x0, y0): rows step
// along x by rowPitch, columns step along y by colPitch.
func GridCenters(rows, cols int, rowPitch, colPitch, x0, y0 Real) [][2]Real {
	out := make([][2]Real, 0, rows*cols)
	for r := 0; r < rows; r++ {
		x := x0 + (Real(r)-Real(rows-1)/2)*rowPitch
		for c := 0; c < cols; c++ {
			y := y0 + (Real(c)-Real(cols-1)/2)*colPitch
			out = append(out, [2]Real{x, y})
		}
	}
	return out
}

// Default g2p sieve geometry.
const (
	SieveRows        = 7
	SieveCols        = 9
	SieveRowPitch    = 13.3096e-3
	SieveColPitch    = 6.1214e-3
	SieveHoleD       = 1.3970e-3
	SieveLargeHoleD  = 2.6924e-3
	SieveZ           = 799.60e-3
	SieveZTolerance  = 1e-4
	sieveDefaultName = "sieve"
)

var SieveLargeHoles = []int{15, 24, 29, 33, 39}

func DefaultSieve() *Sieve {
	s, err := NewSieve(SieveRows, SieveCols,
		GridCenters(SieveRows, SieveCols, SieveRowPitch, SieveColPitch, 0, 0),
		SieveHoleD, SieveLargeHoleD, SieveLargeHoles, SieveZ, SieveZTolerance)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Sieve) PassableLocal(p r3.Vec) bool {
	_, ok := s.Pass(p)
	return ok
}

// Pass reports whether p goes through a hole and which one. id is -1 on a miss.
func (s *Sieve) Pass(p r3.Vec) (id int, ok bool) {
	if math.Abs(p.Z-s.z) > s.tol {
		return -1, false
	}
	return s.holeAt(p.X, p.Y)
}

// PassTransport checks a transport vector already drifted to the sieve plane.
func (s *Sieve) PassTransport(v TransportVector) (id int, ok bool) {
	return s.holeAt(v[0], v[2])
}

func (s *Sieve) holeAt(x, y Real) (int, bool) {
	for i := range s.x {
		r := s.HoleRadius(i)
		dx, dy := x-s.x[i], y-s.y[i]
		if dx*dx+dy*dy <= r*r {
			return i, true
		}
	}
	return -1, false
}

func (s *Sieve) Rows() int       { return s.rows }
func (s *Sieve) Cols() int       { return s.cols }
func (s *Sieve) NumHoles() int   { return len(s.x) }
func (s *Sieve) Z() Real         { return s.z }
func (s *Sieve) Tolerance() Real { return s.tol }

// HoleCenter returns the hole centre on the sieve plane.
func (s *Sieve) HoleCenter(id int) (r3.Vec, error) {
	if id < 0 || id >= len(s.x) {
		return r3.Vec{}, fmt.Errorf("%w: hole id %d outside [0,%d)", ErrIndex, id, len(s.x))
	}
	return r3.Vec{X: s.x[id], Y: s.y[id], Z: s.z}, nil
}

func (s *Sieve) IsLargeHole(id int) bool {
	return id >= 0 && id < len(s.large) && s.large[id]
}

func (s *Sieve) HoleRadius(id int) Real {
	if s.IsLargeHole(id) {
		return s.dLarge / 2
	}
	return s.dHole / 2
}

// Extent returns the half sizes (x, y) of the smallest box around all holes.
func (s *Sieve) Extent() (hx, hy Real) {
	for i := range s.x {
		r := s.HoleRadius(i)
		hx = math.Max(hx, math.Abs(s.x[i])+r)
		hy = math.Max(hy, math.Abs(s.y[i])+r)
	}
	return hx, hy
}
