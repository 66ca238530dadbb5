package g2p

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b r3.Vec, tol Real) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestFrameModeSelection(t *testing.T) {
	cases := []struct {
		name   string
		origin [3]Real
		euler  [3]Real
		want   Mode
	}{
		{"none", [3]Real{}, [3]Real{}, ModeNone},
		{"below threshold", [3]Real{9e-6, -9e-6, 0}, [3]Real{0, 9e-6, 0}, ModeNone},
		{"translate", [3]Real{0, 0, 1e-5}, [3]Real{}, ModeTranslate},
		{"rotate", [3]Real{}, [3]Real{0, 0.2, 0}, ModeRotate},
		{"both", [3]Real{0.1, 0.2, 0.3}, [3]Real{0.1, 0.2, 0.3}, ModeBoth},
	}
	for _, c := range cases {
		f := NewFrame(c.name, &Plane{})
		if err := f.SetOrigin(c.origin[0], c.origin[1], c.origin[2]); err != nil {
			t.Fatal(err)
		}
		if err := f.SetEulerAngles(c.euler[0], c.euler[1], c.euler[2]); err != nil {
			t.Fatal(err)
		}
		if st := f.Begin(); st != StatusOK {
			t.Fatalf("%s: Begin = %s", c.name, st)
		}
		if f.Mode() != c.want {
			t.Fatalf("%s: mode %s, want %s", c.name, f.Mode(), c.want)
		}
		if f.UsesTranslation() != (c.want == ModeTranslate || c.want == ModeBoth) {
			t.Fatalf("%s: UsesTranslation wrong", c.name)
		}
		if !f.UsesRotation() && f.RotationMatrix() != (Mat3{}) {
			t.Fatalf("%s: rotation matrix set without rotation", c.name)
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	setups := []struct {
		origin [3]Real
		euler  [3]Real
	}{
		{[3]Real{}, [3]Real{}},
		{[3]Real{0.5, -1.2, 3}, [3]Real{}},
		{[3]Real{}, [3]Real{math.Pi / 4, math.Pi / 3, math.Pi / 2}},
		{[3]Real{-0.7, 0.01, 0.8}, [3]Real{math.Pi, math.Pi, math.Pi}},
		{[3]Real{2, 2, 2}, [3]Real{-1.1, 0.4, 2.7}},
	}
	for _, s := range setups {
		f := NewFrame("rt", &Plane{})
		_ = f.SetOrigin(s.origin[0], s.origin[1], s.origin[2])
		_ = f.SetEulerAngles(s.euler[0], s.euler[1], s.euler[2])
		if st := f.Begin(); st != StatusOK {
			t.Fatalf("Begin = %s", st)
		}
		for i := 0; i < 100; i++ {
			p := r3.Vec{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10, Z: rng.Float64()*20 - 10}
			q := f.ToLab(f.ToGeometry(p))
			if !near(p, q, 1e-9) {
				t.Fatalf("mode %s: round trip %+v -> %+v", f.Mode(), p, q)
			}
		}
	}
}

func TestFrameTranslateThenRotate(t *testing.T) {
	f := NewFrame("order", &Plane{})
	_ = f.SetOrigin(1, 0, 0)
	_ = f.SetEulerAngles(math.Pi/2, 0, 0)
	f.Begin()
	// the origin itself lands on the geo origin only if translation comes first
	if g := f.ToGeometry(r3.Vec{X: 1}); !near(g, r3.Vec{}, 1e-12) {
		t.Fatalf("origin maps to %+v", g)
	}
	// lab (1,1,0) is +y of the origin; rotating the frame by +90° about z
	// makes it the local +x axis
	if g := f.ToGeometry(r3.Vec{X: 1, Y: 1}); !near(g, r3.Vec{X: 1}, 1e-12) {
		t.Fatalf("lab (1,1,0) maps to %+v", g)
	}
}

func TestFrameLifecycle(t *testing.T) {
	f := NewFrame("nil surface", nil)
	if st := f.Begin(); st != StatusInitError {
		t.Fatalf("Begin without surface = %s", st)
	}

	bad := NewFrame("bad plane", &Plane{Tolerance: -1})
	if st := bad.Begin(); st != StatusInitError {
		t.Fatalf("Begin with invalid surface = %s", st)
	}

	tr := NewFrame("transport", &Plane{})
	tr.Transport = true
	if st := tr.Begin(); st != StatusInitError {
		t.Fatalf("transport frame without converter = %s", st)
	}

	ok := NewFrame("ok", &Plane{})
	if st := ok.Begin(); st != StatusOK {
		t.Fatalf("Begin = %s", st)
	}
	if err := ok.SetOrigin(1, 2, 3); !errors.Is(err, ErrFrozen) {
		t.Fatalf("SetOrigin after Begin: %v", err)
	}
	if err := ok.SetEulerAngles(1, 2, 3); !errors.Is(err, ErrFrozen) {
		t.Fatalf("SetEulerAngles after Begin: %v", err)
	}
	if st := ok.Begin(); st != StatusOK || ok.Mode() != ModeNone {
		t.Fatalf("second Begin changed state: %s %s", st, ok.Mode())
	}
}

func TestFrameUseBeforeBeginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewFrame("early", &Plane{}).ToGeometry(r3.Vec{})
}

func TestFrameTouchesBoundarySieve(t *testing.T) {
	sv := DefaultSieve()
	f := NewFrame("sieve", sv)
	_ = f.SetOrigin(0.1, -0.02, 0.05)
	_ = f.SetEulerAngles(0.3, 0.1, -0.2)
	if st := f.Begin(); st != StatusOK {
		t.Fatalf("Begin = %s", st)
	}
	for id := 0; id < sv.NumHoles(); id++ {
		c, _ := sv.HoleCenter(id)
		if !f.TouchesBoundary(f.ToLab(c)) {
			t.Fatalf("hole %d centre does not pass in lab", id)
		}
	}
	// same lab point without the frame offset misses
	c, _ := sv.HoleCenter(0)
	if f.TouchesBoundary(c) {
		t.Fatal("local coordinates should not pass as lab coordinates")
	}
}

func TestFrameTouchesBoundaryTransport(t *testing.T) {
	sv := DefaultSieve()
	conv := HallConverter{Angle: 5.767 * math.Pi / 180}

	tf := NewFrame("transport", sv)
	tf.Transport = true
	tf.Converter = conv
	if st := tf.Begin(); st != StatusOK {
		t.Fatalf("Begin = %s", st)
	}
	lf := NewFrame("lab", sv)
	lf.Converter = conv
	lf.Begin()

	for _, id := range []int{0, 15, 31, 62} {
		c, _ := sv.HoleCenter(id)
		v := TransportVector{c.X, 0.01, c.Y, -0.02, 0.001}
		if !tf.TouchesBoundaryTransport(v, c.Z) {
			t.Fatalf("hole %d: transport vector does not pass", id)
		}
		lab := conv.TransportToLab(v, c.Z)
		if !tf.TouchesBoundary(lab) {
			t.Fatalf("hole %d: lab point does not pass the transport frame", id)
		}
		if lf.TouchesBoundaryTransport(v, c.Z) {
			t.Fatalf("hole %d: lab frame should see the converted point off the sieve", id)
		}
	}
	if !tf.UsesTransport() || lf.UsesTransport() {
		t.Fatal("UsesTransport flags wrong")
	}
}

func TestFrameTouchesBoundaryTransportNoConverter(t *testing.T) {
	sv := DefaultSieve()
	f := NewFrame("bare", sv)
	if st := f.Begin(); st != StatusOK {
		t.Fatalf("Begin = %s", st)
	}
	c, _ := sv.HoleCenter(33)
	if !f.TouchesBoundaryTransport(TransportVector{c.X, 0.1, c.Y, 0.2, 0}, c.Z) {
		t.Fatal("without a converter (x, y) should be taken as local coordinates")
	}
	if f.TouchesBoundaryTransport(TransportVector{c.Y, 0, c.X, 0, 0}, c.Z) {
		t.Fatal("swapped x and y still pass")
	}
}
