package g2p

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mode tells which parts of the lab->geometry map are active.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeTranslate
	ModeRotate
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeBoth:
		return "translate+rotate"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Status is the outcome of Frame.Begin.
type Status uint8

const (
	StatusNone Status = iota // Begin not called yet
	StatusOK
	StatusInitError
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusOK:
		return "ok"
	case StatusInitError:
		return "init error"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// beginner is implemented by surfaces that need their own setup step.
type beginner interface {
	Begin() error
}

// frameMapper is one of the four lab<->geo strategies picked by Begin.
type frameMapper interface {
	toGeo(p r3.Vec) r3.Vec
	toLab(p r3.Vec) r3.Vec
}

type identityMap struct{}

func (identityMap) toGeo(p r3.Vec) r3.Vec { return p }
func (identityMap) toLab(p r3.Vec) r3.Vec { return p }

type translateMap struct{ origin r3.Vec }

func (m translateMap) toGeo(p r3.Vec) r3.Vec { return r3.Sub(p, m.origin) }
func (m translateMap) toLab(p r3.Vec) r3.Vec { return r3.Add(p, m.origin) }

type rotateMap struct{ fwd, inv Mat3 }

func (m rotateMap) toGeo(p r3.Vec) r3.Vec { return m.fwd.MulVec(p) }
func (m rotateMap) toLab(p r3.Vec) r3.Vec { return m.inv.MulVec(p) }

// affineMap translates then rotates going to geo, and undoes it in reverse order.
type affineMap struct {
	origin   r3.Vec
	fwd, inv Mat3
}

func (m affineMap) toGeo(p r3.Vec) r3.Vec { return m.fwd.MulVec(r3.Sub(p, m.origin)) }
func (m affineMap) toLab(p r3.Vec) r3.Vec { return r3.Add(m.inv.MulVec(p), m.origin) }

// Frame places a Surface in the lab: origin offset plus Euler Z-X′-Z″ rotation.
// Configure with SetOrigin/SetEulerAngles, freeze with Begin, then use.
type Frame struct {
	Name      string
	Surface   Surface
	Converter CoordConverter // needed by transport based frames and TouchesBoundaryTransport
	Transport bool           // frame is defined in transport coordinates

	origin r3.Vec
	euler  Euler
	rot    Mat3 // lab->geo
	rotInv Mat3 // geo->lab
	mode   Mode
	status Status
	mapper frameMapper
}

func NewFrame(name string, s Surface) *Frame {
	return &Frame{Name: name, Surface: s}
}

func (f *Frame) SetOrigin(x, y, z Real) error {
	if f.status != StatusNone {
		return ErrFrozen
	}
	f.origin = r3.Vec{X: x, Y: y, Z: z}
	return nil
}

// SetEulerAngles sets the Z-X′-Z″ angles in radians.
func (f *Frame) SetEulerAngles(alpha, beta, gamma Real) error {
	if f.status != StatusNone {
		return ErrFrozen
	}
	f.euler = Euler{Alpha: alpha, Beta: beta, Gamma: gamma}
	return nil
}

// Begin freezes the frame. It is safe to call more than once; only the first
// call does any work.
func (f *Frame) Begin() Status {
	if f.status != StatusNone {
		return f.status
	}
	if f.Surface == nil {
		DebugLog("Frame %q: %v", f.Name, ErrNoSurface)
		f.status = StatusInitError
		return f.status
	}
	if b, ok := f.Surface.(beginner); ok {
		if err := b.Begin(); err != nil {
			DebugLog("Frame %q: surface begin failed: %v", f.Name, err)
			f.status = StatusInitError
			return f.status
		}
	}
	if f.Transport && f.Converter == nil {
		DebugLog("Frame %q: transport frame without converter", f.Name)
		f.status = StatusInitError
		return f.status
	}

	translate := isActive(f.origin.X, f.origin.Y, f.origin.Z)
	rotate := isActive(f.euler.Alpha, f.euler.Beta, f.euler.Gamma)
	if rotate {
		f.rot, f.rotInv = eulerMatrices(f.euler)
	}

	switch {
	case translate && rotate:
		f.mode = ModeBoth
		f.mapper = affineMap{origin: f.origin, fwd: f.rot, inv: f.rotInv}
	case rotate:
		f.mode = ModeRotate
		f.mapper = rotateMap{fwd: f.rot, inv: f.rotInv}
	case translate:
		f.mode = ModeTranslate
		f.mapper = translateMap{origin: f.origin}
	default:
		f.mode = ModeNone
		f.mapper = identityMap{}
	}
	f.status = StatusOK
	DebugLog("Frame %q: origin=%+v euler=%+v mode=%s", f.Name, f.origin, f.euler, f.mode)
	return f.status
}

func (f *Frame) mustBegun() {
	if f.mapper == nil {
		panic(fmt.Sprintf("g2p: frame %q used before a successful Begin (status %s)", f.Name, f.status))
	}
}

func (f *Frame) ToGeometry(lab r3.Vec) r3.Vec {
	f.mustBegun()
	return f.mapper.toGeo(lab)
}

func (f *Frame) ToLab(geo r3.Vec) r3.Vec {
	f.mustBegun()
	return f.mapper.toLab(geo)
}

// TouchesBoundary reports whether the lab point p is inside the passable
// region of the surface.
func (f *Frame) TouchesBoundary(p r3.Vec) bool {
	f.mustBegun()
	if f.Transport {
		v, z := f.Converter.LabToTransport(p)
		p = transportPoint(v, z)
	}
	return f.Surface.PassableLocal(f.mapper.toGeo(p))
}

// TouchesBoundaryTransport is TouchesBoundary for a transport vector at depth z.
// A lab frame converts v with its Converter. A transport frame, or a frame with
// no Converter, takes (v[0], v[2], z) as the Cartesian point directly, i.e. it
// treats the lab and transport axes as the same.
func (f *Frame) TouchesBoundaryTransport(v TransportVector, z Real) bool {
	f.mustBegun()
	p := transportPoint(v, z)
	if !f.Transport && f.Converter != nil {
		p = f.Converter.TransportToLab(v, z)
	}
	return f.Surface.PassableLocal(f.mapper.toGeo(p))
}

func (f *Frame) UsesTranslation() bool { return f.mode == ModeTranslate || f.mode == ModeBoth }
func (f *Frame) UsesRotation() bool    { return f.mode == ModeRotate || f.mode == ModeBoth }
func (f *Frame) UsesTransport() bool   { return f.Transport }
func (f *Frame) Mode() Mode            { return f.mode }
func (f *Frame) Status() Status        { return f.status }
func (f *Frame) Origin() r3.Vec        { return f.origin }
func (f *Frame) EulerAngles() Euler    { return f.euler }

// RotationMatrix returns the lab->geo rotation; zero when rotation is inactive.
func (f *Frame) RotationMatrix() Mat3 { return f.rot }

// InverseRotationMatrix returns the stored geo->lab rotation.
func (f *Frame) InverseRotationMatrix() Mat3 { return f.rotInv }
