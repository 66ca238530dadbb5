package g2p

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// TransportVector holds spectrometer transport coordinates:
// x, theta (dx/dz), y, phi (dy/dz), delta (dp/p).
type TransportVector [5]Real

// CoordConverter converts between lab Cartesian points and transport coordinates.
type CoordConverter interface {
	TransportToLab(v TransportVector, z Real) r3.Vec
	LabToTransport(p r3.Vec) (TransportVector, Real)
}

// HallConverter maps hall (lab) coordinates to the transport frame of a
// spectrometer sitting at Angle radians from the beam line.
type HallConverter struct {
	Angle Real
}

func (h HallConverter) LabToTransport(p r3.Vec) (TransportVector, Real) {
	s, c := math.Sincos(h.Angle)
	var v TransportVector
	v[0] = -p.Y
	v[2] = p.X*c - p.Z*s
	z := p.X*s + p.Z*c
	return v, z
}

// TransportToLab uses only the positions (x, y) of v; the angles and delta
// do not change where the point is.
func (h HallConverter) TransportToLab(v TransportVector, z Real) r3.Vec {
	s, c := math.Sincos(h.Angle)
	return r3.Vec{
		X: v[2]*c + z*s,
		Y: -v[0],
		Z: z*c - v[2]*s,
	}
}

// transportPoint is the Cartesian position carried by a transport vector.
func transportPoint(v TransportVector, z Real) r3.Vec {
	return r3.Vec{X: v[0], Y: v[2], Z: z}
}

// Project drifts v along its slopes to depth z.
func (v TransportVector) Project(z0, z Real) TransportVector {
	out := v
	dz := z - z0
	out[0] += v[1] * dz
	out[2] += v[3] * dz
	return out
}
