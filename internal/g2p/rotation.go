package g2p

import "math"

// Euler angles in radians, Z-X′-Z″ convention.
type Euler struct {
	Alpha, Beta, Gamma Real
}

// eulerMatrices returns the lab->geo matrix and its inverse (geo->lab).
// The inverse is the closed form of Rz(alpha)·Rx(beta)·Rz(gamma), i.e. the
// matrix that turns the geometry to its direction; fwd is its transpose.
func eulerMatrices(e Euler) (fwd, inv Mat3) {
	s1, c1 := math.Sincos(e.Alpha)
	s2, c2 := math.Sincos(e.Beta)
	s3, c3 := math.Sincos(e.Gamma)

	inv.M = [3][3]Real{
		{c1*c3 - c2*s1*s3, -c1*s3 - c2*c3*s1, s1 * s2},
		{c3*s1 + c1*c2*s3, c1*c2*c3 - s1*s3, -c1 * s2},
		{s2 * s3, c3 * s2, c2},
	}
	return inv.Transpose(), inv
}
