package g2p

import "math"

// atomic masses (g/mol) of the elements the experiment uses
var atomicMass = map[int]Real{
	1:  1.00794,
	2:  4.002602,
	6:  12.0107,
	7:  14.0067,
	8:  15.9994,
	26: 55.845,
	29: 63.546,
	74: 183.84,
}

// Target holds the target nucleus and free parameters used by physics
// models downstream.
type Target struct {
	Z, A       int
	TargetMass Real // MeV
	PID        int
	Pars       []Real
}

func NewTarget() *Target {
	return &Target{Z: 1, A: 1, PID: DefaultPID}
}

// SetTarget sets the nucleus. The mass is derived only when not set yet.
func (t *Target) SetTarget(z, a int) {
	t.Z = z
	t.A = a
	if math.Abs(t.TargetMass) < TargetMassEps {
		t.TargetMass = TargetMassOf(z, a)
	}
}

// SetParameters replaces the parameter vector with a copy of values.
func (t *Target) SetParameters(values []Real) {
	t.Pars = append([]Real(nil), values...)
}

func (t *Target) SetPID(pid int) { t.PID = pid }

// TargetMassOf returns the atomic mass of element z in MeV. Elements missing
// from the table use the mass number a as an estimate.
func TargetMassOf(z, a int) Real {
	m, ok := atomicMass[z]
	if !ok {
		m = Real(a)
	}
	return m * AtomicMassUnit
}
