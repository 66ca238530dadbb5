package g2p

import (
	"math"
)

// Material is a homogeneous absorber. Density is in g/cm^3, the radiation
// length X0 in g/cm^2 and path lengths in cm. Energies are in GeV at the API
// and MeV inside.
type Material struct {
	Name    string
	Z       Real
	A       Real
	Mass    Real
	Density Real
	X0      Real
	Rand    RandomSource

	reg    *MaterialRegistry
	isInit bool
}

// NewMaterial builds a material and adds it to reg (which may be nil).
// A nil rnd falls back to NewRand(DefaultSeed).
func NewMaterial(reg *MaterialRegistry, name string, z, a, x0, density Real, rnd RandomSource) *Material {
	if rnd == nil {
		rnd = NewRand(DefaultSeed)
	}
	m := &Material{
		Name:    name,
		Z:       z,
		A:       a,
		Density: density,
		X0:      x0,
		Rand:    rnd,
		reg:     reg,
	}
	if reg != nil {
		reg.Add(m)
	}
	DebugLog("Created material %s: Z=%g A=%g X0=%g density=%g", name, z, a, x0, density)
	return m
}

// Close removes the material from its registry.
func (m *Material) Close() {
	if m.reg != nil {
		m.reg.Remove(m)
		m.reg = nil
	}
}

// WithRand returns an unregistered copy drawing from r; used to give every
// worker its own random stream.
func (m *Material) WithRand(r RandomSource) *Material {
	c := *m
	c.reg = nil
	c.Rand = r
	return &c
}

// EnergyLoss samples the energy lost by an electron of energy E (GeV) over
// l cm: ionization plus bremsstrahlung, kept inside [0, E - m_e].
func (m *Material) EnergyLoss(E, l Real) Real {
	if !isFinite(E) || !isFinite(l) {
		return 0
	}
	eMeV := E * GeVToMeV
	loss := m.ionization(eMeV, l) + m.bremsstrahlung(eMeV, l)
	return clamp(loss, 0, math.Max(eMeV-ElectronMass, 0)) / GeVToMeV
}

// MultiScattering samples the plane scattering angle (rad) with the Highland
// width. Electrons only.
func (m *Material) MultiScattering(E, l Real) Real {
	if !isFinite(E) || !isFinite(l) || m.X0 <= 0 || l <= 0 || m.Density <= 0 {
		return 0
	}
	eMeV := E * GeVToMeV
	if eMeV <= ElectronMass {
		return 0
	}
	t := l * m.Density / m.X0
	bcp := (eMeV*eMeV - ElectronMass*ElectronMass) / eMeV
	theta0 := HighlandScale / bcp * math.Sqrt(t) * (1 + HighlandLog*math.Log(t))
	if theta0 < 0 {
		DebugLogOnce("material %s: Highland width negative at t=%.3g X0, using its magnitude", m.Name, t)
	}
	return m.Rand.Gaus(0, math.Abs(theta0))
}

// ionization follows the PDG most probable energy loss, E in MeV.
func (m *Material) ionization(E, l Real) Real {
	if m.Z == 0 || m.A == 0 || m.Density <= 0 || l <= 0 || E <= ElectronMass {
		return 0
	}
	thickness := l * m.Density // g/cm^2
	betasq := 1 - ElectronMass*ElectronMass/(E*E)
	xi := IonizationK / 2 * m.Z / m.A * thickness / betasq
	hbarwsq := PlasmaEnergy * PlasmaEnergy * m.Density * m.Z / m.A * 1e-12 // MeV^2
	deltaP := xi * (math.Log(2*ElectronMass*xi/hbarwsq) + LandauJ)
	loss := m.Rand.Landau(deltaP, 4*xi)
	return clamp(loss, 0, E-ElectronMass)
}

// bremsstrahlung samples the external radiative loss with the
// equivalent-radiator spectrum, E in MeV.
func (m *Material) bremsstrahlung(E, l Real) Real {
	if m.X0 <= 0 || l <= 0 || m.Density <= 0 || E <= ElectronMass {
		return 0
	}
	bt := l * m.Density / m.X0 * m.radiationCorrection()
	if bt <= 0 {
		return 0
	}
	loss := E * math.Pow(m.Rand.Uniform()*BremsSafety, 1/bt)
	return clamp(loss, 0, E-ElectronMass)
}

// radiationCorrection is b(Z) from Tsai, Rev. Mod. Phys. 46 (1974) 815.
func (m *Material) radiationCorrection() Real {
	z := m.Z
	if z == 0 {
		return 0
	}
	var lrad, lradp Real
	switch {
	case z <= 2:
		lrad = (4.79-5.31)*(z-1) + 5.31
		lradp = (5.621-6.144)*(z-1) + 6.144
	case z <= 3:
		lrad = (4.74-4.79)*(z-2) + 4.79
		lradp = (5.805-5.621)*(z-2) + 5.621
	case z <= 4:
		lrad = (4.71-4.74)*(z-3) + 4.74
		lradp = (5.924-5.805)*(z-3) + 5.805
	default:
		lrad = math.Log(184.15 * math.Pow(z, -1.0/3.0))
		lradp = math.Log(1194.0 * math.Pow(z, -2.0/3.0))
	}
	return 4.0 / 3.0 * (1.0 + 1.0/9.0*(z+1)/(lrad*z+lradp))
}

// ConfFields lists the externally configurable fields.
func (m *Material) ConfFields() []FieldDef {
	return []FieldDef{
		{Key: "z", Label: "Z", Kind: KindInt, Ptr: &m.Z},
		{Key: "a", Label: "A", Kind: KindInt, Ptr: &m.A},
		{Key: "mass", Label: "Mass", Kind: KindDouble, Ptr: &m.Mass},
		{Key: "density", Label: "Density", Kind: KindDouble, Ptr: &m.Density},
		{Key: "radlen", Label: "Radiation Length", Kind: KindDouble, Ptr: &m.X0},
	}
}

func (m *Material) ConfPrefix() string { return "material." + m.Name }

// Configure loads or stores the material fields under "material.<name>".
// The first successful read or two-way call marks the material initialized;
// later ones are no-ops.
func (m *Material) Configure(st *ConfStore, mode ConfMode) error {
	reading := mode == ConfRead || mode == ConfTwoWay
	if reading && m.isInit {
		return nil
	}
	if err := ConfigureFromList(st, m.ConfPrefix(), m.ConfFields(), mode); err != nil {
		return err
	}
	if reading {
		m.isInit = true
	}
	return nil
}

func (m *Material) IsInit() bool { return m.isInit }

// Materials of the g2p beam line and target region.
var DefaultMaterials = []MaterialCfg{
	{Name: "kapton", Z: 5, A: 10, X0: 40.56, Density: 1.42},
	{Name: "aluminum", Z: 13, A: 27, X0: 24.01, Density: 2.699},
	{Name: "helium", Z: 2, A: 4, X0: 94.32, Density: 1.664e-4},
	{Name: "air", Z: 7, A: 14, X0: 36.66, Density: 1.205e-3},
	{Name: "ammonia", Z: 10, A: 17, X0: 40.87, Density: 0.817},
}
