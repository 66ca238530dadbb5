package g2p

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type Vec3Cfg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Euler angles in degrees for JSON (friendlier than radians).
type EulerDeg struct {
	Alpha Real `json:"alpha"`
	Beta  Real `json:"beta"`
	Gamma Real `json:"gamma"`
}

func (e EulerDeg) Radians() Euler {
	const k = math.Pi / 180
	return Euler{Alpha: e.Alpha * k, Beta: e.Beta * k, Gamma: e.Gamma * k}
}

type FrameCfg struct {
	Origin    Vec3Cfg  `json:"origin"`
	EulerDeg  EulerDeg `json:"eulerDeg"`
	Transport bool     `json:"transport,omitempty"`
}

type SieveCfg struct {
	Rows       int       `json:"rows,omitempty"`
	Cols       int       `json:"cols,omitempty"`
	RowPitch   Real      `json:"rowPitch,omitempty"`
	ColPitch   Real      `json:"colPitch,omitempty"`
	Centers    [][2]Real `json:"centers,omitempty"` // explicit layout, overrides the pitches
	HoleD      Real      `json:"holeD,omitempty"`
	LargeHoleD Real      `json:"largeHoleD,omitempty"`
	LargeHoles []int     `json:"largeHoles,omitempty"`
	Z          *Real     `json:"z,omitempty"`          // nil means SieveZ; 0 is a valid plane
	ZTolerance *Real     `json:"zTolerance,omitempty"` // nil means SieveZTolerance
	Frame      FrameCfg  `json:"frame"`
}

type MaterialCfg struct {
	Name    string `json:"name"`
	Z       Real   `json:"z"`
	A       Real   `json:"a"`
	X0      Real   `json:"radlen"`
	Density Real   `json:"density"`
	Mass    Real   `json:"mass,omitempty"`
}

type TargetCfg struct {
	Z    int    `json:"z,omitempty"`
	A    int    `json:"a,omitempty"`
	Mass Real   `json:"mass,omitempty"` // MeV, 0 means derive from Z/A
	PID  int    `json:"pid,omitempty"`
	Pars []Real `json:"pars,omitempty"`
}

type RenderCfg struct {
	Out         string `json:"out,omitempty"`
	Res         int    `json:"res,omitempty"`
	Supersample int    `json:"supersample,omitempty"`
}

type Config struct {
	Seed         int64         `json:"seed,omitempty"`
	HRSAngleDeg  Real          `json:"hrsAngleDeg,omitempty"`
	Sieve        SieveCfg      `json:"sieve"`
	Materials    []MaterialCfg `json:"materials,omitempty"`
	MaterialConf string        `json:"materialConf,omitempty"` // field-list store for material overrides
	Target       TargetCfg     `json:"target"`
	Render       RenderCfg     `json:"render"`
}

// Build validates and constructs the sieve; zero fields take the g2p defaults.
func (c SieveCfg) Build() (*Sieve, error) {
	if c.Rows <= 0 {
		c.Rows = SieveRows
	}
	if c.Cols <= 0 {
		c.Cols = SieveCols
	}
	if c.RowPitch == 0 {
		c.RowPitch = SieveRowPitch
	}
	if c.ColPitch == 0 {
		c.ColPitch = SieveColPitch
	}
	if c.HoleD == 0 {
		c.HoleD = SieveHoleD
	}
	if c.LargeHoleD == 0 {
		c.LargeHoleD = SieveLargeHoleD
	}
	if c.LargeHoles == nil {
		c.LargeHoles = SieveLargeHoles
	}
	z, tol := Real(SieveZ), Real(SieveZTolerance)
	if c.Z != nil {
		z = *c.Z
	}
	if c.ZTolerance != nil {
		tol = *c.ZTolerance
	}
	centers := c.Centers
	if len(centers) == 0 {
		centers = GridCenters(c.Rows, c.Cols, c.RowPitch, c.ColPitch, 0, 0)
	}
	return NewSieve(c.Rows, c.Cols, centers, c.HoleD, c.LargeHoleD, c.LargeHoles, z, tol)
}

// Build places s in the lab and freezes the frame.
func (c FrameCfg) Build(name string, s Surface, conv CoordConverter) (*Frame, error) {
	f := NewFrame(name, s)
	f.Converter = conv
	f.Transport = c.Transport
	if err := f.SetOrigin(c.Origin.X, c.Origin.Y, c.Origin.Z); err != nil {
		return nil, err
	}
	e := c.EulerDeg.Radians()
	if err := f.SetEulerAngles(e.Alpha, e.Beta, e.Gamma); err != nil {
		return nil, err
	}
	if st := f.Begin(); st != StatusOK {
		return nil, fmt.Errorf("frame %q: begin returned %s", name, st)
	}
	return f, nil
}

func (c MaterialCfg) Build(reg *MaterialRegistry, rnd RandomSource) (*Material, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: material without a name", ErrConfig)
	}
	if c.Z < 0 || c.A < 0 || c.X0 < 0 || c.Density < 0 {
		return nil, fmt.Errorf("%w: material %s: Z, A, radlen and density must be >= 0, got %+v", ErrConfig, c.Name, c)
	}
	m := NewMaterial(reg, c.Name, c.Z, c.A, c.X0, c.Density, rnd)
	m.Mass = c.Mass
	return m, nil
}

func (c TargetCfg) Build() *Target {
	t := NewTarget()
	if c.PID != 0 {
		t.SetPID(c.PID)
	}
	t.TargetMass = c.Mass
	if c.Z > 0 {
		a := c.A
		if a <= 0 {
			a = c.Z
		}
		t.SetTarget(c.Z, a)
	}
	if len(c.Pars) > 0 {
		t.SetParameters(c.Pars)
	}
	return t
}

// DefaultConfig is used when no configuration file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.HRSAngleDeg == 0 {
		cfg.HRSAngleDeg = HRSAngleDeg
	}
	if len(cfg.Materials) == 0 {
		cfg.Materials = append([]MaterialCfg(nil), DefaultMaterials...)
	}
	if cfg.Target.Z == 0 {
		cfg.Target.Z, cfg.Target.A = 7, 14
	}
	if cfg.Render.Out == "" {
		cfg.Render.Out = MapOut
	}
	if cfg.Render.Res <= 0 {
		cfg.Render.Res = MapRes
	}
	if cfg.Render.Supersample <= 0 {
		cfg.Render.Supersample = MapSupersample
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	DebugLog("Loaded config from %s: seed=%d, hrs=%.3f deg, materials=%d, target Z=%d A=%d", path, cfg.Seed, cfg.HRSAngleDeg, len(cfg.Materials), cfg.Target.Z, cfg.Target.A)
	return &cfg, nil
}
