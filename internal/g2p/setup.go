package g2p

import (
	"fmt"
	"math"
)

// Setup is everything a transport loop needs, built once from a Config before
// any sampling starts.
type Setup struct {
	Config    *Config
	Rand      *Rand
	Registry  *MaterialRegistry
	Materials []*Material
	Sieve     *Sieve
	Frame     *Frame
	Target    *Target
	Converter HallConverter
}

// Load reads the JSON configuration at cfgPath and builds the setup.
func Load(cfgPath string) (*Setup, error) {
	cfg, err := ReadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return NewSetup(cfg)
}

// ReadConfig loads cfgPath; an empty path gives DefaultConfig.
func ReadConfig(cfgPath string) (*Config, error) {
	if cfgPath == "" {
		return DefaultConfig(), nil
	}
	return loadConfig(cfgPath)
}

func NewSetup(cfg *Config) (*Setup, error) {
	cfg.applyDefaults()
	s := &Setup{
		Config:    cfg,
		Rand:      NewRand(cfg.Seed),
		Registry:  NewMaterialRegistry(),
		Converter: HallConverter{Angle: cfg.HRSAngleDeg * math.Pi / 180},
	}

	for _, mc := range cfg.Materials {
		m, err := mc.Build(s.Registry, s.Rand)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Materials = append(s.Materials, m)
	}
	if cfg.MaterialConf != "" {
		st, err := LoadConfStore(cfg.MaterialConf)
		if err != nil {
			s.Close()
			return nil, err
		}
		for _, m := range s.Materials {
			if err := m.Configure(st, ConfRead); err != nil {
				s.Close()
				return nil, fmt.Errorf("material %s: %w", m.Name, err)
			}
		}
	}

	sv, err := cfg.Sieve.Build()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Sieve = sv
	s.Frame, err = cfg.Sieve.Frame.Build(sieveDefaultName, sv, s.Converter)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Target = cfg.Target.Build()
	DebugLog("Setup ready: %d materials, sieve %dx%d, frame mode %s, target mass %.6g MeV",
		len(s.Materials), sv.Rows(), sv.Cols(), s.Frame.Mode(), s.Target.TargetMass)
	return s, nil
}

// Material returns the registered material called name.
func (s *Setup) Material(name string) (*Material, error) {
	if m := s.Registry.Lookup(name); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: unknown material %q", ErrConfig, name)
}

// Close deregisters all materials.
func (s *Setup) Close() {
	for _, m := range s.Materials {
		m.Close()
	}
	s.Materials = nil
}
