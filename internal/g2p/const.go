package g2p

const (
	ElectronMass   = 0.510998918  // MeV
	AtomicMassUnit = 931.49406121 // MeV
	IonizationK    = 0.307075     // MeV cm^2/g for A=1 g/mol
	PlasmaEnergy   = 28.816       // eV, multiplied by sqrt(rho*Z/A)
	LandauJ        = 0.200        // Landau-Vavilov j term
	HighlandScale  = 13.6         // MeV
	HighlandLog    = 0.038
	BremsSafety    = 0.999 // keeps u^(1/bt) away from total loss
	GeVToMeV       = 1000.0
	ActiveEps      = 1e-5 // |component| below this is treated as zero
	TargetMassEps  = 1e-8 // target mass below this is "unset"
	DefaultPID     = 11   // electron
	MapSupersample = 4    // aperture map supersampling factor
	MapRes         = 512  // aperture map output resolution
	SummaryDraws   = 10_000
	DefaultSeed    = 1
	HRSAngleDeg    = 5.767 // g2p septum-bent spectrometer angle
	MapOut         = "sieve.png"
)
