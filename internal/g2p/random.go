package g2p

import (
	"math"
	"math/rand"
)

// RandomSource supplies the samples the material model consumes.
// Implementations are stateful and not safe for concurrent use.
type RandomSource interface {
	Uniform() Real
	Gaus(mean, sigma Real) Real
	Landau(mpv, sigma Real) Real
}

// Rand is the default RandomSource on top of math/rand.
type Rand struct {
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a sample in the open interval (0,1).
func (r *Rand) Uniform() Real {
	for {
		if u := r.rng.Float64(); u > 0 {
			return u
		}
	}
}

func (r *Rand) Gaus(mean, sigma Real) Real {
	return mean + sigma*randNormal(r.rng)
}

// Landau returns mpv + sigma*x where x follows the standard Landau density
// (the ROOT TRandom::Landau contract). sigma <= 0 gives 0.
func (r *Rand) Landau(mpv, sigma Real) Real {
	if sigma <= 0 {
		return 0
	}
	return mpv + sigma*standardLandau(r.rng)
}

func randNormal(rng *rand.Rand) Real {
	// Box–Muller
	u1 := rng.Float64()
	u2 := rng.Float64()
	r := math.Sqrt(-2 * math.Log(math.Max(u1, 1e-12)))
	return r * math.Cos(2*math.Pi*u2)
}

// standardLandau draws from the stable law alpha=1, beta=1 with scale pi/2
// (Chambers-Mallows-Stuck), which is the standard Landau distribution.
func standardLandau(rng *rand.Rand) Real {
	const halfPi = math.Pi / 2
	var v, w Real
	for {
		v = math.Pi * (rng.Float64() - 0.5)
		w = -math.Log(math.Max(rng.Float64(), 1e-300))
		// v = -pi/2 makes the log argument vanish
		if halfPi+v > 1e-12 && w > 0 {
			break
		}
	}
	return (halfPi+v)*math.Tan(v) - math.Log(w*math.Cos(v)/(halfPi+v))
}
