package g2p

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes n draws of energy loss (GeV) and scattering angle (rad).
type Summary struct {
	N                   int
	LossMean, LossStd   Real
	LossMin, LossMax    Real
	AngleMean, AngleStd Real
	AngleMin, AngleMax  Real
	ZeroLoss            int // draws with exactly no loss
	Energy, PathLength  Real
	Workers             int
}

// Summarize samples m n times at energy E (GeV) and path l (cm). Every worker
// draws from its own Rand seeded from seed, so results only depend on seed,
// n and workers.
func Summarize(m *Material, E, l Real, n, workers int, seed int64) Summary {
	if n <= 0 {
		return Summary{Energy: E, PathLength: l}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	loss := make([]Real, n)
	angle := make([]Real, n)
	per, rem := n/workers, n%workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		cnt := per
		if w < rem {
			cnt++
		}
		wg.Add(1)
		go func(wid, lo, hi int) {
			defer wg.Done()
			// independent RNG per worker
			mw := m.WithRand(NewRand(seed ^ int64(uint64(wid+1)*0x9e3779b97f4a7c15)))
			for i := lo; i < hi; i++ {
				loss[i] = mw.EnergyLoss(E, l)
				angle[i] = mw.MultiScattering(E, l)
			}
		}(w, start, start+cnt)
		start += cnt
	}
	wg.Wait()

	s := Summary{N: n, Energy: E, PathLength: l, Workers: workers}
	s.LossMean, s.LossStd = stat.MeanStdDev(loss, nil)
	s.AngleMean, s.AngleStd = stat.MeanStdDev(angle, nil)
	s.LossMin, s.LossMax = floats.Min(loss), floats.Max(loss)
	s.AngleMin, s.AngleMax = floats.Min(angle), floats.Max(angle)
	for _, v := range loss {
		if v == 0 {
			s.ZeroLoss++
		}
	}
	DebugLog("Summary %s: E=%g l=%g n=%d loss=%.4g±%.4g angle=%.4g±%.4g", m.Name, E, l, n, s.LossMean, s.LossStd, s.AngleMean, s.AngleStd)
	return s
}
