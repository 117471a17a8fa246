// SPDX-License-Identifier: MIT
package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsgam/density"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// simulate draws one response per entry of mu.
//
// Under SimulateMatchFamily:
//   - Lognormal:  exp(N(mu, σ))
//   - Gamma:      Gamma(shape 1/σ², mean exp(mu))
//   - SkewNormal: mu + σ·Z, Z ~ SN(ω)
//
// Under SimulateGammaLegacy every family draws Gamma(shape 1/σ², scale mu·σ²);
// entries with mu·σ² <= 0 have no gamma distribution and are reported as NaN.
func simulate(f Family, policy SimulationPolicy, mu []float64, t Transformed, src rand.Source) ([]float64, error) {
	out := make([]float64, len(mu))
	s2 := t.Sigma * t.Sigma

	var i int
	if policy == SimulateGammaLegacy {
		var scale float64
		for i = range mu {
			scale = mu[i] * s2
			if !(scale > 0) {
				out[i] = math.NaN()
				continue
			}
			out[i] = distuv.Gamma{Alpha: 1 / s2, Beta: 1 / scale, Src: src}.Rand()
		}

		return out, nil
	}

	switch f {
	case Lognormal:
		norm := distuv.Normal{Sigma: t.Sigma, Src: src}
		for i = range mu {
			norm.Mu = mu[i]
			out[i] = math.Exp(norm.Rand())
		}
	case Gamma:
		var g distuv.Gamma
		for i = range mu {
			g = density.GammaMean(mu[i], t.Sigma)
			g.Src = src
			out[i] = g.Rand()
		}
	case SkewNormal:
		z := skewNormalSampler(t.Omega, src)
		for i = range mu {
			out[i] = mu[i] + t.Sigma*z()
		}
	default:
		return nil, fmt.Errorf("simulate: %v: %w", f, ErrUnknownFamily)
	}

	return out, nil
}

// skewNormalSampler returns a generator of standard skew-normal variates with
// shape alpha, using the sign-flip representation: with δ = α/√(1+α²) and
// independent U0, V ~ N(0,1), U1 = δ·U0 + √(1-δ²)·V is SN(α) when U0 >= 0 and
// -U1 otherwise.
func skewNormalSampler(alpha float64, src rand.Source) func() float64 {
	delta := alpha / math.Sqrt(1+alpha*alpha)
	rest := math.Sqrt(1 - delta*delta)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	return func() float64 {
		u0 := unit.Rand()
		u1 := delta*u0 + rest*unit.Rand()
		if u0 >= 0 {
			return u1
		}

		return -u1
	}
}
