// SPDX-License-Identifier: MIT

// Package density - log-density kernels.
//
// Normal and gamma densities delegate to gonum's distuv so that the same
// parametrization is shared with the simulation draws in package model.
// Skew-normal, Cauchy and inverse-Gaussian are closed forms.
//
// Complexity quicksheet:
//   - every scalar kernel: O(1); NormalLogSum: O(n).
package density

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	ln2      = math.Ln2
	lnPi     = 1.1447298858494002 // log(π)
	ln2Pi    = 1.8378770664093453 // log(2π)
	invSqrt2 = 1 / math.Sqrt2

	// tailCut is the standardized point below which log Φ switches from erfc
	// to the asymptotic Mills-ratio series (erfc underflows near -38).
	tailCut = -20.0
)

// NormalLog returns log N(x | mu, sigma).
func NormalLog(x, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.LogProb(x)
}

// NormalLogSum returns Σ log N(xs[i] | mu, sigma).
// Complexity: O(len(xs)).
func NormalLogSum(xs []float64, mu, sigma float64) float64 {
	var (
		d   = distuv.Normal{Mu: mu, Sigma: sigma}
		acc float64
		x   float64
	)
	for _, x = range xs {
		acc += d.LogProb(x)
	}

	return acc
}

// LognormalLog returns the log-density of x when log(x) ~ N(meanlog, sdlog):
// NormalLog(log x) - log x.
func LognormalLog(x, meanlog, sdlog float64) float64 {
	lx := math.Log(x)

	return NormalLog(lx, meanlog, sdlog) - lx
}

// GammaMeanLog returns the gamma log-density with shape 1/sigma² and scale
// exp(mu)·sigma², so that E[x] = exp(mu) and CV = sigma.
func GammaMeanLog(x, mu, sigma float64) float64 {
	return GammaMean(mu, sigma).LogProb(x)
}

// GammaMean builds the mean-parametrized gamma distribution used by
// GammaMeanLog. Beta is the rate, 1/scale.
func GammaMean(mu, sigma float64) distuv.Gamma {
	s2 := sigma * sigma

	return distuv.Gamma{Alpha: 1 / s2, Beta: 1 / (math.Exp(mu) * s2)}
}

// SkewNormalLog returns log(2·φ(z)·Φ(alpha·z)), the standardized skew-normal
// log-density. alpha == 0 reduces to the standard normal.
func SkewNormalLog(z, alpha float64) float64 {
	return ln2 + NormalLog(z, 0, 1) + LogNormCDF(alpha*z)
}

// LogNormCDF returns log Φ(x) without underflow in either tail.
func LogNormCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		// Φ(x) = 1 - ½erfc(x/√2); log1p keeps precision as Φ → 1.
		return math.Log1p(-0.5 * math.Erfc(x*invSqrt2))
	case x > tailCut:
		return math.Log(0.5 * math.Erfc(-x*invSqrt2))
	case math.IsInf(x, -1):
		return x
	}
	// Φ(x) ≈ φ(x)/(-x) · (1 - 1/x² + 3/x⁴ - 15/x⁶) for x → -∞.
	r := 1 / (x * x)
	series := 1 - r + 3*r*r - 15*r*r*r

	return -0.5*x*x - 0.5*ln2Pi - math.Log(-x) + math.Log(series)
}

// CauchyLog returns log C(x | loc, scale) = -log π - log s - log1p(((x-loc)/s)²).
func CauchyLog(x, loc, scale float64) float64 {
	z := (x - loc) / scale

	return -lnPi - math.Log(scale) - math.Log1p(z*z)
}

// InvGaussLog returns the inverse-Gaussian log-density with the given mean
// and shape:
//
//	½log(shape) - ½log(2π x³) - shape·(x-mean)² / (2·mean²·x).
//
// x <= 0 yields -Inf.
func InvGaussLog(x, mean, shape float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	d := x - mean

	return 0.5*math.Log(shape) - 0.5*(ln2Pi+3*math.Log(x)) - shape*d*d/(2*mean*mean*x)
}
