// Package density provides the closed-form log-densities used by the
// tpsgam likelihood and prior terms.
//
// The density package provides:
//
//   - NormalLog, LognormalLog and NormalLogSum for location/scale families.
//   - GammaMeanLog, a gamma log-density parametrized by a log-mean and a
//     coefficient-of-variation style scale (shape 1/σ², mean exp(mu)).
//   - SkewNormalLog, the standardized skew-normal log-density with a tail-safe
//     log Φ.
//   - CauchyLog and InvGaussLog, closed forms depending only on log/log1p.
//
// All functions are pure and total: invalid arguments (non-positive x for a
// positive family, zero scale) yield -Inf or NaN instead of an error, so that
// non-finite values propagate to the caller's objective unchanged.
package density
