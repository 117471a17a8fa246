// SPDX-License-Identifier: MIT

// Package model - random sources for the simulation branch.
//
// The deterministic evaluation path never touches a random source. Callers
// that opt into simulation inject a rand.Source; these helpers build
// reproducible ones.
//
// Concurrency:
//   - A rand.Source is NOT goroutine-safe. Derive one stream per goroutine
//     with DeriveSource instead of sharing.
package model

import "golang.org/x/exp/rand"

// defaultSeed replaces seed == 0 so that the zero value stays reproducible.
const defaultSeed uint64 = 1

// NewSource returns a deterministic source. seed == 0 ⇒ defaultSeed.
//
// Complexity: O(1).
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(seed)
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer so that neighbouring streams are decorrelated.
func deriveSeed(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// DeriveSource creates an independent stream from parent and a stream id.
// parent == nil uses defaultSeed; otherwise one Uint64 is consumed from
// parent, so repeated derivations with the same id still differ.
//
// Complexity: O(1).
func DeriveSource(parent rand.Source, stream uint64) rand.Source {
	p := defaultSeed
	if parent != nil {
		p = parent.Uint64()
	}

	return NewSource(deriveSeed(p, stream))
}
