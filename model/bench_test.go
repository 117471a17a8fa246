// SPDX-License-Identifier: MIT
package model_test

import (
	"testing"

	"github.com/katalvlaran/tpsgam/model"
)

// BenchmarkEvaluate measures one deterministic evaluation per family.
func BenchmarkEvaluate(b *testing.B) {
	for _, f := range []model.Family{model.Lognormal, model.Gamma, model.SkewNormal} {
		m := mustModel(b, richData(b, f))
		p := richParams()
		b.Run(f.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.Evaluate(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkObjective measures the flat-vector path used by optimizers.
func BenchmarkObjective(b *testing.B) {
	m := mustModel(b, richData(b, model.Lognormal))
	x, err := m.Layout().Flatten(richParams())
	if err != nil {
		b.Fatal(err)
	}
	f := m.Objective()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f(x)
	}
}
