// SPDX-License-Identifier: MIT
package spd_test

import (
	"testing"

	"github.com/katalvlaran/geomkern/rng"
	"github.com/katalvlaran/geomkern/spd"
)

// BenchmarkPowerFunction measures one Cholesky+QR power evaluation on
// SPD(5).
func BenchmarkPowerFunction(b *testing.B) {
	space, err := spd.New(5)
	if err != nil {
		b.Fatal(err)
	}
	st := rng.NewState(1)
	st, pts := space.Random(st, 1)
	_, frames := space.RandomPhases(st, 1)
	lam := []float64{0.1, 0.2, 0.3, 0.4, 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := space.PowerFunction(lam, pts[0], frames[0]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRandomPhases measures Haar frame generation on SPD(5).
func BenchmarkRandomPhases(b *testing.B) {
	space, err := spd.New(5)
	if err != nil {
		b.Fatal(err)
	}
	st := rng.NewState(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, _ = space.RandomPhases(st, 16)
	}
	_ = st
}
