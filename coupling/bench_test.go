package coupling_test

import (
	"testing"

	"github.com/katalvlaran/rotsym/coupling"
)

// benchmarkCoupling runs one coupling evaluation per iteration with a
// fresh Calculator (cold caches) or a shared one (warm caches).
func benchmarkCoupling(b *testing.B, warm bool) {
	ll := coupling.AngularTuple{2, 2, 2, 2}
	mm := coupling.MagneticTuple{2, -1, -2, 1}
	kk := coupling.MagneticTuple{1, 1, -1, -1}

	c := coupling.New()
	if warm {
		c.Coupling(ll, mm, kk)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !warm {
			c = coupling.New()
		}
		_ = c.Coupling(ll, mm, kk)
	}
}

func BenchmarkCoupling_FourBodyCold(b *testing.B) { benchmarkCoupling(b, false) }

func BenchmarkCoupling_FourBodyWarm(b *testing.B) { benchmarkCoupling(b, true) }
