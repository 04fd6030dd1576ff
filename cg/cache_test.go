package cg_test

import (
	"testing"

	"github.com/katalvlaran/rotsym/cg"
	"github.com/stretchr/testify/require"
)

// TestCache_MatchesPureFunction compares the memoized path against the
// pure function over a dense argument grid.
func TestCache_MatchesPureFunction(t *testing.T) {
	c := cg.New()
	for j1 := 0; j1 <= 3; j1++ {
		for j2 := 0; j2 <= 3; j2++ {
			for J := 0; J <= j1+j2; J++ {
				for m1 := -j1; m1 <= j1; m1++ {
					for m2 := -j2; m2 <= j2; m2++ {
						want := cg.ClebschGordan(j1, m1, j2, m2, J, m1+m2)
						got := c.ClebschGordan(j1, m1, j2, m2, J, m1+m2)
						require.Equal(t, want, got)
					}
				}
			}
		}
	}
}

// TestCache_Idempotent verifies that repeated calls are bit-identical and
// that a hit does not grow the cache.
func TestCache_Idempotent(t *testing.T) {
	c := cg.New()
	first := c.ClebschGordan(2, 1, 2, -1, 2, 0)
	size := c.Len()
	second := c.ClebschGordan(2, 1, 2, -1, 2, 0)
	require.Equal(t, first, second)
	require.Equal(t, size, c.Len())
}

// TestCache_InvalidKeysNotStored verifies that condition failures return 0
// and never populate the map.
func TestCache_InvalidKeysNotStored(t *testing.T) {
	c := cg.New()
	require.Zero(t, c.ClebschGordan(1, 0, 1, 0, 5, 0)) // triangle
	require.Zero(t, c.ClebschGordan(1, 1, 1, 1, 2, 1)) // magnetic sum
	require.Zero(t, c.ClebschGordan(1, 2, 1, 0, 2, 2)) // bound
	require.Zero(t, c.Len())
}
