package cg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rotsym/cg"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestClebschGordan_KnownValues checks the exact evaluator against
// hand-verified textbook coefficients.
func TestClebschGordan_KnownValues(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	cases := []struct {
		name                 string
		j1, m1, j2, m2, j, m int
		want                 float64
	}{
		{"stretched_1+1", 1, 1, 1, 1, 2, 2, 1},
		{"stretched_3+2", 3, 3, 2, 2, 5, 5, 1},
		{"singlet_j1_m0", 1, 0, 1, 0, 0, 0, -1 / sqrt3},
		{"singlet_j1_m1", 1, 1, 1, -1, 0, 0, 1 / sqrt3},
		{"singlet_j2_m0", 2, 0, 2, 0, 0, 0, 1 / math.Sqrt(5)},
		{"quintet_m1", 1, 1, 1, 0, 2, 1, 1 / math.Sqrt2},
		{"quintet_m0", 1, 0, 1, 0, 2, 0, math.Sqrt(2.0 / 3.0)},
		{"triplet_vanishes", 1, 0, 1, 0, 1, 0, 0},
		{"triplet_m0", 1, 1, 1, -1, 1, 0, 1 / math.Sqrt2},
		{"triplet_m0_swapped", 1, -1, 1, 1, 1, 0, -1 / math.Sqrt2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cg.ClebschGordan(tc.j1, tc.m1, tc.j2, tc.m2, tc.j, tc.m)
			require.InDelta(t, tc.want, got, eps)
		})
	}
}

// TestClebschGordan_ZeroConditions samples tuples violating each of the
// triangle, magnetic-sum and bound conditions independently; all must
// yield exactly 0, with no tolerance.
func TestClebschGordan_ZeroConditions(t *testing.T) {
	cases := []struct {
		name                 string
		j1, m1, j2, m2, j, m int
	}{
		{"triangle_above", 1, 0, 1, 0, 3, 0},
		{"triangle_below", 3, 0, 1, 0, 1, 0},
		{"magnetic_sum", 1, 1, 1, 1, 2, 1},
		{"bound_m1", 1, 2, 1, 0, 2, 2},
		{"bound_m2", 2, 0, 1, -2, 2, -2},
		{"bound_M", 1, 1, 1, 1, 1, 2},
		{"negative_j1", -1, 0, 1, 0, 1, 0},
		{"negative_J", 1, 0, 1, 0, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cg.ClebschGordan(tc.j1, tc.m1, tc.j2, tc.m2, tc.j, tc.m)
			require.Zero(t, got)
		})
	}
}

// TestClebschGordan_Orthogonality verifies the column orthogonality
// relation Σ_{m1,m2} C^{JM}·C^{J'M'} = δ_{JJ'}δ_{MM'} for j1 = j2 = 1.
func TestClebschGordan_Orthogonality(t *testing.T) {
	const j1, j2 = 1, 1
	for J := 0; J <= j1+j2; J++ {
		for Jp := 0; Jp <= j1+j2; Jp++ {
			for M := -J; M <= J; M++ {
				for Mp := -Jp; Mp <= Jp; Mp++ {
					var dot float64
					for m1 := -j1; m1 <= j1; m1++ {
						for m2 := -j2; m2 <= j2; m2++ {
							dot += cg.ClebschGordan(j1, m1, j2, m2, J, M) *
								cg.ClebschGordan(j1, m1, j2, m2, Jp, Mp)
						}
					}
					want := 0.0
					if J == Jp && M == Mp {
						want = 1.0
					}
					require.InDelta(t, want, dot, eps,
						"J=%d M=%d J'=%d M'=%d", J, M, Jp, Mp)
				}
			}
		}
	}
}

// TestClebschGordan_SymmetryPhase checks the exchange symmetry
// C^{JM}_{j1 m1 j2 m2} = (-1)^{j1+j2-J} C^{JM}_{j2 m2 j1 m1}.
func TestClebschGordan_SymmetryPhase(t *testing.T) {
	for j1 := 0; j1 <= 2; j1++ {
		for j2 := 0; j2 <= 2; j2++ {
			for J := absInt(j1 - j2); J <= j1+j2; J++ {
				phase := 1.0
				if (j1+j2-J)&1 == 1 {
					phase = -1.0
				}
				for m1 := -j1; m1 <= j1; m1++ {
					for m2 := -j2; m2 <= j2; m2++ {
						a := cg.ClebschGordan(j1, m1, j2, m2, J, m1+m2)
						b := cg.ClebschGordan(j2, m2, j1, m1, J, m1+m2)
						require.InDelta(t, phase*b, a, eps)
					}
				}
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
