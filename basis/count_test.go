package basis_test

import (
	"testing"

	"github.com/katalvlaran/rotsym/basis"
	"github.com/katalvlaran/rotsym/coupling"
	"github.com/stretchr/testify/require"
)

// TestCountInvariants_ClosedForms pins the small-body-order formulas.
func TestCountInvariants_ClosedForms(t *testing.T) {
	cases := []struct {
		name string
		ll   coupling.AngularTuple
		want int
	}{
		{"empty", coupling.AngularTuple{}, 0},
		{"one_trivial", coupling.AngularTuple{0}, 1},
		{"one_nontrivial", coupling.AngularTuple{3}, 0},
		{"two_equal", coupling.AngularTuple{2, 2}, 1},
		{"two_unequal", coupling.AngularTuple{2, 3}, 0},
		{"three_triangle", coupling.AngularTuple{1, 1, 1}, 1},
		{"three_no_triangle", coupling.AngularTuple{1, 1, 4}, 0},
		{"four_vectors", coupling.AngularTuple{1, 1, 1, 1}, 3},
		{"four_mixed", coupling.AngularTuple{1, 1, 2, 2}, 3},
		{"four_single_path", coupling.AngularTuple{0, 1, 2, 3}, 1},
		{"four_disjoint", coupling.AngularTuple{0, 0, 1, 3}, 0},
		{"five_vectors", coupling.AngularTuple{1, 1, 1, 1, 0}, 3},
		{"five_dead_end", coupling.AngularTuple{2, 0, 0, 0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := basis.CountInvariants(tc.ll)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestCountInvariants_Errors: high body orders refuse to guess, negative
// momenta refuse to proceed.
func TestCountInvariants_Errors(t *testing.T) {
	_, err := basis.CountInvariants(coupling.AngularTuple{1, 1, 1, 1, 1, 1})
	require.ErrorIs(t, err, basis.ErrCountNotImplemented)

	_, err = basis.CountInvariants(coupling.AngularTuple{-2})
	require.ErrorIs(t, err, basis.ErrNegativeMomentum)
}
