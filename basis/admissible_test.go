package basis_test

import (
	"testing"

	"github.com/katalvlaran/rotsym/basis"
	"github.com/katalvlaran/rotsym/coupling"
	"github.com/stretchr/testify/require"
)

// TestAdmissible covers the per-body-order rules, including the
// witness-search orders.
func TestAdmissible(t *testing.T) {
	cases := []struct {
		name string
		ll   coupling.AngularTuple
		want bool
	}{
		{"empty", coupling.AngularTuple{}, false},
		{"one_trivial", coupling.AngularTuple{0}, true},
		{"one_nontrivial", coupling.AngularTuple{1}, false},
		{"two_equal", coupling.AngularTuple{1, 1}, true},
		{"two_unequal", coupling.AngularTuple{1, 2}, false},
		{"three_ok", coupling.AngularTuple{1, 1, 0}, true},
		{"three_parity_odd", coupling.AngularTuple{1, 1, 1}, false},
		{"three_triangle_ok", coupling.AngularTuple{1, 1, 2}, true},
		{"three_triangle_fail", coupling.AngularTuple{1, 1, 4}, false},
		{"four_ok", coupling.AngularTuple{1, 1, 1, 1}, true},
		{"four_ranges_ok", coupling.AngularTuple{0, 1, 2, 3}, true},
		{"four_parity_odd", coupling.AngularTuple{1, 1, 1, 0}, false},
		{"four_ranges_disjoint", coupling.AngularTuple{0, 0, 1, 3}, false},
		{"five_ok", coupling.AngularTuple{1, 1, 1, 1, 0}, true},
		{"five_parity_odd", coupling.AngularTuple{1, 1, 1, 0, 0}, false},
		{"five_no_witness", coupling.AngularTuple{2, 0, 0, 0, 0}, false},
		{"six_ok", coupling.AngularTuple{1, 1, 1, 1, 1, 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := basis.NewBuilder(nil)
			require.Equal(t, tc.want, b.Admissible(tc.ll))
		})
	}
}
