// SPDX-License-Identifier: MIT

package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rotsym/coupling"
)

// Builder constructs symmetry-adapted bases. It owns one coupling
// Calculator (and therefore all coefficient caches) for its lifetime:
// a Builder is a computation session, and discarding it frees every
// memoized value. Not safe for concurrent use.
type Builder struct {
	calc *coupling.Calculator
	opts Options
}

// NewBuilder returns a Builder with fresh caches. A nil opts selects
// DefaultOptions; zero-valued fields inside opts do the same per field.
func NewBuilder(opts *Options) *Builder {
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalize()
	}

	return &Builder{calc: coupling.New(), opts: o}
}

// Calculator exposes the session's coupling calculator, mainly so that
// callers can watch cache growth via CacheStats.
func (b *Builder) Calculator() *coupling.Calculator {
	return b.calc
}

// Basis pairs basis rows with the magnetic tuples indexing its columns.
// The pairing is deliberate API: a row of U is a linear combination of
// the coupling channels named by MList, and the two must travel together.
//
// U is nil when the rank is zero; MList is still populated so callers can
// see which channels were examined.
type Basis struct {
	// U holds one retained basis vector per row; columns follow MList.
	U *mat.Dense

	// MList is the ordered magnetic-tuple index of U's columns.
	MList []coupling.MagneticTuple
}

// Rank reports the number of retained basis vectors.
func (b Basis) Rank() int {
	if b.U == nil {
		return 0
	}
	r, _ := b.U.Dims()

	return r
}
