package cg

import (
	"math"
	"math/big"
)

// ClebschGordan computes the Clebsch-Gordan coefficient
//
//	ClebschGordan(j1, m1, j2, m2, J, M) = C^{J,M}_{j1 m1, j2 m2}
//
// in the standard Condon-Shortley phase convention.
//
// Conditions:
//
//	The coefficient is exactly 0 — returned without any computation —
//	whenever one of the following fails:
//	  • triangle:      |j1-j2| ≤ J ≤ j1+j2
//	  • magnetic sum:  M = m1 + m2
//	  • bounds:        |m1| ≤ j1, |m2| ≤ j2, |M| ≤ J
//	Negative j1, j2 or J also yield 0 (the bound conditions cannot hold).
//
// Algorithm Outline:
//  1. Assemble the squared prefactor N as an exact big.Rat:
//     N = (2J+1) · (j1+j2-J)!(j1-j2+J)!(-j1+j2+J)! / (j1+j2+J+1)!
//     · (J+M)!(J-M)!(j1-m1)!(j1+m1)!(j2-m2)!(j2+m2)!
//  2. Accumulate the alternating sum G = Σ_k (-1)^k / [k!(j1+j2-J-k)!
//     (j1-m1-k)!(j2+m2-k)!(J-j2+m1+k)!(J-j1-m2+k)!] over the k for which
//     every factorial argument is non-negative, again as an exact big.Rat.
//  3. Convert once: result = sign(G) · √(N·G²), evaluated in float64.
//
// Step 3 avoids the classic precision trap: N·G² is an exact non-negative
// rational, so the only rounding in the whole computation is the final
// Float64 conversion and one math.Sqrt.
//
// Complexity: O(j1+j2-J) big.Rat terms, each with factorial-sized
// integers; negligible for the l ranges of practical cluster expansions.
func ClebschGordan(j1, m1, j2, m2, J, M int) float64 {
	if !couplingAllowed(j1, m1, j2, m2, J, M) {
		return 0
	}

	return compute(j1, m1, j2, m2, J, M)
}

// couplingAllowed reports whether the triangle, magnetic-sum and bound
// conditions all hold. A false result means the coefficient is
// mathematically zero.
func couplingAllowed(j1, m1, j2, m2, J, M int) bool {
	if absInt(m1) > j1 || absInt(m2) > j2 || absInt(M) > J {
		return false // also rejects any negative j
	}
	if M != m1+m2 {
		return false
	}
	if J < absInt(j1-j2) || J > j1+j2 {
		return false
	}

	return true
}

// compute evaluates the closed form. All conditions must already hold.
func compute(j1, m1, j2, m2, J, M int) float64 {
	// --- 1. Exact squared prefactor N ---
	num := big.NewInt(int64(2*J + 1))
	num.Mul(num, factorial(j1+j2-J))
	num.Mul(num, factorial(j1-j2+J))
	num.Mul(num, factorial(-j1+j2+J))
	num.Mul(num, factorial(J+M))
	num.Mul(num, factorial(J-M))
	num.Mul(num, factorial(j1-m1))
	num.Mul(num, factorial(j1+m1))
	num.Mul(num, factorial(j2-m2))
	num.Mul(num, factorial(j2+m2))
	prefactor := new(big.Rat).SetFrac(num, factorial(j1+j2+J+1))

	// --- 2. Exact alternating sum G ---
	// k ranges over exactly the values keeping every factorial argument ≥ 0.
	kMin := maxInt(0, maxInt(j2-J-m1, j1+m2-J))
	kMax := minInt(j1+j2-J, minInt(j1-m1, j2+m2))
	sum := new(big.Rat)
	for k := kMin; k <= kMax; k++ {
		den := new(big.Int).Mul(factorial(k), factorial(j1+j2-J-k))
		den.Mul(den, factorial(j1-m1-k))
		den.Mul(den, factorial(j2+m2-k))
		den.Mul(den, factorial(J-j2+m1+k))
		den.Mul(den, factorial(J-j1-m2+k))
		term := new(big.Rat).SetFrac(big.NewInt(1), den)
		if k&1 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}

	sign := sum.Sign()
	if sign == 0 {
		return 0
	}

	// --- 3. Rational-root conversion: sign(G)·√(N·G²) ---
	square := new(big.Rat).Mul(sum, sum)
	square.Mul(square, prefactor)
	f, _ := square.Float64()

	return float64(sign) * math.Sqrt(f)
}

// factorial returns n! as an exact big integer. MulRange(1, 0) is the
// empty product, so factorial(0) == 1 without a special case.
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
