// Package poly evaluates the power series used by the ITS-90 reference functions.
package poly

// Float is the set of storage types a coefficient set can be materialised in.
type Float interface {
	~float32 | ~float64
}

// Eval returns c[0] + c[1]*x + ... + c[n-1]*x^(n-1) using Horner's method.
//
// Accumulation runs from the highest power down to the constant term, the same order as the
// NIST reference implementation, so results round identically. An empty set evaluates to 0.
func Eval[F Float](c []F, x F) F {
	n := len(c)
	if n == 0 {
		return 0
	}

	acc := c[n-1]
	for i := n - 2; i >= 0; i-- {
		// the conversion forces rounding of the product, so the compiler never fuses it into an FMA
		acc = F(acc*x) + c[i]
	}

	return acc
}
