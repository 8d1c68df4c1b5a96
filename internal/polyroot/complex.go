package polyroot

import "math"

// DivideSafe returns a/b. It reports false instead of dividing when
// |b|^2 < Tol.
func DivideSafe(a, b complex128) (complex128, bool) {
	den := real(b)*real(b) + imag(b)*imag(b)
	if den < Tol {
		return 0, false
	}

	re := (real(a)*real(b) + imag(a)*imag(b)) / den
	im := (imag(a)*real(b) - real(a)*imag(b)) / den

	return complex(re, im), true
}

// Sqrt returns the principal square root of z computed in polar form.
func Sqrt(z complex128) complex128 {
	r := math.Sqrt(abs(z))
	theta := math.Atan2(imag(z), real(z)) / 2

	return complex(r*math.Cos(theta), r*math.Sin(theta))
}
