// Package bilinear maps rational transfer functions between the analog
// s-plane and the discrete z-plane with the bilinear substitution
//
//	s = (2/T)·(z-1)/(z+1)
//
// and its inverse z = (2+sT)/(2-sT), and provides frequency pre-warping so
// a chosen critical frequency survives the mapping exactly.
//
// Transform is the reference implementation and expands every term as an
// explicit polynomial product. TransformClosedForm computes the same
// coefficients directly from binomial sums.
package bilinear
