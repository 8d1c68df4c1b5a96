// Package stability locates the poles and zeros of a discrete transfer
// function and decides whether the system is BIBO stable.
//
// Roots are found with Laguerre's method from random starting points. The
// random source is injectable so analyses can be reproduced:
//
//	a := stability.New(tf, stability.WithSeed(1))
//	if a.IsStable() { ... }
//
// Root extraction is bounded effort. When an attempt hits a numerical
// guard the search stops and the pole or zero set is partial; Complete
// and Verify report that case.
package stability
