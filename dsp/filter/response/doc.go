// Package response evaluates transfer functions over frequency and time:
// discrete and analog frequency responses with group delay, the Nyquist
// locus, FFT magnitude spectra and difference-equation simulation.
//
// Results are plain sample slices. Curve adds lazy, restartable iteration
// for consumers that reveal a plot progressively.
package response
