// Package analog synthesises analog lowpass prototypes for five filter
// families and digitises them with the bilinear transform.
//
// The pole-based families (Butterworth, Chebyshev I and II, Elliptic) place
// poles on the angles θ_k = π(2k-1)/(2·order) and assign one scalar per
// pole directly to the denominator slot of power k: |p_k|² for even k and
// -2·Re(p_k) for odd k. The pole pairs are not multiplied out and the
// constant slot stays zero. Chebyshev II and Elliptic carry no true
// transmission zeros and Elliptic does not use elliptic functions. The
// prototypes are quick approximations, not textbook designs; use
// dsp/filter/design/pass for exact cascades.
package analog
