// Package rational provides the rational transfer function type shared by the
// bilinear, stability, design and response packages.
//
// A [TransferFunction] holds real numerator and denominator coefficients in
// highest-degree-first order together with a display variable ('s' for
// analog, 'z' for discrete functions). Values are immutable: constructors
// normalise their input and accessors return copies.
//
// Validation failures across the module are reported as [*SpecError] values
// that match [ErrInvalidSpecification] under [errors.Is].
package rational
