// Package digitize runs the full analog-to-discrete flow in one call:
// build or accept an analog transfer function, pre-warp it, map it with
// the bilinear transform and analyse the stability of the result.
//
// Two request shapes are supported. Manual requests carry analog
// coefficients and go through pre-warping and bilinear.Transform. Design
// requests carry an analog.Spec and use analog.Design, which digitises the
// prototype without pre-warping; the reported analog function of a design
// request is the discrete result relabelled in s, and the pre-warped
// function is derived from that relabelled copy for display only.
package digitize
