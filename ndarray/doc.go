// Package ndarray provides a small row-major N-dimensional array.
//
// It covers what digit encoding needs from an array library: construction
// from a flat slice, zeros/ones/full construction, reshape, concatenation
// along an axis, element-wise addition, and reducing along the last axis.
// Arrays own their storage; every operation returns a new array.
//
// A zero dimensional array (empty shape) holds a single element.
package ndarray
