// Package precision stores values larger than a native integer as arrays of
// fixed width digits.
//
// Fixing a float64 array scales every element by 2^VirtualPrec, truncates it
// toward zero to an integer, and splits that integer into base 2^Precision
// digits (see package digit). The digits become a new last axis:
//
//  values shape [2, 3]  =>  digits shape [2, 3, L]
//
// L is the longest digit sequence in the batch; shorter sequences are left
// padded with zero digits. With Precision 8 and VirtualPrec 0:
//
//  [3, 1000]  =>  [[0, 3], [3, 232]]
//
// Restoring folds every row of the last axis back into an integer and
// divides it by 2^VirtualPrec.
//
// Precision Loss
//
// Fixing truncates anything below 2^-VirtualPrec. This is not an error.
//
// Addition
//
// Add sums two digit arrays digit by digit. A shorter digit axis is first
// left padded with zero digits. No carries are propagated: a position may
// hold a value of 2^Precision or more after adding. The sum still restores
// to the sum of both values, but it is not Equal to fixing that sum.
//
//  Precision 8: [255] + [1]  =>  [256]  (fixing 256 gives [1, 0])
package precision
