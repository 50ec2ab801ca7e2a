// Package digit splits arbitrarily large integers into fixed width digits.
//
// A digit sequence is the positional representation of an integer in base
// 2^bits, most significant digit first:
//
//  n = d[0] * 2^(bits*(k-1)) + ... + d[k-2] * 2^bits + d[k-1]
//
// For example, with 8 bit digits:
//
//  1000 = 3 * 256 + 232 => [3, 232]
//     0                 => [0]
//
// Zero always encodes as a single zero digit.
//
// Sign
//
// Negative integers are encoded sign-magnitude with the sign carried on every
// digit: the digits of |n| are each negated.
//
//  -1000 => [-3, -232]
//
// Restore folds the sequence with the same formula regardless of sign, so
// the encoding round trips and digit-wise sums of two sequences restore to
// the sum of their values.
//
// Digits are int64 values. Restore accepts digits outside [0, 2^bits) (for
// example the result of adding two sequences digit by digit) and folds them
// without carrying.
package digit
