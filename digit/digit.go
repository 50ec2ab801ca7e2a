package digit

import (
	"math/big"

	"github.com/zeebo/errs"
)

// MaxBits is the largest digit width. The sum of two digits of this width
// still fits in an int64.
const MaxBits = 62

// InvalidArgument is the error class for out of range digit widths.
var InvalidArgument = errs.Class("invalid argument")

func check(bits int) (err error) {
	if bits <= 0 || bits > MaxBits {
		return InvalidArgument.New("bits=%d not in [1, %d]", bits, MaxBits)
	}

	return nil
}

// Len returns the number of digits Split produces for n.
func Len(n *big.Int, bits int) int {
	if n == nil || bits <= 0 {
		return 0
	}

	l := (n.BitLen() + bits - 1) / bits
	if l == 0 {
		return 1
	}

	return l
}

// Split returns the base 2^bits digits of n, most significant first.
func Split(n *big.Int, bits int) (digits []int64, err error) {
	err = check(bits)
	if err != nil {
		return nil, err
	}

	if n == nil {
		return nil, InvalidArgument.New("nil integer")
	}

	digits = make([]int64, Len(n, bits))

	neg := n.Sign() < 0
	m := new(big.Int).Abs(n)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	part := new(big.Int)

	for i := len(digits) - 1; i >= 0; i-- {
		part.And(m, mask)
		m.Rsh(m, uint(bits))

		d := part.Int64()
		if neg {
			d = -d
		}

		digits[i] = d
	}

	return digits, nil
}

// Restore rebuilds the integer represented by digits. It is the inverse of
// Split for the same bits.
func Restore(digits []int64, bits int) (n *big.Int, err error) {
	err = check(bits)
	if err != nil {
		return nil, err
	}

	n = new(big.Int)
	d := new(big.Int)

	for _, x := range digits {
		n.Lsh(n, uint(bits))
		n.Add(n, d.SetInt64(x))
	}

	return n, nil
}
