package precision

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/lpt/digit"
	"github.com/calebcase/lpt/ndarray"
)

// Error classes.
var (
	Error           = errs.Class("precision")
	InvalidArgument = errs.Class("invalid argument")
	ShapeMismatch   = errs.Class("shape mismatch")
)

// Operand is anything that can be added to an Array.
type Operand interface {
	DigitArray() *ndarray.Array[int64]
}

type raw struct {
	digits *ndarray.Array[int64]
}

func (r raw) DigitArray() *ndarray.Array[int64] {
	return r.digits
}

// Raw wraps a bare digit array so it can be passed to Add. The caller is
// responsible for it using the same schema as the Array it is added to.
func Raw(digits *ndarray.Array[int64]) Operand {
	return raw{digits}
}

// Array is an N-dimensional array of values encoded as digits along an extra
// last axis.
type Array struct {
	schema Schema
	digits *ndarray.Array[int64]

	log *zap.Logger
}

// New returns an empty Array. Use Fix to encode values into it.
func New(schema Schema, opts ...Option) (a *Array, err error) {
	err = schema.Validate()
	if err != nil {
		return nil, err
	}

	a = &Array{
		schema: schema,
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// FromDigits returns an Array owning an already encoded digit array.
func FromDigits(schema Schema, digits *ndarray.Array[int64], opts ...Option) (a *Array, err error) {
	if digits == nil {
		return nil, InvalidArgument.New("nil digits")
	}

	if digits.Shape().NDim() == 0 || digits.Shape().Last() == 0 {
		return nil, InvalidArgument.New("digit array shape %s has no digit axis", digits.Shape())
	}

	a, err = New(schema, opts...)
	if err != nil {
		return nil, err
	}

	a.digits = digits

	return a, nil
}

// Attributes returns the schema needed to rebuild an equivalent Array.
func (a *Array) Attributes() Schema {
	return a.schema
}

// DigitArray returns the encoded digits or nil if nothing was fixed yet.
// The returned array must not be modified.
func (a *Array) DigitArray() *ndarray.Array[int64] {
	if a == nil {
		return nil
	}

	return a.digits
}

// Fix encodes values into digits, replacing any digits the Array held, and
// returns the Array.
func (a *Array) Fix(values *ndarray.Array[float64]) (_ *Array, err error) {
	shape := values.Shape()
	data := values.Data()

	seqs := make([][]int64, len(data))
	width := 1

	for i, x := range data {
		n, err := scale(x, a.schema.VirtualPrec)
		if err != nil {
			return nil, err
		}

		seqs[i], err = digit.Split(n, a.schema.Precision)
		if err != nil {
			return nil, err
		}

		if len(seqs[i]) > width {
			width = len(seqs[i])
		}
	}

	// Left pad every sequence to the widest one.
	flat := make([]int64, len(seqs)*width)
	for i, seq := range seqs {
		copy(flat[(i+1)*width-len(seq):(i+1)*width], seq)
	}

	digits, err := ndarray.New(shape.Append(width), flat)
	if err != nil {
		return nil, err
	}

	a.digits = digits

	a.log.Debug("fixed",
		zap.Stringer("shape", shape),
		zap.Int("digits", width),
		zap.Int("precision", a.schema.Precision),
		zap.Int("virtual_prec", a.schema.VirtualPrec),
	)

	return a, nil
}

// Restore decodes the digits back into values. Values too large for a
// float64 restore as ±Inf.
func (a *Array) Restore() (values *ndarray.Array[float64], err error) {
	defer Error.WrapP(&err)

	if a.digits == nil {
		return nil, Error.New("nothing fixed")
	}

	return ndarray.ReduceLast(a.digits, func(row []int64) (float64, error) {
		n, err := digit.Restore(row, a.schema.Precision)
		if err != nil {
			return 0, err
		}

		return unscale(n, a.schema.VirtualPrec), nil
	})
}

// Add returns the digit-wise sum of a and other. The shorter digit axis is
// left padded with zeros first. Digits are not carried.
func (a *Array) Add(other Operand) (_ *Array, err error) {
	if other == nil {
		return nil, InvalidArgument.New("nil operand")
	}

	if o, ok := other.(*Array); ok && o != nil && o.schema != a.schema {
		return nil, InvalidArgument.New("schema %+v != %+v", a.schema, o.schema)
	}

	x := a.digits
	y := other.DigitArray()

	if x == nil || y == nil {
		return nil, Error.New("add of an unfixed array")
	}

	xs, ys := x.Shape(), y.Shape()

	if xs.NDim() == 0 || ys.NDim() == 0 {
		return nil, ShapeMismatch.New("no digit axis in %s and %s", xs, ys)
	}

	if !xs.Leading().Equal(ys.Leading()) {
		return nil, ShapeMismatch.New("leading axes %s and %s", xs.Leading(), ys.Leading())
	}

	switch {
	case xs.Last() < ys.Last():
		x, err = pad(x, ys.Last())
	case xs.Last() > ys.Last():
		y, err = pad(y, xs.Last())
	}
	if err != nil {
		return nil, err
	}

	sum, err := ndarray.Add(x, y)
	if err != nil {
		return nil, err
	}

	return &Array{
		schema: a.schema,
		digits: sum,
		log:    a.log,
	}, nil
}

// AddAssign replaces the digits of a with the result of a.Add(other).
func (a *Array) AddAssign(other Operand) (err error) {
	sum, err := a.Add(other)
	if err != nil {
		return err
	}

	a.digits = sum.digits

	return nil
}

// Equal reports whether both arrays hold exactly the same digits. Arrays
// encoding the same values with different padding are not equal.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.digits.Equal(other.digits)
}

// pad prepends zero digits along the last axis until it is width long.
func pad(digits *ndarray.Array[int64], width int) (*ndarray.Array[int64], error) {
	shape := digits.Shape()

	filler, err := ndarray.Zeros[int64](shape.Leading().Append(width - shape.Last()))
	if err != nil {
		return nil, err
	}

	return ndarray.Concat(shape.NDim()-1, filler, digits)
}

// scale returns x * 2^bits truncated toward zero.
func scale(x float64, bits int) (*big.Int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, InvalidArgument.New("value %v is not finite", x)
	}

	f := new(big.Float).SetFloat64(x)
	f.SetMantExp(f, bits)

	n, _ := f.Int(nil)
	if n == nil {
		return nil, InvalidArgument.New("value %v scaled by 2^%d overflows", x, bits)
	}

	return n, nil
}

// unscale returns n / 2^bits rounded to the nearest float64.
func unscale(n *big.Int, bits int) float64 {
	f := new(big.Float).SetInt(n)
	f.SetMantExp(f, -bits)

	v, _ := f.Float64()

	return v
}
