package ndarray

import "github.com/zeebo/errs"

// Error is the error class for invalid array construction and indexing.
var Error = errs.Class("ndarray")

// ShapeMismatch is the error class for operands with incompatible shapes.
var ShapeMismatch = errs.Class("shape mismatch")

// Number is the set of element types an Array may hold.
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Array is a dense row-major N-dimensional array.
type Array[T Number] struct {
	shape Shape
	data  []T
}

// New returns an array of the given shape backed by a copy of data.
func New[T Number](shape Shape, data []T) (a *Array[T], err error) {
	err = shape.validate()
	if err != nil {
		return nil, err
	}

	if len(data) != shape.NumElements() {
		return nil, Error.New("data length %d != shape %s elements %d",
			len(data),
			shape,
			shape.NumElements(),
		)
	}

	a = &Array[T]{
		shape: shape.Clone(),
		data:  make([]T, len(data)),
	}
	copy(a.data, data)

	return a, nil
}

// Full returns an array of the given shape with every element set to v.
func Full[T Number](shape Shape, v T) (a *Array[T], err error) {
	err = shape.validate()
	if err != nil {
		return nil, err
	}

	a = &Array[T]{
		shape: shape.Clone(),
		data:  make([]T, shape.NumElements()),
	}

	if v != 0 {
		for i := range a.data {
			a.data[i] = v
		}
	}

	return a, nil
}

// Zeros returns a zero filled array of the given shape.
func Zeros[T Number](shape Shape) (*Array[T], error) {
	return Full[T](shape, 0)
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Data returns a copy of the elements in row-major order.
func (a *Array[T]) Data() []T {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return data
}

// At returns the element at the given index.
func (a *Array[T]) At(index ...int) (v T, err error) {
	if len(index) != len(a.shape) {
		return v, Error.New("index %v has %d axes, shape %s has %d",
			index,
			len(index),
			a.shape,
			len(a.shape),
		)
	}

	offset := 0
	for i, x := range index {
		if x < 0 || x >= a.shape[i] {
			return v, Error.New("index %v out of range for shape %s", index, a.shape)
		}

		offset = offset*a.shape[i] + x
	}

	return a.data[offset], nil
}

// Equal reports whether both arrays have the same shape and elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	if !a.shape.Equal(b.shape) {
		return false
	}

	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Add returns the element-wise sum of two arrays of equal shape. Integer
// overflow wraps.
func Add[T Number](a, b *Array[T]) (*Array[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, ShapeMismatch.New("add %s and %s", a.shape, b.shape)
	}

	c := &Array[T]{
		shape: a.shape.Clone(),
		data:  make([]T, len(a.data)),
	}

	for i := range c.data {
		c.data[i] = a.data[i] + b.data[i]
	}

	return c, nil
}

// Concat joins arrays along axis. All other axes must match.
func Concat[T Number](axis int, arrays ...*Array[T]) (c *Array[T], err error) {
	if len(arrays) == 0 {
		return nil, Error.New("concat of no arrays")
	}

	first := arrays[0].shape
	if axis < 0 || axis >= len(first) {
		return nil, Error.New("axis %d out of range for shape %s", axis, first)
	}

	shape := first.Clone()
	shape[axis] = 0

	for _, a := range arrays {
		if len(a.shape) != len(first) {
			return nil, ShapeMismatch.New("concat %s and %s", first, a.shape)
		}

		for i := range first {
			if i != axis && a.shape[i] != first[i] {
				return nil, ShapeMismatch.New("concat %s and %s on axis %d",
					first,
					a.shape,
					axis,
				)
			}
		}

		shape[axis] += a.shape[axis]
	}

	// Row-major: everything before axis is the outer loop and each array
	// contributes a contiguous block of shape[axis:] per outer index.
	outer := shape[:axis].NumElements()
	inner := shape[axis+1:].NumElements()

	c = &Array[T]{
		shape: shape,
		data:  make([]T, 0, shape.NumElements()),
	}

	for o := 0; o < outer; o++ {
		for _, a := range arrays {
			block := a.shape[axis] * inner
			c.data = append(c.data, a.data[o*block:(o+1)*block]...)
		}
	}

	return c, nil
}

// ReduceLast applies fn to every row along the last axis and returns the
// results in an array shaped like a without its last axis.
func ReduceLast[T, U Number](a *Array[T], fn func(row []T) (U, error)) (r *Array[U], err error) {
	if len(a.shape) == 0 {
		return nil, Error.New("reduce of a scalar")
	}

	shape := a.shape.Leading()
	width := a.shape.Last()

	r = &Array[U]{
		shape: shape,
		data:  make([]U, shape.NumElements()),
	}

	for i := range r.data {
		row := make([]T, width)
		copy(row, a.data[i*width:(i+1)*width])

		r.data[i], err = fn(row)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}
