package ndarray

import "fmt"

// Shape is the length of each axis.
type Shape []int

// NumElements returns the total number of elements in the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return len(s)
}

// Equal reports whether both shapes have the same axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)

	return c
}

// Append returns a copy of the shape with the axes appended.
func (s Shape) Append(axes ...int) Shape {
	c := make(Shape, 0, len(s)+len(axes))
	c = append(c, s...)

	return append(c, axes...)
}

// Leading returns the shape without its last axis.
func (s Shape) Leading() Shape {
	if len(s) == 0 {
		return Shape{}
	}

	return s[:len(s)-1].Clone()
}

// Last returns the length of the last axis or 0 for a scalar shape.
func (s Shape) Last() int {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1]
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

func (s Shape) validate() (err error) {
	for i, d := range s {
		if d < 0 {
			return Error.New("negative axis %d: %s", i, s)
		}
	}

	return nil
}
