package precision

import (
	"math"

	"github.com/calebcase/lpt/digit"
)

// MaxVirtualPrec is the largest virtual precision. Scaling the largest
// float64 by 2^MaxVirtualPrec stays within the big.Float exponent range.
const MaxVirtualPrec = math.MaxInt32 - 1024

// Schema holds the attributes needed to rebuild an equivalent Array.
type Schema struct {
	// Precision is the width of each digit in bits.
	Precision int

	// VirtualPrec is the number of fractional bits kept when fixing.
	VirtualPrec int
}

// DefaultSchema uses 16 bit digits and no fractional bits.
var DefaultSchema = Schema{
	Precision:   16,
	VirtualPrec: 0,
}

// Validate checks that the schema can be used to encode values.
func (s Schema) Validate() (err error) {
	if s.Precision <= 0 || s.Precision > digit.MaxBits {
		return InvalidArgument.New("precision=%d not in [1, %d]", s.Precision, digit.MaxBits)
	}

	if s.VirtualPrec < 0 || s.VirtualPrec > MaxVirtualPrec {
		return InvalidArgument.New("virtual precision=%d not in [0, %d]", s.VirtualPrec, MaxVirtualPrec)
	}

	return nil
}
