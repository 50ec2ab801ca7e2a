package digit

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRestore(t *testing.T) {
	type TC struct {
		name   string
		bits   int
		digits []int64
	}

	tcs := []TC{
		{
			name:   "0",
			bits:   8,
			digits: []int64{0},
		},
		{
			name:   "1",
			bits:   8,
			digits: []int64{1},
		},
		{
			name:   "255",
			bits:   8,
			digits: []int64{255},
		},
		{
			name:   "256",
			bits:   8,
			digits: []int64{1, 0},
		},
		{
			name:   "1000",
			bits:   8,
			digits: []int64{3, 232},
		},
		{
			name:   "-1000",
			bits:   8,
			digits: []int64{-3, -232},
		},
		{
			name:   "1000",
			bits:   4,
			digits: []int64{3, 14, 8},
		},
		{
			name:   "1000",
			bits:   1,
			digits: []int64{1, 1, 1, 1, 1, 0, 1, 0, 0, 0},
		},
		{
			name:   "18446744073709551616",
			bits:   16,
			digits: []int64{1, 0, 0, 0, 0},
		},
		{
			name:   "1267650600228229401496703205376",
			bits:   32,
			digits: []int64{16, 0, 0, 0},
		},
		{
			name:   "4611686018427387904",
			bits:   62,
			digits: []int64{1, 0},
		},
		{
			name:   "4611686018427387903",
			bits:   62,
			digits: []int64{4611686018427387903},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.name, tc.bits), func(t *testing.T) {
			n, ok := new(big.Int).SetString(tc.name, 10)
			require.True(t, ok)

			t.Run("split", func(t *testing.T) {
				digits, err := Split(n, tc.bits)
				require.NoError(t, err)
				require.Equal(t, tc.digits, digits)
				require.Equal(t, len(tc.digits), Len(n, tc.bits))
			})

			t.Run("restore", func(t *testing.T) {
				r, err := Restore(tc.digits, tc.bits)
				require.NoError(t, err)
				require.Zero(t, n.Cmp(r), "want %s got %s", n, r)
			})
		})
	}
}

func TestSplitZero(t *testing.T) {
	for bits := 1; bits <= MaxBits; bits++ {
		digits, err := Split(new(big.Int), bits)
		require.NoError(t, err)
		require.Equal(t, []int64{0}, digits)
	}
}

func TestInverse(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(7),
		big.NewInt(65535),
		new(big.Int).Lsh(big.NewInt(1), 64),
		new(big.Int).Lsh(big.NewInt(1), 100),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1)),
		new(big.Int).Exp(big.NewInt(3), big.NewInt(300), nil),
	}

	for _, bits := range []int{1, 3, 4, 7, 8, 16, 31, 32, 61, 62} {
		for _, n := range values {
			digits, err := Split(n, bits)
			require.NoError(t, err)

			for _, d := range digits {
				require.GreaterOrEqual(t, d, int64(0))
				require.Less(t, d, int64(1)<<bits)
			}

			r, err := Restore(digits, bits)
			require.NoError(t, err)
			require.Zero(t, n.Cmp(r), "bits=%d want %s got %s", bits, n, r)

			neg := new(big.Int).Neg(n)
			digits, err = Split(neg, bits)
			require.NoError(t, err)

			r, err = Restore(digits, bits)
			require.NoError(t, err)
			require.Zero(t, neg.Cmp(r), "bits=%d want %s got %s", bits, neg, r)
		}
	}
}

func TestRestoreLeadingZeros(t *testing.T) {
	r, err := Restore([]int64{0, 0, 0, 1}, 8)
	require.NoError(t, err)
	require.Equal(t, int64(1), r.Int64())
}

func TestRestoreUncarried(t *testing.T) {
	// 256 in a single 8 bit position is folded, not carried.
	r, err := Restore([]int64{1, 256}, 8)
	require.NoError(t, err)
	require.Equal(t, int64(512), r.Int64())
}

func TestInvalidArgument(t *testing.T) {
	for _, bits := range []int{-1, 0, MaxBits + 1} {
		_, err := Split(big.NewInt(1), bits)
		require.Error(t, err)
		require.True(t, InvalidArgument.Has(err))

		_, err = Restore([]int64{1}, bits)
		require.Error(t, err)
		require.True(t, InvalidArgument.Has(err))
	}

	_, err := Split(nil, 8)
	require.True(t, InvalidArgument.Has(err))
	require.Equal(t, 0, Len(nil, 8))
}

func BenchmarkSplit(b *testing.B) {
	n := new(big.Int).Lsh(big.NewInt(1), 1024)

	for i := 0; i < b.N; i++ {
		_, err := Split(n, 16)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkRestore(b *testing.B) {
	digits := make([]int64, 64)
	for i := range digits {
		digits[i] = 0xffff
	}

	for i := 0; i < b.N; i++ {
		_, err := Restore(digits, 16)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
