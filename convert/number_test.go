package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type age uint8

func TestNumberOf(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		for _, tc := range []struct {
			in   string
			want int32
			ok   bool
		}{
			{"12", 12, true},
			{" -12 ", -12, true},
			{"+7", 7, true},
			{"1,234", 1234, true},
			{"12.0", 12, true},
			{"1e3", 1000, true},
			{"12.5", 0, false},
			{"aaa", 0, false},
			{"", 0, false},
			{"2147483648", 0, false},
			{"-2147483648", math.MinInt32, true},
		} {
			got, ok := NumberOf[int32](tc.in)
			require.Equal(t, tc.ok, ok, "input %q", tc.in)
			require.Equal(t, tc.want, got, "input %q", tc.in)
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		got, ok := NumberOf[uint8]("255")
		require.True(t, ok)
		require.Equal(t, uint8(255), got)

		_, ok = NumberOf[uint8]("256")
		require.False(t, ok)

		_, ok = NumberOf[uint]("-1")
		require.False(t, ok)
	})

	t.Run("hexadecimal is rejected", func(t *testing.T) {
		for _, in := range []string{"0x1p4", "0X10", "-0x1p-2", " +0x10 "} {
			_, ok := NumberOf[float64](in)
			require.False(t, ok, "input %q", in)
			_, ok = NumberOf[int](in)
			require.False(t, ok, "input %q", in)
		}
		got, ok := NumberOf[int]("010")
		require.True(t, ok)
		require.Equal(t, 10, got)
	})

	t.Run("named type", func(t *testing.T) {
		got, ok := NumberOf[age]("42")
		require.True(t, ok)
		require.Equal(t, age(42), got)
	})

	t.Run("float", func(t *testing.T) {
		got, ok := NumberOf[float64]("1,234.5")
		require.True(t, ok)
		require.InDelta(t, 1234.5, got, 1e-9)

		f32, ok := NumberOf[float32]("0.25")
		require.True(t, ok)
		require.Equal(t, float32(0.25), f32)

		_, ok = NumberOf[float64]("abc")
		require.False(t, ok)
	})

	t.Run("int64 bounds", func(t *testing.T) {
		got, ok := NumberOf[int64]("9223372036854775807")
		require.True(t, ok)
		require.Equal(t, int64(math.MaxInt64), got)

		_, ok = NumberOf[int64]("9.3e18")
		require.False(t, ok)
	})
}

func TestNumberFamily(t *testing.T) {
	require.True(t, isFloat[float32]())
	require.True(t, isFloat[float64]())
	require.False(t, isFloat[int]())
	require.False(t, isFloat[uint16]())
	require.True(t, isSigned[int8]())
	require.False(t, isSigned[uint64]())
	require.False(t, isSigned[age]())
}
