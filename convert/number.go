package convert

import (
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// Number is the closed set of types NumberOf can produce. Named types are
// accepted through their underlying type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberOf parses s into a T without regard to locale.
//
// Surrounding white space is ignored and ',' group separators are dropped.
// Integer targets also accept decimal or exponent notation as long as the
// value is integral and in range, so "12.0" and "1e3" parse but "12.5" does
// not.
func NumberOf[T Number](s string) (T, bool) {
	var zero T
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || hasHexPrefix(s) {
		return zero, false
	}
	bits := int(unsafe.Sizeof(zero)) * 8

	if isFloat[T]() {
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, false
		}
		return T(f), true
	}

	if isSigned[T]() {
		if i, err := strconv.ParseInt(s, 10, bits); err == nil {
			return T(i), true
		}
		f, ok := integral(s)
		limit := math.Ldexp(1, bits-1)
		if !ok || f < -limit || f >= limit {
			return zero, false
		}
		return T(int64(f)), true
	}

	if u, err := strconv.ParseUint(s, 10, bits); err == nil {
		return T(u), true
	}
	f, ok := integral(s)
	if !ok || f < 0 || f >= math.Ldexp(1, bits) {
		return zero, false
	}
	return T(uint64(f)), true
}

// hasHexPrefix reports whether s is written in hexadecimal, which
// strconv.ParseFloat would otherwise accept.
func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// integral parses s as a float and reports whether it holds a whole number.
func integral(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

// isFloat reports whether T is a floating-point type: only those keep a
// fractional part.
func isFloat[T Number]() bool {
	var x T = 1
	x /= 2
	return x != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var x T
	x--
	return x < 0
}
