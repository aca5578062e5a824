package convert

import "time"

// ParseTime parses s as a timestamp (see TimeOf) and passes it to set.
func ParseTime(s *string, set func(time.Time) bool) bool {
	if s == nil {
		return false
	}
	t, ok := TimeOf(*s)
	if !ok {
		return false
	}
	return set(t)
}

// ParseTimeNullable is ParseTime for *time.Time targets. A nil s is passed on
// as nil.
func ParseTimeNullable(s *string, set func(*time.Time) bool) bool {
	if s == nil {
		return set(nil)
	}
	return ParseTime(s, func(t time.Time) bool { return set(&t) })
}

// ParseNumber parses s as a T (see NumberOf) and passes it to set.
func ParseNumber[T Number](s *string, set func(T) bool) bool {
	if s == nil {
		return false
	}
	n, ok := NumberOf[T](*s)
	if !ok {
		return false
	}
	return set(n)
}

// ParseNumberNullable is ParseNumber for *T targets. A nil s is passed on as
// nil.
func ParseNumberNullable[T Number](s *string, set func(*T) bool) bool {
	if s == nil {
		return set(nil)
	}
	return ParseNumber(s, func(n T) bool { return set(&n) })
}

// ParseString passes s to set unchanged.
func ParseString[T ~string](s *string, set func(T) bool) bool {
	if s == nil {
		return false
	}
	return set(T(*s))
}

// ParseStringNullable is ParseString for *T targets. The setter receives a
// fresh copy so the target never aliases the caller's string pointer.
func ParseStringNullable[T ~string](s *string, set func(*T) bool) bool {
	if s == nil {
		return set(nil)
	}
	v := T(*s)
	return set(&v)
}
