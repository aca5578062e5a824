package basic

import (
	"time"

	"github.com/calumari/propset/internal/generator/testdata/records"
)

//go:generate go run github.com/calumari/propset/cmd/propsetgen

// Helper hosts the generated setters.
//
//propset:bind MyObject
//propset:bind records.Book unknown=skip
//propset:bind OtherObject unknown=throw
type Helper struct{}

type Base struct {
	Owner string
}

type MyObject struct {
	Base
	Id      int
	Name    string
	Value   []int
	Created time.Time
	note    string
}

type OtherObject struct {
	Comment  *string
	DateTime *time.Time
	Tags     map[string]string
	_        int
}
