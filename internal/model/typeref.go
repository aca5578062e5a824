package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies the shape of a TypeRef.
type Kind int

const (
	KindOther Kind = iota // anything without a dedicated kind: chan, func, interface, struct literal
	KindBasic
	KindNamed
	KindPointer
	KindSlice
	KindArray
	KindMap
)

// TypeRef describes the declared type of a property. It is deliberately
// detached from go/types so that models can be read from files and compared
// by value.
type TypeRef struct {
	Kind    Kind
	Name    string // basic or named type name; Go text for KindOther
	Pkg     string // import path of a named type, empty for the generated package
	PkgName string // qualifier of Pkg
	Len     int64  // array length
	Key     *TypeRef
	Elem    *TypeRef
	// Underlying is the basic type under a named type, when it is one.
	Underlying *TypeRef
}

// Basic returns the TypeRef of a predeclared type.
func Basic(name string) TypeRef { return TypeRef{Kind: KindBasic, Name: name} }

// Named returns the TypeRef of a defined type. underlying may be nil.
func Named(pkg, pkgName, name string, underlying *TypeRef) TypeRef {
	return TypeRef{Kind: KindNamed, Name: name, Pkg: pkg, PkgName: pkgName, Underlying: underlying}
}

// PointerTo returns *elem.
func PointerTo(elem TypeRef) TypeRef { return TypeRef{Kind: KindPointer, Elem: &elem} }

// Qualifier maps a package to the name used in front of its identifiers; an
// empty result leaves the identifier unqualified.
type Qualifier func(pkgPath, pkgName string) string

// Format writes t as Go source using q for named types.
func (t TypeRef) Format(q Qualifier) string {
	switch t.Kind {
	case KindBasic, KindOther:
		return t.Name
	case KindNamed:
		if t.Pkg == "" {
			return t.Name
		}
		if p := q(t.Pkg, t.PkgName); p != "" {
			return p + "." + t.Name
		}
		return t.Name
	case KindPointer:
		return "*" + t.Elem.Format(q)
	case KindSlice:
		return "[]" + t.Elem.Format(q)
	case KindArray:
		return "[" + strconv.FormatInt(t.Len, 10) + "]" + t.Elem.Format(q)
	case KindMap:
		return "map[" + t.Key.Format(q) + "]" + t.Elem.Format(q)
	}
	return t.Name
}

// String is the display form used in diagnostics, e.g. "*time.Time".
func (t TypeRef) String() string {
	return t.Format(func(_, name string) string { return name })
}

var basicNames = map[string]string{
	"bool": "bool", "string": "string",
	"int": "int", "int8": "int8", "int16": "int16", "int32": "int32", "int64": "int64",
	"uint": "uint", "uint8": "uint8", "uint16": "uint16", "uint32": "uint32", "uint64": "uint64",
	"uintptr": "uintptr", "float32": "float32", "float64": "float64",
	"complex64": "complex64", "complex128": "complex128",
	"byte": "uint8", "rune": "int32",
}

// ParseTypeRef reads the textual form used by model files. Named types from
// other packages are written with their full import path, as in
// "github.com/acme/models.Age" or "time.Time"; a bare identifier that is not
// predeclared names a type of the generated package.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return TypeRef{}, fmt.Errorf("empty type")
	case strings.HasPrefix(s, "*"):
		elem, err := ParseTypeRef(s[1:])
		if err != nil {
			return TypeRef{}, err
		}
		return PointerTo(elem), nil
	case strings.HasPrefix(s, "[]"):
		elem, err := ParseTypeRef(s[2:])
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Kind: KindSlice, Elem: &elem}, nil
	case strings.HasPrefix(s, "["):
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return TypeRef{}, fmt.Errorf("unterminated array type %q", s)
		}
		n, err := strconv.ParseInt(s[1:end], 10, 64)
		if err != nil {
			return TypeRef{}, fmt.Errorf("array length in %q: %w", s, err)
		}
		elem, err := ParseTypeRef(s[end+1:])
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Kind: KindArray, Len: n, Elem: &elem}, nil
	case strings.HasPrefix(s, "map["):
		end := matchBracket(s, len("map"))
		if end < 0 {
			return TypeRef{}, fmt.Errorf("unterminated map type %q", s)
		}
		key, err := ParseTypeRef(s[len("map["):end])
		if err != nil {
			return TypeRef{}, err
		}
		elem, err := ParseTypeRef(s[end+1:])
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Kind: KindMap, Key: &key, Elem: &elem}, nil
	}

	if name, ok := basicNames[s]; ok {
		return Basic(name), nil
	}
	if strings.ContainsAny(s, " ({") {
		return TypeRef{Kind: KindOther, Name: s}, nil
	}
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return Named("", "", s, nil), nil
	}
	path, name := s[:dot], s[dot+1:]
	if path == "" || name == "" {
		return TypeRef{}, fmt.Errorf("malformed type name %q", s)
	}
	pkgName := path
	if slash := strings.LastIndexByte(path, '/'); slash >= 0 {
		pkgName = path[slash+1:]
	}
	return Named(path, pkgName, name, nil), nil
}

// matchBracket returns the index of the ']' closing the '[' at open.
func matchBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
