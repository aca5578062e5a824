package generator

import (
	"strconv"
	"strings"
	"unicode"
)

// methodName is the dispatch method for record on a container with the given
// accessibility.
func methodName(exported bool, record string) string {
	if exported {
		return "SetProperty" + record
	}
	return "setProperty" + record
}

// fileNameFor derives the stable output file name of a container.
func fileNameFor(container string) string {
	return snakeCase(container) + "_propset.go"
}

// snakeCase turns a Go identifier into snake case, keeping initialisms
// together: HTTPHelper -> http_helper.
func snakeCase(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1]) ||
				(unicode.IsUpper(r[i-1]) && i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(c))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// parseDirectiveArgs splits "key=value" pairs.
func parseDirectiveArgs(fields []string) (map[string]string, error) {
	res := map[string]string{}
	for _, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k == "" || v == "" {
			return nil, &directiveError{msg: "malformed argument " + strconv.Quote(f) + " (want key=value)"}
		}
		if _, dup := res[k]; dup {
			return nil, &directiveError{msg: "duplicate argument " + strconv.Quote(k)}
		}
		res[k] = v
	}
	return res, nil
}

// directiveError is a problem with a single directive; it becomes a
// diagnostic instead of failing the run.
type directiveError struct{ msg string }

func (e *directiveError) Error() string { return e.msg }
