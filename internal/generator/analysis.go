package generator

import (
	"path"
	"slices"
	"strconv"
	"strings"
)

// convertPath is the import path of the runtime helpers generated code calls.
const convertPath = "github.com/calumari/propset/convert"

// importSet plans the imports of one generated file. Names are handed out in
// request order, which follows the model, so the result is deterministic.
type importSet struct {
	local  string            // import path of the generated package
	byPath map[string]string // path -> name used in the file
	taken  map[string]string // name -> path
}

// reserved names always refer to these packages so that templates can spell
// them literally.
var reservedImports = map[string]string{
	"convert": convertPath,
	"time":    "time",
}

func newImportSet(local string) *importSet {
	return &importSet{local: local, byPath: map[string]string{}, taken: map[string]string{}}
}

// use records that the file refers to pkgPath and returns the name to
// qualify it with, or "" for the generated package itself.
func (s *importSet) use(pkgPath, pkgName string) string {
	if pkgPath == "" || pkgPath == s.local {
		return ""
	}
	if name, ok := s.byPath[pkgPath]; ok {
		return name
	}
	if pkgName == "" {
		pkgName = path.Base(pkgPath)
	}
	name := pkgName
	for i := 2; ; i++ {
		owner, isTaken := s.taken[name]
		reservedFor, isReserved := reservedImports[name]
		if (!isTaken || owner == pkgPath) && (!isReserved || reservedFor == pkgPath) {
			break
		}
		name = pkgName + strconv.Itoa(i)
	}
	s.byPath[pkgPath] = name
	s.taken[name] = pkgPath
	return name
}

// qualifier adapts use to model.Qualifier.
func (s *importSet) qualifier(pkgPath, pkgName string) string {
	return s.use(pkgPath, pkgName)
}

// models returns the import lines sorted by path, standard library first.
func (s *importSet) models() (std, other []importModel) {
	for p, name := range s.byPath {
		m := importModel{Path: p}
		if name != path.Base(p) {
			m.Name = name
		}
		if isStdlib(p) {
			std = append(std, m)
		} else {
			other = append(other, m)
		}
	}
	byPath := func(a, b importModel) int { return strings.Compare(a.Path, b.Path) }
	slices.SortFunc(std, byPath)
	slices.SortFunc(other, byPath)
	return std, other
}

// isStdlib uses the go command's rule: standard library paths have no dot
// in their first element.
func isStdlib(p string) bool {
	first, _, _ := strings.Cut(p, "/")
	return !strings.Contains(first, ".")
}
