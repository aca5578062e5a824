package generator

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/model"
)

// directivePrefix marks a binding on a container type declaration:
//
//	//propset:bind MyObject
//	//propset:bind records.Book unknown=skip
//	type Helper struct{}
//
// The record is a type of the same package, or <import name>.<Type> resolved
// through the imports of the declaring file, or <import path>.<Type> for a
// package imported anywhere in the package. unknown= takes skip, throw or
// error.
const directivePrefix = "//propset:bind"

// generatedMarker starts every file propsetgen writes.
const generatedMarker = "// Code generated by propsetgen. DO NOT EDIT."

// loadDir loads the Go package of a directory. Files previously written by
// propsetgen are replaced by their bare package clause so that stale output
// cannot break type checking. Type errors are tolerated: code calling the
// methods about to be generated does not type check yet, while the container
// and record declarations still resolve.
func loadDir(ctx context.Context, dir string) (*packages.Package, error) {
	overlay, err := staleOverlay(dir)
	if err != nil {
		return nil, err
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Overlay: overlay,
	}
	pkgs, err := packages.Load(cfg, "./")
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		if e.Kind != packages.TypeError {
			return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, e)
		}
	}
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil, fmt.Errorf("package %s: no type information", pkg.PkgPath)
	}
	return pkg, nil
}

// staleOverlay finds files in dir carrying the propsetgen marker.
func staleOverlay(dir string) (map[string][]byte, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	overlay := map[string][]byte{}
	fset := token.NewFileSet()
	for _, name := range matches {
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if !bytes.HasPrefix(src, []byte(generatedMarker)) {
			continue
		}
		f, err := parser.ParseFile(fset, name, src, parser.PackageClauseOnly)
		if err != nil {
			continue
		}
		overlay[name] = []byte("package " + f.Name.Name + "\n")
	}
	return overlay, nil
}

// bindDirective is one parsed //propset:bind line.
type bindDirective struct {
	Record string
	Policy *model.Policy
	Pos    token.Position
}

// parseBindDirective parses the text of one comment. ok is false when the
// comment is not a bind directive at all.
func parseBindDirective(text string) (d bindDirective, ok bool, err error) {
	rest, found := strings.CutPrefix(text, directivePrefix)
	if !found {
		return d, false, nil
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return d, false, nil
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return d, true, &directiveError{msg: "missing record type"}
	}
	d.Record = fields[0]
	args, err := parseDirectiveArgs(fields[1:])
	if err != nil {
		return d, true, err
	}
	for k, v := range args {
		if k != "unknown" {
			return d, true, &directiveError{msg: fmt.Sprintf("unknown argument %q", k)}
		}
		p, err := model.ParsePolicy(v)
		if err != nil {
			return d, true, &directiveError{msg: err.Error()}
		}
		d.Policy = &p
	}
	return d, true, nil
}

// discover builds a container model for every type declaration carrying at
// least one bind directive, in file then declaration order.
func discover(pkg *packages.Package, sink diag.Sink) []*model.Container {
	var out []*model.Container
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				directives := collectDirectives(pkg.Fset, ts.Name.Name, doc, sink)
				if len(directives) == 0 {
					continue
				}
				out = append(out, buildContainer(pkg, file, ts, directives, sink))
			}
		}
	}
	return out
}

func collectDirectives(fset *token.FileSet, container string, doc *ast.CommentGroup, sink diag.Sink) []bindDirective {
	if doc == nil {
		return nil
	}
	var res []bindDirective
	for _, c := range doc.List {
		d, ok, err := parseBindDirective(c.Text)
		if !ok {
			continue
		}
		d.Pos = fset.Position(c.Pos())
		if err != nil {
			sink.Report(diag.DirectiveInvalid(container, err.Error(), diag.PositionOf(d.Pos)))
			continue
		}
		res = append(res, d)
	}
	return res
}

// buildContainer resolves the directives of one container declaration.
func buildContainer(pkg *packages.Package, file *ast.File, ts *ast.TypeSpec, directives []bindDirective, sink diag.Sink) *model.Container {
	decl := model.ContainerDecl{
		Name:        ts.Name.Name,
		Exported:    ts.Name.IsExported(),
		Package:     pkg.Name,
		PackagePath: pkg.PkgPath,
		Pos:         pkg.Fset.Position(ts.Pos()),
	}
	if obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
		under := obj.Type().Underlying()
		_, isPtr := under.(*types.Pointer)
		_, isIface := under.(*types.Interface)
		decl.Partial = !ts.Assign.IsValid() && ts.TypeParams == nil && !isPtr && !isIface
		st, isStruct := under.(*types.Struct)
		decl.Static = isStruct && st.NumFields() == 0
	}

	var bindings []model.BindingDecl
	for _, d := range directives {
		tn, err := resolveRecord(pkg, file, d.Record)
		if err != nil {
			sink.Report(diag.DirectiveInvalid(decl.Name, err.Error(), diag.PositionOf(d.Pos)))
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			sink.Report(diag.DirectiveInvalid(decl.Name, fmt.Sprintf("record %s is not a struct type", d.Record), diag.PositionOf(d.Pos)))
			continue
		}
		if named, ok := types.Unalias(tn.Type()).(*types.Named); ok && named.TypeParams().Len() > 0 {
			sink.Report(diag.DirectiveInvalid(decl.Name, fmt.Sprintf("record %s is generic", d.Record), diag.PositionOf(d.Pos)))
			continue
		}
		b := model.BindingDecl{
			Record:     tn.Name(),
			Policy:     d.Policy,
			Properties: recordProperties(st, tn.Pkg().Path(), pkg.PkgPath, pkg.Fset),
		}
		if tn.Pkg().Path() != pkg.PkgPath {
			b.Namespace = tn.Pkg().Path()
			b.PackageName = tn.Pkg().Name()
		}
		bindings = append(bindings, b)
	}
	return model.Build(decl, bindings)
}

// resolveRecord finds the type a directive names.
func resolveRecord(pkg *packages.Package, file *ast.File, ref string) (*types.TypeName, error) {
	scope := pkg.Types.Scope()
	name := ref
	if dot := strings.LastIndexByte(ref, '.'); dot >= 0 {
		qual := ref[:dot]
		name = ref[dot+1:]
		scope = importedScope(pkg, file, qual)
		if scope == nil {
			return nil, fmt.Errorf("no imported package %q for record %s", qual, ref)
		}
	}
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("unknown record type %s", ref)
	}
	if !tn.Exported() && tn.Pkg().Path() != pkg.PkgPath {
		return nil, fmt.Errorf("record type %s is not exported", ref)
	}
	return tn, nil
}

// importedScope resolves a qualifier: an import name of file first, then an
// import path used anywhere in the package.
func importedScope(pkg *packages.Package, file *ast.File, qual string) *types.Scope {
	for _, imp := range file.Imports {
		if pn := pkg.TypesInfo.PkgNameOf(imp); pn != nil && pn.Name() == qual {
			return pn.Imported().Scope()
		}
	}
	for _, p := range pkg.Types.Imports() {
		if p.Path() == qual {
			return p.Scope()
		}
	}
	return nil
}
