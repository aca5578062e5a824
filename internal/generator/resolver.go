package generator

import (
	"go/token"
	"go/types"

	"github.com/calumari/propset/internal/model"
)

// typeRefOf converts a go/types type into the model's descriptor. Only the
// shapes the classifier or diagnostics care about are kept apart; the rest
// become KindOther with their Go spelling.
func typeRefOf(t types.Type) model.TypeRef {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return model.Basic(types.Typ[tt.Kind()].Name())
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil || tt.TypeArgs().Len() > 0 {
			return model.TypeRef{Kind: model.KindOther, Name: types.TypeString(tt, byName)}
		}
		var under *model.TypeRef
		if b, ok := tt.Underlying().(*types.Basic); ok {
			ref := model.Basic(types.Typ[b.Kind()].Name())
			under = &ref
		}
		return model.Named(obj.Pkg().Path(), obj.Pkg().Name(), obj.Name(), under)
	case *types.Pointer:
		return model.PointerTo(typeRefOf(tt.Elem()))
	case *types.Slice:
		elem := typeRefOf(tt.Elem())
		return model.TypeRef{Kind: model.KindSlice, Elem: &elem}
	case *types.Array:
		elem := typeRefOf(tt.Elem())
		return model.TypeRef{Kind: model.KindArray, Len: tt.Len(), Elem: &elem}
	case *types.Map:
		key, elem := typeRefOf(tt.Key()), typeRefOf(tt.Elem())
		return model.TypeRef{Kind: model.KindMap, Key: &key, Elem: &elem}
	}
	return model.TypeRef{Kind: model.KindOther, Name: types.TypeString(t, byName)}
}

func byName(p *types.Package) string { return p.Name() }

// recordProperties lists the fields of st that code in pkgPath can assign,
// in declaration order. Embedded and blank fields are left out, as are
// unexported fields of records from other packages.
func recordProperties(st *types.Struct, recordPkg, pkgPath string, fset *token.FileSet) []model.Property {
	var props []model.Property
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() || f.Name() == "_" {
			continue
		}
		if !f.Exported() && recordPkg != pkgPath {
			continue
		}
		props = append(props, model.Property{
			Name: f.Name(),
			Type: typeRefOf(f.Type()),
			Pos:  fset.Position(f.Pos()),
		})
	}
	return props
}
