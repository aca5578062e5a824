package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/calumari/propset/internal/model"
)

// modelFile is the YAML form of a declaration snapshot. It lets a build
// describe containers and records explicitly instead of scanning sources.
type modelFile struct {
	Package     string          `yaml:"package" validate:"required,goident"`
	PackagePath string          `yaml:"packagePath"`
	Containers  []containerSpec `yaml:"containers" validate:"required,min=1,dive"`
}

type containerSpec struct {
	Name     string        `yaml:"name" validate:"required,goident"`
	Exported *bool         `yaml:"exported"` // defaults to the case of Name
	Partial  *bool         `yaml:"partial"`  // defaults to true
	Static   *bool         `yaml:"static"`   // defaults to true
	Bindings []bindingSpec `yaml:"bindings" validate:"dive"`
}

type bindingSpec struct {
	Record      string         `yaml:"record" validate:"required,goident"`
	Namespace   string         `yaml:"namespace"`
	PackageName string         `yaml:"packageName" validate:"omitempty,goident"`
	Unknown     *model.Policy  `yaml:"unknown"`
	Properties  []propertySpec `yaml:"properties" validate:"dive"`
}

type propertySpec struct {
	Name       string `yaml:"name" validate:"required,goident"`
	Type       string `yaml:"type" validate:"required"`
	Underlying string `yaml:"underlying"` // basic type under a named Type
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// names end up verbatim in generated source
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// loadModelFile reads and validates a YAML model and builds its containers.
func loadModelFile(name string) ([]*model.Container, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parseModelFile(name, src)
}

func parseModelFile(name string, src []byte) ([]*model.Container, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	var mf modelFile
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := validate.Struct(&mf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("%s: %s fails %q", name, fe.Namespace(), fe.Tag())
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var out []*model.Container
	for _, cs := range mf.Containers {
		decl := model.ContainerDecl{
			Name:        cs.Name,
			Exported:    boolOr(cs.Exported, token.IsExported(cs.Name)),
			Package:     mf.Package,
			PackagePath: mf.PackagePath,
			Partial:     boolOr(cs.Partial, true),
			Static:      boolOr(cs.Static, true),
			Pos:         token.Position{Filename: name},
		}
		var bindings []model.BindingDecl
		for _, bs := range cs.Bindings {
			b := model.BindingDecl{Record: bs.Record, Policy: bs.Unknown}
			if bs.Namespace != "" && bs.Namespace != mf.PackagePath {
				b.Namespace = bs.Namespace
				b.PackageName = bs.PackageName
				if b.PackageName == "" {
					b.PackageName, _, _ = strings.Cut(path.Base(bs.Namespace), ".")
				}
				if !token.IsIdentifier(b.PackageName) {
					return nil, fmt.Errorf("%s: %s: namespace %s needs a packageName", name, bs.Record, bs.Namespace)
				}
			}
			for _, ps := range bs.Properties {
				ref, err := propertyType(ps)
				if err != nil {
					return nil, fmt.Errorf("%s: %s.%s: %w", name, bs.Record, ps.Name, err)
				}
				b.Properties = append(b.Properties, model.Property{Name: ps.Name, Type: ref, Pos: token.Position{Filename: name}})
			}
			bindings = append(bindings, b)
		}
		out = append(out, model.Build(decl, bindings))
	}
	return out, nil
}

// propertyType parses the type of a property and attaches the declared
// underlying type to the named type it refers to, looking through a pointer.
func propertyType(ps propertySpec) (model.TypeRef, error) {
	ref, err := model.ParseTypeRef(ps.Type)
	if err != nil {
		return model.TypeRef{}, err
	}
	if ps.Underlying == "" {
		return ref, nil
	}
	under, err := model.ParseTypeRef(ps.Underlying)
	if err != nil {
		return model.TypeRef{}, fmt.Errorf("underlying: %w", err)
	}
	if under.Kind != model.KindBasic {
		return model.TypeRef{}, fmt.Errorf("underlying type %s is not a basic type", ps.Underlying)
	}
	target := &ref
	if target.Kind == model.KindPointer {
		target = target.Elem
	}
	if target.Kind != model.KindNamed {
		return model.TypeRef{}, fmt.Errorf("underlying given for unnamed type %s", ps.Type)
	}
	target.Underlying = &under
	return ref, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
