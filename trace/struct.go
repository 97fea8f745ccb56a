package trace

import (
	"fmt"
	"reflect"
	"strings"
)

// StructRule builds a rule decomposing exported fields of a struct
// type in declaration order. Field behavior follows the `ptree` tag:
// `ptree:"-"` skips the field, `ptree:"name"` renames it.
//
// Struct types are opaque leaves unless a rule is registered for
// them, so typical use is
//
//	trace.MustRegister(reflect.TypeOf(Point{}), trace.StructRule(reflect.TypeOf(Point{})))
func StructRule(t reflect.Type) Rule {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("StructRule requires a struct type, got %s", t))
	}
	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("ptree"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, structField{name: name, index: i})
	}
	return &structRule{typ: t, fields: fields}
}

type structField struct {
	name  string
	index int
}

type structRule struct {
	typ    reflect.Type
	fields []structField
}

func (r *structRule) Trace(v any) ([]Child, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Type() != r.typ {
		return nil, fmt.Errorf("struct rule for %s got %s", r.typ, rv.Type())
	}
	res := make([]Child, len(r.fields))
	for i, f := range r.fields {
		res[i] = Child{
			Name:  f.name,
			Index: i,
			Value: rv.Field(f.index).Interface(),
		}
	}
	return res, nil
}

func (r *structRule) Build(proto any, children []any) (any, error) {
	if len(children) != len(r.fields) {
		return nil, fmt.Errorf("struct %s has %d fields, got %d children", r.typ, len(r.fields), len(children))
	}
	ok := true
	for i, f := range r.fields {
		if children[i] == nil {
			continue
		}
		if !reflect.TypeOf(children[i]).AssignableTo(r.typ.Field(f.index).Type) {
			ok = false
			break
		}
	}
	if !ok {
		res := make(map[string]any, len(children))
		for i, f := range r.fields {
			res[f.name] = children[i]
		}
		return res, nil
	}
	rv := reflect.New(r.typ).Elem()
	if pv := reflect.ValueOf(proto); pv.Kind() == reflect.Struct {
		rv.Set(pv) // carry unexported and skipped fields
	} else if pv.Kind() == reflect.Pointer && !pv.IsNil() {
		rv.Set(pv.Elem())
	}
	for i, f := range r.fields {
		setElem(rv.Field(f.index), children[i])
	}
	if reflect.TypeOf(proto).Kind() == reflect.Pointer {
		p := reflect.New(r.typ)
		p.Elem().Set(rv)
		return p.Interface(), nil
	}
	return rv.Interface(), nil
}
