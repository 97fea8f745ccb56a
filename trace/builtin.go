package trace

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// sliceRule covers slices and arrays. Children are positional, in
// index order.
type sliceRule struct{}

func (sliceRule) Trace(v any) ([]Child, error) {
	rv := reflect.ValueOf(v)
	n := rv.Len()
	res := make([]Child, n)
	for i := 0; i < n; i++ {
		res[i] = Child{Index: i, Value: rv.Index(i).Interface()}
	}
	return res, nil
}

func (sliceRule) Build(proto any, children []any) (any, error) {
	t := reflect.TypeOf(proto)
	n := len(children)
	switch t.Kind() {
	case reflect.Slice:
	case reflect.Array:
		if t.Len() != n {
			return nil, fmt.Errorf("array %s cannot hold %d children", t, n)
		}
	default:
		return nil, fmt.Errorf("slice rule cannot build %s", t)
	}
	elem := t.Elem()
	if !holdsAll(elem, children) {
		// generic fallback, used when leaves changed type
		// (e.g. boolean mask construction)
		res := make([]any, n)
		copy(res, children)
		return res, nil
	}
	var rv reflect.Value
	if t.Kind() == reflect.Array {
		rv = reflect.New(t).Elem()
	} else {
		rv = reflect.MakeSlice(t, n, n)
	}
	for i, c := range children {
		setElem(rv.Index(i), c)
	}
	return rv.Interface(), nil
}

// mapRule covers maps. Children are ordered by sorted key so that
// trace order is deterministic; the original key rides in Child.Meta.
type mapRule struct{}

func (mapRule) Trace(v any) ([]Child, error) {
	rv := reflect.ValueOf(v)
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keyString(keys[i]) < keyString(keys[j])
	})
	res := make([]Child, len(keys))
	for i, k := range keys {
		res[i] = Child{
			Name:  keyString(k),
			Index: i,
			Meta:  k.Interface(),
			Value: rv.MapIndex(k).Interface(),
		}
	}
	return res, nil
}

func (mapRule) Build(proto any, children []any) (any, error) {
	rv := reflect.ValueOf(proto)
	t := rv.Type()
	if t.Kind() != reflect.Map {
		return nil, fmt.Errorf("map rule cannot build %s", t)
	}
	if rv.Len() != len(children) {
		return nil, fmt.Errorf("map %s has %d entries, got %d children", t, rv.Len(), len(children))
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keyString(keys[i]) < keyString(keys[j])
	})
	if !holdsAll(t.Elem(), children) {
		res := make(map[string]any, len(children))
		for i, k := range keys {
			res[keyString(k)] = children[i]
		}
		return res, nil
	}
	res := reflect.MakeMapWithSize(t, len(children))
	for i, k := range keys {
		ev := reflect.New(t.Elem()).Elem()
		setElem(ev, children[i])
		res.SetMapIndex(k, ev)
	}
	return res.Interface(), nil
}

func keyString(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	default:
		return fmt.Sprint(k.Interface())
	}
}

func holdsAll(elem reflect.Type, children []any) bool {
	if elem.Kind() == reflect.Interface && elem.NumMethod() == 0 {
		return true
	}
	for _, c := range children {
		if c == nil {
			// absent markers only fit interface elements; typed
			// containers take the zero value instead
			continue
		}
		if !reflect.TypeOf(c).AssignableTo(elem) {
			return false
		}
	}
	return true
}

func setElem(dst reflect.Value, v any) {
	if v == nil {
		dst.SetZero()
		return
	}
	dst.Set(reflect.ValueOf(v))
}
