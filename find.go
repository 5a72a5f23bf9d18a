package gokml

import (
	"iter"
	"reflect"
)

// Query filters a FindAll traversal. The zero value matches every object.
type Query struct {
	// Type keeps only objects for which the predicate holds; see OfType.
	Type func(Object) bool
	// Attrs keeps only objects whose exported fields carry the given
	// values. Pointer fields are dereferenced before comparison.
	Attrs map[string]any
}

// OfType builds a type predicate for Query.
func OfType[T Object]() func(Object) bool {
	return func(o Object) bool {
		_, ok := o.(T)
		return ok
	}
}

// FindAll walks the object tree depth-first in document order and yields
// every object matching the query. The sequence is lazy and restartable.
func FindAll(root Object, q Query) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		walk(root, q, yield)
	}
}

// Find returns the first match of a FindAll traversal.
func Find(root Object, q Query) (Object, bool) {
	for o := range FindAll(root, q) {
		return o, true
	}
	return nil, false
}

func walk(obj Object, q Query, yield func(Object) bool) bool {
	if obj == nil {
		return true
	}
	if matches(obj, q) {
		if !yield(obj) {
			return false
		}
	}
	for _, child := range childObjects(obj) {
		if !walk(child, q, yield) {
			return false
		}
	}
	return true
}

func matches(obj Object, q Query) bool {
	if q.Type != nil && !q.Type(obj) {
		return false
	}
	if len(q.Attrs) == 0 {
		return true
	}
	v := reflect.ValueOf(obj).Elem()
	for name, want := range q.Attrs {
		f := v.FieldByName(name)
		if !f.IsValid() {
			return false
		}
		for f.Kind() == reflect.Pointer {
			if f.IsNil() {
				return false
			}
			f = f.Elem()
		}
		if !reflect.DeepEqual(f.Interface(), want) {
			return false
		}
	}
	return true
}

// childObjects collects nested Objects from exported fields and slices of
// the object, in field declaration order. Children hold no back-reference
// to parents, so the traversal cannot cycle.
func childObjects(obj Object) []Object {
	var out []Object
	v := reflect.ValueOf(obj).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		out = appendObjects(out, v.Field(i))
	}
	return out
}

func appendObjects(dst []Object, f reflect.Value) []Object {
	switch f.Kind() {
	case reflect.Slice:
		for i := 0; i < f.Len(); i++ {
			dst = appendObjects(dst, f.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if f.IsNil() {
			return dst
		}
		if o, ok := f.Interface().(Object); ok {
			dst = append(dst, o)
		}
	case reflect.Struct:
		// Embedded bases (FeatureBase and the like) hold object fields of
		// their own.
		t := f.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				dst = appendObjects(dst, f.Field(i))
			}
		}
	}
	return dst
}
