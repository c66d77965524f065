package compare

import "reflect"

// Shape classifies a value for structural comparison. Values of different
// shapes are never equal.
type Shape uint8

const (
	// ShapeNil is the shape of nil: untyped nil as well as nil pointers,
	// slices, maps, interfaces, funcs and channels.
	ShapeNil Shape = iota
	// ShapeScalar covers everything that is not a container: numbers,
	// strings, booleans, structs and types with their own Equal method.
	ShapeScalar
	// ShapeArray covers Go arrays and slices. Nested slices model
	// multi-dimensional arrays.
	ShapeArray
	// ShapeCollection covers values implementing Collection.
	ShapeCollection
	// ShapeMap covers Go maps.
	ShapeMap
)

var shapeNames = [...]string{
	ShapeNil:        "nil",
	ShapeScalar:     "scalar",
	ShapeArray:      "array",
	ShapeCollection: "collection",
	ShapeMap:        "map",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}

	return "unknown"
}

// ShapeOf returns the shape Equal, ValueEqual and EqualFold assign to v.
// Pointers are looked through, so a pointer to a slice has ShapeArray.
func ShapeOf(v any) Shape {
	rv := unbox(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ShapeNil
	}

	return shapeOf(rv.Type())
}

func shapeOf(t reflect.Type) Shape {
	switch {
	case t.Implements(collectionType):
		return ShapeCollection
	case hasEqualMethod(t):
		return ShapeScalar
	}

	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		return ShapeArray
	case reflect.Map:
		return ShapeMap
	}

	return ShapeScalar
}

// unbox follows interfaces and pointers down to the value they hold. Pointers
// whose type is a Collection or has an Equal method are kept as they are. The
// zero Value is returned for anything nil.
func unbox(v reflect.Value) reflect.Value {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
			continue
		case reflect.Pointer:
			if v.IsNil() {
				return reflect.Value{}
			}
			if special(v.Type()) {
				return v
			}
			v = v.Elem()
			continue
		}

		if nilable(v.Kind()) && v.IsNil() {
			return reflect.Value{}
		}

		return v
	}

	return v
}

// nilCheck reports whether two values of the same type are equal because at
// least one of them is nil, and whether the caller needs to keep comparing.
func nilCheck(a, b reflect.Value) (equal bool, needsMoreChecks bool) {
	if !nilable(a.Kind()) {
		return false, true
	}

	aNil, bNil := a.IsNil(), b.IsNil()
	if aNil || bNil {
		return aNil && bNil, false
	}

	return false, true
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}

	return false
}

func special(t reflect.Type) bool {
	return t.Implements(collectionType) || hasEqualMethod(t)
}
