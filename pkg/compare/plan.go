package compare

import (
	"reflect"
	"sync"
)

// equalFunc compares two values of the same type.
type equalFunc func(a, b reflect.Value, o *options) bool

// plans caches one equalFunc per type so that the shape of a type is decided
// once, and recursive comparisons of homogeneous elements reuse the element
// plan instead of inspecting every element's type again.
var plans sync.Map // map[reflect.Type]equalFunc

func planFor(t reflect.Type) equalFunc {
	if f, ok := plans.Load(t); ok {
		return f.(equalFunc)
	}

	// Recursive types (type Tree []Tree) reach this type again while its
	// plan is being built. Park them on an indirect plan until it's ready.
	var (
		wg sync.WaitGroup
		f  equalFunc
	)
	wg.Add(1)
	fi, loaded := plans.LoadOrStore(t, equalFunc(func(a, b reflect.Value, o *options) bool {
		wg.Wait()
		return f(a, b, o)
	}))
	if loaded {
		return fi.(equalFunc)
	}

	f = newPlan(t)
	wg.Done()
	plans.Store(t, f)
	return f
}

func newPlan(t reflect.Type) equalFunc {
	switch {
	case t.Implements(collectionType):
		return collectionPlan(t)
	case hasEqualMethod(t):
		return equalMethodPlan(t)
	}

	return kindPlan(t)
}

func kindPlan(t reflect.Type) equalFunc {
	switch t.Kind() {
	case reflect.Bool:
		return func(a, b reflect.Value, _ *options) bool { return a.Bool() == b.Bool() }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value, _ *options) bool { return a.Int() == b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value, _ *options) bool { return a.Uint() == b.Uint() }
	case reflect.Float32:
		return func(a, b reflect.Value, o *options) bool { return equalFloat32s(a.Float(), b.Float(), o) }
	case reflect.Float64:
		return func(a, b reflect.Value, o *options) bool { return equalFloats(a.Float(), b.Float(), o) }
	case reflect.Complex64:
		return func(a, b reflect.Value, o *options) bool {
			ac, bc := a.Complex(), b.Complex()
			return equalFloat32s(real(ac), real(bc), o) && equalFloat32s(imag(ac), imag(bc), o)
		}
	case reflect.Complex128:
		return func(a, b reflect.Value, o *options) bool {
			ac, bc := a.Complex(), b.Complex()
			return equalFloats(real(ac), real(bc), o) && equalFloats(imag(ac), imag(bc), o)
		}
	case reflect.String:
		return stringPlan
	case reflect.Array:
		return arrayPlan(t)
	case reflect.Slice:
		return slicePlan(t)
	case reflect.Map:
		return mapPlan(t)
	case reflect.Struct:
		return structPlan(t)
	case reflect.Pointer:
		return pointerPlan(t)
	case reflect.Interface:
		return equalValues
	case reflect.Chan, reflect.UnsafePointer, reflect.Func:
		// Funcs have no identity; their code pointer is the closest thing.
		return func(a, b reflect.Value, _ *options) bool { return a.Pointer() == b.Pointer() }
	}

	return func(reflect.Value, reflect.Value, *options) bool { return false }
}

func stringPlan(a, b reflect.Value, o *options) bool {
	as, bs := a.String(), b.String()
	if as == bs {
		return true
	}

	return o.mode == folded && o.fold(as) == o.fold(bs)
}

func arrayPlan(t reflect.Type) equalFunc {
	elem := planFor(t.Elem())
	n := t.Len()

	return func(a, b reflect.Value, o *options) bool {
		for i := range n {
			if !elem(a.Index(i), b.Index(i), o) {
				return false
			}
		}
		return true
	}
}

func slicePlan(t reflect.Type) equalFunc {
	elem := planFor(t.Elem())

	return func(a, b reflect.Value, o *options) bool {
		if eq, needsMoreChecks := nilCheck(a, b); !needsMoreChecks {
			return eq
		}
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}

		for i := range a.Len() {
			if !elem(a.Index(i), b.Index(i), o) {
				return false
			}
		}
		return true
	}
}

func mapPlan(t reflect.Type) equalFunc {
	elem := planFor(t.Elem())
	key := t.Key()

	return func(a, b reflect.Value, o *options) bool {
		if eq, needsMoreChecks := nilCheck(a, b); !needsMoreChecks {
			return eq
		}
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}

		if !exactKeys(key, o) {
			return equalMaps(a, b, o)
		}

		return equalMapsByKey(a, b, func(av, bv reflect.Value) bool {
			return elem(av, bv, o)
		})
	}
}

func pointerPlan(t reflect.Type) equalFunc {
	elem := planFor(t.Elem())

	return func(a, b reflect.Value, o *options) bool {
		if eq, needsMoreChecks := nilCheck(a, b); !needsMoreChecks {
			return eq
		}
		if a.Pointer() == b.Pointer() {
			return true
		}

		return elem(a.Elem(), b.Elem(), o)
	}
}

func structPlan(t reflect.Type) equalFunc {
	fields := make([]equalFunc, t.NumField())
	for i := range fields {
		fields[i] = planFor(t.Field(i).Type)
	}

	return func(a, b reflect.Value, o *options) bool {
		for i, field := range fields {
			if !field(a.Field(i), b.Field(i), o) {
				return false
			}
		}
		return true
	}
}

func collectionPlan(t reflect.Type) equalFunc {
	fallback := kindPlan(t)

	return func(a, b reflect.Value, o *options) bool {
		if eq, needsMoreChecks := nilCheck(a, b); !needsMoreChecks {
			return eq
		}
		// Values read through unexported fields can't be turned back into
		// interfaces, so compare their representation instead.
		if !a.CanInterface() || !b.CanInterface() {
			return fallback(a, b, o)
		}

		return equalCollections(a.Interface().(Collection), b.Interface().(Collection), o)
	}
}

func equalMethodPlan(t reflect.Type) equalFunc {
	method, _ := t.MethodByName("Equal")
	fallback := kindPlan(t)

	return func(a, b reflect.Value, o *options) bool {
		if eq, needsMoreChecks := nilCheck(a, b); !needsMoreChecks {
			return eq
		}
		if !a.CanInterface() || !b.CanInterface() {
			return fallback(a, b, o)
		}

		return method.Func.Call([]reflect.Value{a, b})[0].Bool()
	}
}
