package compare

import (
	"iter"
	"reflect"
	"slices"
)

// Collection is an ordered or unordered group of values with a known size.
//
// Collections are compared pairwise in iteration order, so two sets holding
// the same members are only equal when they iterate them in the same order.
type Collection interface {
	Len() int
	All() iter.Seq[any]
}

// Equaler is implemented by types that define their own equality, such as
// time.Time. Any type with an Equal method taking its own type and returning
// bool is honoured; it does not need to name this interface.
type Equaler[T any] interface {
	Equal(other T) bool
}

var collectionType = reflect.TypeFor[Collection]()

type seqCollection struct {
	n   int
	seq iter.Seq[any]
}

func (c *seqCollection) Len() int           { return c.n }
func (c *seqCollection) All() iter.Seq[any] { return c.seq }

// CollectionOf wraps a sequence of n values as a Collection.
//
// Example:
//
//	keys := compare.CollectionOf(len(set), maps.Keys(set))
func CollectionOf[T any](n int, seq iter.Seq[T]) Collection {
	return &seqCollection{
		n: n,
		seq: func(yield func(any) bool) {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// ListOf returns a Collection iterating items in order.
func ListOf[T any](items ...T) Collection {
	return CollectionOf(len(items), slices.Values(items))
}

func equalCollections(a, b Collection, o *options) bool {
	if a.Len() != b.Len() {
		return false
	}

	next, stop := iter.Pull(b.All())
	defer stop()

	for av := range a.All() {
		bv, ok := next()
		if !ok || !equalValues(reflect.ValueOf(av), reflect.ValueOf(bv), o) {
			return false
		}
	}

	_, more := next()
	return !more
}

var boolType = reflect.TypeFor[bool]()

func hasEqualMethod(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}

	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}

	mt := m.Type
	return mt.NumIn() == 2 && mt.In(1) == t && mt.NumOut() == 1 && mt.Out(0) == boolType
}
