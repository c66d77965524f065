package compare_test

import (
	"iter"
	"maps"
	"slices"
	"testing"

	. "github.com/pseudomuto/primitive/pkg/compare"
	"github.com/stretchr/testify/require"
)

// ring is a Collection with a value receiver whose iteration starts at an
// offset into its items.
type ring struct {
	items []string
	start int
}

func (r ring) Len() int { return len(r.items) }

func (r ring) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range r.items {
			if !yield(r.items[(r.start+i)%len(r.items)]) {
				return
			}
		}
	}
}

// shortCollection reports one more element than it yields.
type shortCollection struct{}

func (shortCollection) Len() int { return 2 }

func (shortCollection) All() iter.Seq[any] {
	return func(yield func(any) bool) { yield(1) }
}

func TestCollections(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{name: "lists", a: ListOf(1, 2, 3), b: ListOf(1, 2, 3), expected: true},
		{name: "order matters", a: ListOf(1, 2, 3), b: ListOf(3, 2, 1), expected: false},
		{name: "sizes differ", a: ListOf(1, 2), b: ListOf(1, 2, 3), expected: false},
		{name: "empty", a: ListOf[int](), b: ListOf[string](), expected: true},
		{name: "element types differ", a: ListOf(1), b: ListOf(int64(1)), expected: false},
		{name: "nested arrays", a: ListOf([]int{1}, []int{2}), b: ListOf([]int{1}, []int{2}), expected: true},
		{name: "collection and slice", a: ListOf(1, 2), b: []int{1, 2}, expected: false},
		{name: "rotated ring", a: ring{items: []string{"b", "c", "a"}, start: 2}, b: ListOf("a", "b", "c"), expected: true},
		{name: "ring pointer", a: &ring{items: []string{"a"}}, b: ring{items: []string{"a"}}, expected: true},
		{name: "rings", a: ring{items: []string{"a", "b"}}, b: ring{items: []string{"a", "b"}, start: 1}, expected: false},
		{name: "yields fewer than Len", a: shortCollection{}, b: ListOf(1, 2), expected: false},
		{name: "in slices", a: []any{ListOf("x")}, b: []any{ListOf("x")}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Equal(tt.a, tt.b))
			require.Equal(t, tt.expected, Equal(tt.b, tt.a), "not symmetric")
		})
	}
}

func TestCollectionOf(t *testing.T) {
	set := map[string]bool{"only": true}
	c := CollectionOf(len(set), maps.Keys(set))

	require.Equal(t, 1, c.Len())
	require.Equal(t, []any{"only"}, slices.Collect(c.All()))
	require.True(t, Equal(c, ListOf("only")))
	require.True(t, EqualFold(c, ListOf("ONLY")))
}

func TestListOf_StopsEarly(t *testing.T) {
	var seen []any
	for v := range ListOf(1, 2, 3).All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}

	require.Equal(t, []any{1, 2}, seen)
}
