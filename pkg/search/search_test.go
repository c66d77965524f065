package search_test

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/pseudomuto/primitive/pkg/check"
	. "github.com/pseudomuto/primitive/pkg/search"
	"github.com/stretchr/testify/require"
)

func TestLowerBound(t *testing.T) {
	s := []int{1, 3, 3, 3, 5}

	tests := []struct {
		name       string
		begin, end int
		value      int
		expected   int
	}{
		{name: "first of duplicates", begin: 0, end: 5, value: 3, expected: 1},
		{name: "smaller than all", begin: 0, end: 5, value: 0, expected: 0},
		{name: "greater than all", begin: 0, end: 5, value: 9, expected: 5},
		{name: "between elements", begin: 0, end: 5, value: 4, expected: 4},
		{name: "exact first", begin: 0, end: 5, value: 1, expected: 0},
		{name: "exact last", begin: 0, end: 5, value: 5, expected: 4},
		{name: "sub range", begin: 2, end: 4, value: 3, expected: 2},
		{name: "sub range all less", begin: 0, end: 3, value: 5, expected: 3},
		{name: "empty range", begin: 2, end: 2, value: 3, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := LowerBound(s, tt.begin, tt.end, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, i)
		})
	}
}

func TestUpperBound(t *testing.T) {
	s := []int{1, 3, 3, 3, 5}

	tests := []struct {
		name       string
		begin, end int
		value      int
		expected   int
	}{
		{name: "past duplicates", begin: 0, end: 5, value: 3, expected: 4},
		{name: "smaller than all", begin: 0, end: 5, value: 0, expected: 0},
		{name: "greater than all", begin: 0, end: 5, value: 9, expected: 5},
		{name: "between elements", begin: 0, end: 5, value: 2, expected: 1},
		{name: "exact last", begin: 0, end: 5, value: 5, expected: 5},
		{name: "sub range", begin: 1, end: 3, value: 3, expected: 3},
		{name: "empty range", begin: 4, end: 4, value: 0, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := UpperBound(s, tt.begin, tt.end, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, i)
		})
	}
}

func TestBounds_InvalidRange(t *testing.T) {
	s := []string{"a", "b", "c"}

	tests := []struct {
		name       string
		begin, end int
	}{
		{name: "negative begin", begin: -1, end: 2},
		{name: "begin after end", begin: 2, end: 1},
		{name: "end past length", begin: 0, end: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LowerBound(s, tt.begin, tt.end, "b")
			require.ErrorIs(t, err, check.ErrInvalidArgument)

			_, err = UpperBound(s, tt.begin, tt.end, "b")
			require.ErrorIs(t, err, check.ErrInvalidArgument)

			_, _, err = EqualRange(s, tt.begin, tt.end, "b")
			require.ErrorIs(t, err, check.ErrInvalidArgument)

			_, err = IsSorted(s, tt.begin, tt.end)
			require.ErrorIs(t, err, check.ErrInvalidArgument)
		})
	}
}

func TestBounds_EmptySequence(t *testing.T) {
	i, err := LowerBound([]float64{}, 0, 0, 1.5)
	require.NoError(t, err)
	require.Equal(t, 0, i)

	i, err = UpperBound[float64](nil, 0, 0, 1.5)
	require.NoError(t, err)
	require.Equal(t, 0, i)
}

func TestBounds_Strings(t *testing.T) {
	s := []string{"apple", "banana", "banana", "cherry"}

	lo, err := LowerBound(s, 0, len(s), "banana")
	require.NoError(t, err)
	require.Equal(t, 1, lo)

	hi, err := UpperBound(s, 0, len(s), "banana")
	require.NoError(t, err)
	require.Equal(t, 3, hi)

	lo, err = LowerBound(s, 0, len(s), "blueberry")
	require.NoError(t, err)
	require.Equal(t, 3, lo)
}

func TestBounds_FloatsWithNaN(t *testing.T) {
	// cmp.Less sorts NaN ahead of every other value.
	s := []float64{math.NaN(), -1, 0, 2.5}

	lo, err := LowerBound(s, 0, len(s), math.NaN())
	require.NoError(t, err)
	require.Equal(t, 0, lo)

	hi, err := UpperBound(s, 0, len(s), math.NaN())
	require.NoError(t, err)
	require.Equal(t, 1, hi)

	lo, err = LowerBound(s, 0, len(s), 0)
	require.NoError(t, err)
	require.Equal(t, 2, lo)
}

func TestBoundsFunc(t *testing.T) {
	type event struct {
		name string
		at   int
	}

	events := []event{{"boot", 1}, {"login", 4}, {"click", 4}, {"logout", 9}}
	byTime := func(e event, at int) int { return e.at - at }

	lo, err := LowerBoundFunc(events, 0, len(events), 4, byTime)
	require.NoError(t, err)
	require.Equal(t, 1, lo)

	hi, err := UpperBoundFunc(events, 0, len(events), 4, byTime)
	require.NoError(t, err)
	require.Equal(t, 3, hi)

	_, err = LowerBoundFunc(events, 0, 5, 4, byTime)
	require.ErrorIs(t, err, check.ErrInvalidArgument)

	_, err = UpperBoundFunc(events, 3, 2, 4, byTime)
	require.ErrorIs(t, err, check.ErrInvalidArgument)
}

func TestCompare(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2 * time.Hour)}

	lo, err := LowerBoundFunc(times, 0, len(times), base.Add(time.Hour), Compare[time.Time])
	require.NoError(t, err)
	require.Equal(t, 1, lo)

	hi, err := UpperBoundFunc(times, 0, len(times), base.Add(time.Hour), Compare[time.Time])
	require.NoError(t, err)
	require.Equal(t, 3, hi)
}

func TestEqualRange(t *testing.T) {
	s := []int{1, 3, 3, 3, 5}

	lo, hi, err := EqualRange(s, 0, len(s), 3)
	require.NoError(t, err)
	require.Equal(t, 1, lo)
	require.Equal(t, 4, hi)

	lo, hi, err = EqualRange(s, 0, len(s), 4)
	require.NoError(t, err)
	require.Equal(t, 4, lo)
	require.Equal(t, 4, hi)

	lo, hi, err = EqualRangeFunc(s, 0, len(s), "3", func(e int, key string) int {
		return strings.Compare(string(rune('0'+e)), key)
	})
	require.NoError(t, err)
	require.Equal(t, 1, lo)
	require.Equal(t, 4, hi)
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name       string
		s          []int
		begin, end int
		expected   bool
	}{
		{name: "sorted", s: []int{1, 2, 2, 3}, begin: 0, end: 4, expected: true},
		{name: "empty", s: []int{}, begin: 0, end: 0, expected: true},
		{name: "single", s: []int{7}, begin: 0, end: 1, expected: true},
		{name: "inversion", s: []int{1, 3, 2}, begin: 0, end: 3, expected: false},
		{name: "inversion outside range", s: []int{9, 1, 2, 3, 0}, begin: 1, end: 4, expected: true},
		{name: "inversion at range edge", s: []int{1, 2, 3, 0}, begin: 1, end: 4, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted, err := IsSorted(tt.s, tt.begin, tt.end)
			require.NoError(t, err)
			require.Equal(t, tt.expected, sorted)
		})
	}
}

func TestBounds_Properties(t *testing.T) {
	for range 200 {
		s := randomSorted(randomdata.Number(0, 40))
		n := len(s)
		v := randomdata.Number(-2, 22)

		lo, err := LowerBound(s, 0, n, v)
		require.NoError(t, err)
		hi, err := UpperBound(s, 0, n, v)
		require.NoError(t, err)

		require.LessOrEqual(t, lo, hi)
		for i := lo; i < hi; i++ {
			require.Equal(t, v, s[i])
		}
		for i := range lo {
			require.Less(t, s[i], v)
		}
		for i := hi; i < n; i++ {
			require.Greater(t, s[i], v)
		}

		require.Equal(t, lo == n, allLess(s, v))
		require.Equal(t, hi == 0, allGreater(s, v))

		// Agrees with the standard library for the full range.
		want, _ := slices.BinarySearch(s, v)
		require.Equal(t, want, lo)

		eqLo, eqHi, err := EqualRange(s, 0, n, v)
		require.NoError(t, err)
		require.Equal(t, lo, eqLo)
		require.Equal(t, hi, eqHi)

		if n > 0 {
			begin := randomdata.Number(0, n)
			end := randomdata.Number(begin, n+1)

			i, err := LowerBound(s, begin, end, v)
			require.NoError(t, err)
			require.GreaterOrEqual(t, i, begin)
			require.LessOrEqual(t, i, end)

			j, err := UpperBound(s, begin, end, v)
			require.NoError(t, err)
			require.GreaterOrEqual(t, j, i)
			require.LessOrEqual(t, j, end)
		}
	}
}

func randomSorted(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = randomdata.Number(0, 20)
	}
	slices.Sort(s)
	return s
}

func allLess(s []int, v int) bool {
	for _, e := range s {
		if e >= v {
			return false
		}
	}
	return true
}

func allGreater(s []int, v int) bool {
	for _, e := range s {
		if e <= v {
			return false
		}
	}
	return true
}
