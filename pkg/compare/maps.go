package compare

import "reflect"

// equalMaps reports whether every key of a can be paired with a distinct key
// of b such that both the keys and their values are equal.
//
// Under ValueEqual, EqualFold or with boxed keys a key of a can equal several
// keys of b, so the pairing is found as a bipartite matching. The result never
// depends on map iteration order.
func equalMaps(a, b reflect.Value, o *options) bool {
	if a.Len() != b.Len() {
		return false
	}

	if key := a.Type().Key(); key == b.Type().Key() && exactKeys(key, o) {
		return equalMapsByKey(a, b, func(av, bv reflect.Value) bool {
			return equalValues(av, bv, o)
		})
	}

	aKeys, bKeys := a.MapKeys(), b.MapKeys()
	candidates := make([][]int, len(aKeys))
	for i, ak := range aKeys {
		av := a.MapIndex(ak)
		for j, bk := range bKeys {
			if equalValues(ak, bk, o) && equalValues(av, b.MapIndex(bk), o) {
				candidates[i] = append(candidates[i], j)
			}
		}

		if len(candidates[i]) == 0 {
			return false
		}
	}

	owner := make([]int, len(bKeys))
	for j := range owner {
		owner[j] = -1
	}

	for i := range aKeys {
		if !claim(i, candidates, owner, make([]bool, len(bKeys))) {
			return false
		}
	}

	return true
}

// claim pairs a's key i with one of its candidates, moving earlier pairings
// to another candidate when needed (an augmenting path).
func claim(i int, candidates [][]int, owner []int, seen []bool) bool {
	for _, j := range candidates[i] {
		if seen[j] {
			continue
		}
		seen[j] = true

		if owner[j] == -1 || claim(owner[j], candidates, owner, seen) {
			owner[j] = i
			return true
		}
	}

	return false
}

// equalMapsByKey compares maps with the same key type by direct lookup.
func equalMapsByKey(a, b reflect.Value, equal func(av, bv reflect.Value) bool) bool {
	iter := a.MapRange()
	for iter.Next() {
		bv := b.MapIndex(iter.Key())
		if !bv.IsValid() || !equal(iter.Value(), bv) {
			return false
		}
	}

	return true
}

// exactKeys reports whether two keys of type t are equal under o exactly when
// they are ==. Only then does a lookup find every candidate for a key.
func exactKeys(t reflect.Type, o *options) bool {
	if special(t) {
		return false
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.String:
		return o.mode != folded
	}

	return false
}
