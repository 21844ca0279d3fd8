package guitree

import "strings"

// Refs is the reference table produced by one [Kit.Build] call: a nested
// mapping from caller-chosen dotted paths to the elements built for them.
// Intermediate path segments become nested Refs maps, created on demand.
// The table is owned by the caller; guitree never reads it back.
type Refs map[string]any

// Element navigates the table along a dotted path and returns the element
// stored at its leaf.
func (r Refs) Element(path string) (Element, bool) {
	cur := r
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		if i == len(segs)-1 {
			e, ok := v.(Element)
			return e, ok
		}
		cur, ok = v.(Refs)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Table navigates to a nested Refs map, for callers that want to hand a
// subtree of references to another component.
func (r Refs) Table(path string) (Refs, bool) {
	cur := r
	for _, seg := range strings.Split(path, ".") {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		cur, ok = v.(Refs)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// put stores an element at the leaf of a dotted path, creating intermediate
// maps on demand. A non-map value in the way is replaced; last write wins,
// though well-formed input never duplicates paths.
func (r Refs) put(path string, e Element) {
	cur := r
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(Refs)
		if !ok {
			next = Refs{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = e
}
