// internal/dashboard/collection.go
package dashboard

// Entity is anything that lives in a collection under a stable id.
type Entity interface {
	EntityID() string
}

// The reducers below are the only way session collections change. They are
// pure: the input slice is never mutated, and element order is preserved
// except where the operation itself defines a position.

// prepend returns the collection with e at the front (newest-first lists).
// Any existing element with the same id is dropped first, so a repeated
// insert cannot introduce a duplicate.
func prepend[T Entity](prev []T, e T) []T {
	next := make([]T, 0, len(prev)+1)
	next = append(next, e)
	for _, el := range prev {
		if el.EntityID() != e.EntityID() {
			next = append(next, el)
		}
	}
	return next
}

// appendItem returns the collection with e at the back (insertion-order
// lists: team roster, chat).
func appendItem[T Entity](prev []T, e T) []T {
	next := make([]T, 0, len(prev)+1)
	for _, el := range prev {
		if el.EntityID() != e.EntityID() {
			next = append(next, el)
		}
	}
	return append(next, e)
}

// replaceByID swaps the element whose id matches e, keeping every other
// element in place. If no element matches, the collection is returned
// unchanged (copied).
func replaceByID[T Entity](prev []T, e T) []T {
	next := make([]T, len(prev))
	for i, el := range prev {
		if el.EntityID() == e.EntityID() {
			next[i] = e
		} else {
			next[i] = el
		}
	}
	return next
}

// removeByID filters out the element with the given id.
func removeByID[T Entity](prev []T, id string) []T {
	next := make([]T, 0, len(prev))
	for _, el := range prev {
		if el.EntityID() != id {
			next = append(next, el)
		}
	}
	return next
}

// containsID reports whether any element has the given id.
func containsID[T Entity](coll []T, id string) bool {
	for _, el := range coll {
		if el.EntityID() == id {
			return true
		}
	}
	return false
}

// findByID returns a pointer into coll for the element with the given id,
// or nil. Callers that hold the pointer across reducer calls get a stale
// copy, which is fine for read-only lookups.
func findByID[T Entity](coll []T, id string) *T {
	for i := range coll {
		if coll[i].EntityID() == id {
			return &coll[i]
		}
	}
	return nil
}
