package entities

// Relationship slices behave as ordered sets: membership is unique, iteration
// order is insertion order so read paths stay deterministic.

// HasID reports whether id is present in ids
func HasID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// AddID appends id if absent and reports whether the slice changed
func AddID(ids *[]string, id string) bool {
	if HasID(*ids, id) {
		return false
	}
	*ids = append(*ids, id)
	return true
}

// RemoveID removes id if present, preserving order, and reports whether the
// slice changed
func RemoveID(ids *[]string, id string) bool {
	for i, existing := range *ids {
		if existing == id {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return true
		}
	}
	return false
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}
