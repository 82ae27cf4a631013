package component

// Name is an optional display/lookup label. Several entities may share a
// name; behaviors that reference "a tagged entity" resolve by first match
// in the Name column's query order (SPEC_FULL.md §3, §12).
type Name struct {
	Value string
}
