package domain

// SearchState is the state of the search flow.
type SearchState int

// Search flow states.
const (
	// SearchTypesLoading is the initial state while the catalog loads.
	SearchTypesLoading SearchState = iota
	// SearchTypesFailed means the catalog could not be loaded or was empty.
	// The form stays visible but searching is disabled.
	SearchTypesFailed
	// SearchReady accepts a submission.
	SearchReady
	// SearchSearching has a request in flight; inputs are disabled.
	SearchSearching
)

// String returns the string representation of the state.
func (s SearchState) String() string {
	switch s {
	case SearchTypesLoading:
		return "types_loading"
	case SearchTypesFailed:
		return "types_failed"
	case SearchReady:
		return "ready"
	case SearchSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// CanSubmit reports whether a search may be submitted in this state.
func (s SearchState) CanSubmit() bool {
	return s == SearchReady
}

// SearchQuery is a customer lookup key.
type SearchQuery struct {
	DocumentTypeID ID
	DocumentNumber string
}
