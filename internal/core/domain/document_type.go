package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a server-assigned identifier. The API emits integers, but the client
// only ever echoes identifiers back, so they are kept as opaque strings.
type ID string

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as sent to the server.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty after trimming.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// DocumentType classifies identification documents (e.g. national ID, passport).
type DocumentType struct {
	// ID is the server identifier used as the search key.
	ID ID `json:"id"`

	// Code is the short code, e.g. "CC" or "NIT".
	Code string `json:"codigo,omitempty"`

	// Name is the display name.
	Name string `json:"nombre"`

	// Description is optional free text.
	Description string `json:"descripcion,omitempty"`
}

// DefaultDocumentType returns the first type of the catalog, which the
// search form preselects. The catalog order is whatever the server returned
// on this load; it is not assumed stable across loads.
func DefaultDocumentType(types []DocumentType) (DocumentType, bool) {
	if len(types) == 0 {
		return DocumentType{}, false
	}
	return types[0], true
}

// FindDocumentType returns the type with the given id.
func FindDocumentType(types []DocumentType, id ID) (DocumentType, bool) {
	for _, t := range types {
		if t.ID == id {
			return t, true
		}
	}
	return DocumentType{}, false
}
