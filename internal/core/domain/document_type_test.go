package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
	}{
		{"number", `1`, "1"},
		{"string", `"CC"`, "CC"},
		{"null", `null`, ""},
		{"large number", `1234567890123`, "1234567890123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID
	err := json.Unmarshal([]byte(`{"a":1}`), &id)
	assert.Error(t, err)
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, ID("").IsZero())
	assert.True(t, ID("   ").IsZero())
	assert.False(t, ID("1").IsZero())
}

func TestDocumentType_Decode(t *testing.T) {
	var dt DocumentType
	err := json.Unmarshal([]byte(`{"id":2,"codigo":"NIT","nombre":"NIT","descripcion":null}`), &dt)

	require.NoError(t, err)
	assert.Equal(t, ID("2"), dt.ID)
	assert.Equal(t, "NIT", dt.Code)
	assert.Equal(t, "NIT", dt.Name)
	assert.Empty(t, dt.Description)
}

func TestDefaultDocumentType(t *testing.T) {
	_, ok := DefaultDocumentType(nil)
	assert.False(t, ok)

	types := []DocumentType{{ID: "3", Name: "Cédula"}, {ID: "1", Name: "NIT"}}
	first, ok := DefaultDocumentType(types)
	assert.True(t, ok)
	assert.Equal(t, ID("3"), first.ID)
}

func TestFindDocumentType(t *testing.T) {
	types := []DocumentType{{ID: "1", Name: "Cédula"}, {ID: "2", Name: "NIT"}}

	found, ok := FindDocumentType(types, "2")
	assert.True(t, ok)
	assert.Equal(t, "NIT", found.Name)

	_, ok = FindDocumentType(types, "9")
	assert.False(t, ok)
}
