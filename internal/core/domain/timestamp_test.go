package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		floating bool
		want     time.Time
	}{
		{"rfc3339 utc", "2024-03-15T15:30:00Z", false, time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-03-15T10:30:00-05:00", false, time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)},
		{"rfc3339 micros", "2024-03-15T10:30:00.123456-05:00", false,
			time.Date(2024, 3, 15, 15, 30, 0, 123456000, time.UTC)},
		{"no zone", "2024-03-15T10:30:00", true, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"no zone micros", "2024-03-15T10:30:00.123456", true,
			time.Date(2024, 3, 15, 10, 30, 0, 123456000, time.UTC)},
		{"space separator", "2024-03-15 10:30:00", true, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"date only", "2024-03-15", true, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.floating, ts.Floating)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("15/03/2024")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTimestamp_In(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	floating, err := ParseTimestamp("2024-03-15T10:30:00")
	require.NoError(t, err)
	got := floating.In(bogota)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, bogota, got.Location())

	zoned, err := ParseTimestamp("2024-03-15T15:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, zoned.In(bogota).Hour())

	assert.True(t, Timestamp{}.In(bogota).IsZero())
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Timestamp `json:"a"`
		B Timestamp `json:"b"`
		C Timestamp `json:"c"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a":"2024-03-15T10:30:00.5","b":null,"c":""}`), &v))

	assert.True(t, v.A.Floating)
	assert.Equal(t, 10, v.A.Hour())
	assert.True(t, v.B.IsZero())
	assert.True(t, v.C.IsZero())
}

func TestTimestamp_UnmarshalJSON_RejectsGarbage(t *testing.T) {
	var ts Timestamp

	assert.Error(t, json.Unmarshal([]byte(`"ayer"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	for _, in := range []string{`"2024-03-15T10:30:00.123456"`, `"2024-03-15T15:30:00Z"`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts))

		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	}

	out, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
