package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// zonedLayouts are tried first; they carry an offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
}

// floatingLayouts have no offset. Fractional seconds are accepted
// after the seconds field even though the layouts omit them.
var floatingLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const floatingLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a server date-time. Servers running without time zone
// support send wall-clock values with no offset; those are Floating and
// are read in whatever zone they are displayed in.
type Timestamp struct {
	time.Time

	// Floating is true when the value carried no offset.
	Floating bool
}

// NewTimestamp wraps an absolute time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses an RFC 3339 value or a wall-clock value without offset.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	for _, layout := range floatingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, Floating: true}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: unrecognised timestamp %q", ErrInvalidInput, s)
}

// In returns the instant in loc. A floating value keeps its wall clock.
// The zero Timestamp yields the zero time.
func (t Timestamp) In(loc *time.Location) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	if !t.Floating {
		return t.Time.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// UnmarshalJSON accepts a string timestamp; null and "" leave it zero.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON writes the value back in the form it was received.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.Floating {
		return json.Marshal(t.Time.Format(floatingLayout))
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
