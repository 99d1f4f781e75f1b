package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// backendLayout is how the backend formats datetimes (no zone, UTC).
const backendLayout = "2006-01-02T15:04:05"

// Timestamp accepts both the backend's zone-less layout and RFC 3339.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = v
		return nil
	}
	v, err := time.ParseInLocation(backendLayout, s, time.UTC)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}
