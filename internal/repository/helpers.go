package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// timeLayout keeps sub-second precision so snapshots saved in the same
// second still read back distinct.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t, nil
}

func encodeValues(v domain.FieldValues) (string, error) {
	if v == nil {
		v = domain.FieldValues{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding values: %w", err)
	}
	return string(data), nil
}

func decodeValues(s string) (domain.FieldValues, error) {
	var v domain.FieldValues
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("decoding values: %w", err)
	}
	if v == nil {
		v = domain.FieldValues{}
	}
	return v, nil
}
