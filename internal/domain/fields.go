package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const periodSuffix = "_period"

// legacySuffixes are period markers written by earlier versions of the form
// ("ねらい_週2", "ねらい_期3"). They are accepted on parse only.
var legacySuffixes = []string{"_週", "_期", periodSuffix}

// FieldKey identifies one form field. Period 0 marks a non-periodic field
// such as a summary or closing block.
type FieldKey struct {
	Doc    DocumentKind
	Item   string
	Period int
}

// String renders the session key used in FieldValues.
func (k FieldKey) String() string {
	return fieldKeyString(k.Item, k.Period)
}

func fieldKeyString(item string, period int) string {
	if period <= 0 {
		return item
	}
	return item + periodSuffix + strconv.Itoa(period)
}

// ParseFieldKey splits a session key back into item and period.
func ParseFieldKey(doc DocumentKind, s string) FieldKey {
	for _, suffix := range legacySuffixes {
		idx := strings.LastIndex(s, suffix)
		if idx <= 0 {
			continue
		}
		n, err := strconv.Atoi(s[idx+len(suffix):])
		if err != nil || n <= 0 {
			continue
		}
		return FieldKey{Doc: doc, Item: s[:idx], Period: n}
	}
	return FieldKey{Doc: doc, Item: s}
}

// FieldValues maps session keys to free text. A missing key reads as "".
type FieldValues map[string]string

func (v FieldValues) Get(item string, period int) string {
	if v == nil {
		return ""
	}
	if s, ok := v[fieldKeyString(item, period)]; ok {
		return s
	}
	if period > 0 {
		for _, suffix := range legacySuffixes[:2] {
			if s, ok := v[item+suffix+strconv.Itoa(period)]; ok {
				return s
			}
		}
	}
	return ""
}

func (v FieldValues) Set(item string, period int, value string) {
	v[fieldKeyString(item, period)] = value
}

func (v FieldValues) Clone() FieldValues {
	out := make(FieldValues, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Merge returns a copy of v overlaid with the non-empty values of other.
func (v FieldValues) Merge(other FieldValues) FieldValues {
	out := v.Clone()
	for k, s := range other {
		if s != "" {
			out[k] = s
		}
	}
	return out
}

// Keys returns the keys in sorted order.
func (v FieldValues) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalJSON accepts scalar-or-list values. Lists are joined with newlines
// and null becomes the empty string.
func (v *FieldValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FieldValues, len(raw))
	for k, msg := range raw {
		s, err := decodeFieldValue(msg)
		if err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = s
	}
	*v = out
	return nil
}

func decodeFieldValue(msg json.RawMessage) (string, error) {
	var x any
	if err := json.Unmarshal(msg, &x); err != nil {
		return "", err
	}
	switch t := x.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			s, err := scalarString(e)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n"), nil
	default:
		return scalarString(t)
	}
}

func scalarString(x any) (string, error) {
	switch t := x.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", fmt.Errorf("unsupported value type %T", x)
}
