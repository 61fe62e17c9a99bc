package domain

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// TagList is the canonical form of the designers' list-valued attributes
// (scene tags, export formats, visual metadata). The database stores these
// columns as JSON text, while in-memory records carry native slices; TagList
// resolves both shapes at the boundary so scoring only ever sees a slice of
// strings.
type TagList []string

// Contains reports whether tag is present, exact and case-sensitive.
func (t TagList) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// NormalizeTags converts any stored representation of a tag list into its
// canonical form. It never fails: undecodable, blank, absent or unexpectedly
// shaped input degrades to an empty list so that scoring stays total over
// arbitrary stored data.
func NormalizeTags(v any) TagList {
	switch val := v.(type) {
	case nil:
		return TagList{}
	case TagList:
		return val
	case []string:
		return TagList(val)
	case []byte:
		return decodeTags(string(val))
	case string:
		return decodeTags(val)
	default:
		return TagList{}
	}
}

func decodeTags(raw string) TagList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TagList{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return TagList{}
	}
	return TagList(tags)
}

// Scan implements sql.Scanner. Malformed column data yields an empty list,
// never an error.
func (t *TagList) Scan(src any) error {
	*t = NormalizeTags(src)
	return nil
}

// Value implements driver.Valuer, encoding the list as JSON text.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	encoded, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// MarshalJSON keeps empty lists as [] rather than null in API responses.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}
