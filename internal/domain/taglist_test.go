package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  TagList
	}{
		{"native slice unchanged", []string{"calm", "vibrant"}, TagList{"calm", "vibrant"}},
		{"tag list unchanged", TagList{"calm"}, TagList{"calm"}},
		{"serialized json string", `["calm","vibrant"]`, TagList{"calm", "vibrant"}},
		{"serialized json bytes", []byte(`["Quest"]`), TagList{"Quest"}},
		{"empty string", "", TagList{}},
		{"blank string", "   ", TagList{}},
		{"malformed json", `["calm"`, TagList{}},
		{"json of wrong element type", `[1,2,3]`, TagList{}},
		{"json object", `{"a":1}`, TagList{}},
		{"nil input", nil, TagList{}},
		{"unexpected shape", 42, TagList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	inputs := []any{
		[]string{"calm", "vibrant"},
		`["calm"]`,
		"",
		nil,
		3.14,
	}

	for _, input := range inputs {
		once := NormalizeTags(input)
		twice := NormalizeTags(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize not idempotent for %v: %v vs %v", input, once, twice)
		}
	}
}

func TestTagListScanNeverFails(t *testing.T) {
	var l TagList
	if err := l.Scan("definitely not json"); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list from malformed column, got %v", l)
	}

	if err := l.Scan([]byte(`["minimalist"]`)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if !l.Contains("minimalist") {
		t.Fatalf("expected decoded list to contain tag, got %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan returned error for NULL: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list from NULL, got %v", l)
	}
}

func TestTagListContainsIsCaseSensitive(t *testing.T) {
	l := TagList{"Quest"}
	if !l.Contains("Quest") {
		t.Fatalf("expected exact match")
	}
	if l.Contains("quest") {
		t.Fatalf("membership must be case-sensitive")
	}
}

func TestTagListValue(t *testing.T) {
	v, err := TagList{"calm", "vibrant"}.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if v != `["calm","vibrant"]` {
		t.Fatalf("unexpected encoding: %v", v)
	}

	v, err = TagList(nil).Value()
	if err != nil {
		t.Fatalf("Value returned error for nil list: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil list should store as [], got %v", v)
	}
}
