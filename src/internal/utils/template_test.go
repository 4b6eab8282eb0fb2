package utils

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		vars     map[string]string
		expected string
	}{
		{"no placeholders", "ikuai_cn_ipv4group.txt", nil, "ikuai_cn_ipv4group.txt"},
		{"date", "domestic_ikuai_ipgroup-{{date}}.txt", map[string]string{"date": "20261015"}, "domestic_ikuai_ipgroup-20261015.txt"},
		{"region code", "https://example.com/cncity/{{code}}.txt", map[string]string{"code": "110000"}, "https://example.com/cncity/110000.txt"},
		{"unknown placeholder", "a-{{missing}}-b", map[string]string{}, "a--b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTemplate(tt.tmpl, tt.vars); got != tt.expected {
				t.Errorf("ExpandTemplate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTemplateTags(t *testing.T) {
	tags, err := TemplateTags("{{name}}-{{date}}.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "date"}, tags); diff != "" {
		t.Errorf("TemplateTags() mismatch (-want +got):\n%s", diff)
	}

	if _, err := TemplateTags("broken-{{date.txt"); err == nil {
		t.Error("Expected error for unterminated placeholder")
	}
}

func TestDateStamp(t *testing.T) {
	tests := []struct {
		now      time.Time
		expected string
	}{
		{time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC), "20261015"},
		{time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), "20270101"},
		// 02:00 in UTC+8 is still the previous day in UTC.
		{time.Date(2026, 3, 1, 2, 0, 0, 0, time.FixedZone("CST", 8*3600)), "20260301"},
	}

	for _, tt := range tests {
		if got := DateStamp(tt.now); got != tt.expected {
			t.Errorf("DateStamp(%v) = %s, want %s", tt.now, got, tt.expected)
		}
	}
}
