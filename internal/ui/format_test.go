package ui

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "N/A"},
		{"empty string", "", "N/A"},
		{"string", "salom", "salom"},
		{"true", true, "Yes"},
		{"false", false, "No"},
		{"whole float", float64(42), "42"},
		{"fraction", 3.5, "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "N/A"},
		{"null literal", "null", "N/A"},
		{"garbage", "not-a-date", "Invalid date"},
		{"plain date", "2024-03-09", "Mar 9, 2024 · 12:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDateEpochMillis(t *testing.T) {
	got := FormatDate("0")
	if got == "N/A" || got == "Invalid date" {
		t.Errorf("FormatDate(\"0\") = %q, want a formatted timestamp", got)
	}
}

func TestIsImagePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photos/cover.JPG", true},
		{"photos/cover.webp", true},
		{"docs/report.pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImagePath(tt.path); got != tt.want {
			t.Errorf("IsImagePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
