package phone

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"Digits only", "919876543210", "919876543210"},
		{"International format", "+91 98765 43210", "919876543210"},
		{"Dashes and parentheses", "(987) 654-3210", "9876543210"},
		{"Empty", "", ""},
		{"No digits at all", "abc-def", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.number); got != tt.want {
				t.Errorf("Normalize(%q) = %q; want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"Identical", "9876543210", "9876543210", true},
		{"Country code on one side", "919876543210", "9876543210", true},
		{"Country code on the other side", "9876543210", "919876543210", true},
		{"Formatted vs bare", "+91 98765-43210", "9876543210", true},
		{"Different numbers", "111", "222", false},
		{"Empty left side", "", "123", false},
		{"Empty right side", "123", "", false},
		{"Both empty", "", "", false},
		{"Non-digit garbage", "abc", "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.a, tt.b); got != tt.want {
				t.Errorf("Match(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
