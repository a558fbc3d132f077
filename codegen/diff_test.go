package codegen

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		old, new string
		want     string
	}{
		{"a\nb\n", "a\nb\n", ""},
		{"a\nb\n", "a\nc\n", " a\n-b\n+c\n"},
		{"a\n", "a\nb", " a\n+b\n"},
		{"", "x\n", "+x\n"},
	}
	for _, tt := range tests {
		if got := Diff([]byte(tt.old), []byte(tt.new)); got != tt.want {
			t.Errorf("Diff(%q, %q): got %q want %q", tt.old, tt.new, got, tt.want)
		}
	}
}

func TestColorDiff(t *testing.T) {
	got := ColorDiff([]byte("a\nb\n"), []byte("a\nc\n"))
	if !strings.Contains(got, "\x1b[31m-b") || !strings.Contains(got, "\x1b[32m+c") {
		t.Errorf("got %q", got)
	}
	if !strings.HasPrefix(got, " a\n") {
		t.Errorf("got %q", got)
	}
}
