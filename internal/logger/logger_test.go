package logger

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"two\nlines", "two lines"},
		{"tab\there", "tab here"},
		{"bell\x07char", "bellchar"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("абвгде", 3); got != "абв" {
		t.Errorf("SanitizeLimit = %q, want rune-safe truncation", got)
	}
	if got := SanitizeLimit("anything", 0); got != "" {
		t.Errorf("SanitizeLimit with max 0 = %q", got)
	}
	if got := SanitizeLimit("short", 10); got != "short" {
		t.Errorf("SanitizeLimit = %q", got)
	}
}
