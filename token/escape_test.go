package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestURLEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" ", "+"},
		{"\n", "&"},
		{"a.b/c-d_e,f", "a.b/c-d_e,f"},
		{"x=1&y", "x%3D1%26y"},
		{"100%", "100%25"},
		{"é", "%C3%A9"},
		{"+", "%2B"},
	}
	for _, tt := range tests {
		if got := URLEscape(tt.in); got != tt.want {
			t.Errorf("URLEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURLUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a+b", "a b"},
		{"a&b", "a\nb"},
		{"%41%6a", "Aj"},
		{"50%", "50%"},
		{"%zz", "%zz"},
		{"%4", "%4"},
	}
	for _, tt := range tests {
		if got := URLUnescape(tt.in); got != tt.want {
			t.Errorf("URLUnescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURLRoundTrip(t *testing.T) {
	var all []byte
	for c := byte(' '); c <= '~'; c++ {
		all = append(all, c)
	}
	for _, s := range []string{string(all), "two words\nnext line", "a=b&c=d", ""} {
		if got := URLUnescape(URLEscape(s)); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestRecords(t *testing.T) {
	got := Records("a=1\n\nb=2\n", '\n')
	if diff := cmp.Diff([]string{"a=1", "b=2"}, got); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
	k, v, ok := SplitPair("a=b=c")
	if !ok || k != "a" || v != "b=c" {
		t.Errorf("SplitPair() = %q, %q, %v", k, v, ok)
	}
	if _, _, ok := SplitPair("bare"); ok {
		t.Errorf("SplitPair(bare) found '='")
	}
	if got := Chomp(" \tx \r"); got != "x" {
		t.Errorf("Chomp() = %q", got)
	}
}
