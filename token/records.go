package token

import "strings"

// Records splits data on sep, dropping empty records.
func Records(data string, sep byte) []string {
	parts := strings.Split(data, string(sep))
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// SplitPair splits a record at its first '='.
func SplitPair(rec string) (key, val string, ok bool) {
	return strings.Cut(rec, "=")
}

// Chomp trims surrounding whitespace.
func Chomp(s string) string {
	return strings.TrimSpace(s)
}
