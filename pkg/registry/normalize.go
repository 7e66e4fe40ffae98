package registry

import "strings"

// Normalize strips spaces and lowercases name. Station names are stored in
// this form and every comparison goes through it.
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// samePair reports whether (a, b) and (c, d) name the same unordered pair
// after normalization.
func samePair(a, b, c, d string) bool {
	a, b, c, d = Normalize(a), Normalize(b), Normalize(c), Normalize(d)
	return (a == c && b == d) || (a == d && b == c)
}
