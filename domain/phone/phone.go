// Package phone normalizes and compares phone identifiers.
// Membership lists and registered numbers come from different sources that
// disagree on country-code presence and formatting, so comparisons here are
// deliberately tolerant.
package phone

import "strings"

// Normalize strips every non-digit character from a phone identifier.
func Normalize(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match reports whether two phone identifiers address the same account.
// Both sides are normalized first; they match when equal or when one is a
// suffix of the other, which absorbs an inconsistently present country code.
// Empty identifiers never match anything.
func Match(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.HasSuffix(na, nb) || strings.HasSuffix(nb, na)
}
