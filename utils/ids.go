package utils

import "strings"

// NormalizeID converts a user or match identifier to its canonical form:
// trimmed, lowercase. UUIDs are case-insensitive, so comparing the canonical
// forms prevents false duplicates and false mismatches. Normalize once at the
// service boundary; never re-derive downstream.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ContainsID reports whether ids contains target, comparing canonical forms.
func ContainsID(ids []string, target string) bool {
	normalized := NormalizeID(target)
	for _, id := range ids {
		if NormalizeID(id) == normalized {
			return true
		}
	}
	return false
}

// RemoveID returns ids without target, comparing canonical forms. Order of the
// remaining entries is preserved.
func RemoveID(ids []string, target string) []string {
	normalized := NormalizeID(target)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if NormalizeID(id) != normalized {
			out = append(out, id)
		}
	}
	return out
}
