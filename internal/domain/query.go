package domain

import (
	"strings"
	"unicode"
)

// Normalize trims the query, collapses internal whitespace runs to single
// spaces and lowercases the result.
func Normalize(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// Classify inspects the raw query BEFORE normalization: the heuristic
// depends on the original casing, which Normalize throws away.
//   - capitalized first letter -> likely a proper noun, so an entity
//   - more than 2 tokens -> likely a phrase naming something, so an entity
//   - otherwise a plain word
//
// Mixed is never produced here; it exists for classifiers that can tell
// a query needs every source.
func Classify(raw string) ContentType {
	trimmed := strings.TrimSpace(raw)

	for _, r := range trimmed {
		if unicode.IsUpper(r) {
			return ContentTypeEntity
		}
		break
	}

	if len(strings.Fields(trimmed)) > 2 {
		return ContentTypeEntity
	}

	return ContentTypeWord
}
