package feed

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Match modes and target fields accepted by Matches and FieldText.
const (
	ModeAny = "any"
	ModeAll = "all"

	FieldTitle       = "title"
	FieldDescription = "description"
	FieldBoth        = "both"
)

// NormalizeText applies NFKC canonicalization followed by Unicode case
// folding. Keywords and entry text go through the same transform, so
// matching is insensitive to case, width and composition variants.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFKC.String(s))
}

// ParseKeywords splits raw input on commas and newlines, trims whitespace,
// drops empty tokens and normalizes the rest.
func ParseKeywords(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", ",")

	keywords := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		keywords = append(keywords, NormalizeText(token))
	}

	return keywords
}

// FieldText selects the entry text a query matches against.
func FieldText(item Item, field string) string {
	switch field {
	case FieldTitle:
		return item.Title
	case FieldDescription:
		return item.Description
	default:
		return item.Title + " " + item.Description
	}
}

// Matches reports whether the normalized text contains any (mode "any") or
// all (every other mode) of the already-normalized keywords. Substring
// comparison only; no tokenization or stemming.
func Matches(text string, keywords []string, mode string) bool {
	normalized := NormalizeText(text)

	if mode == ModeAny {
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				return true
			}
		}
		return false
	}

	for _, keyword := range keywords {
		if !strings.Contains(normalized, keyword) {
			return false
		}
	}
	return true
}
