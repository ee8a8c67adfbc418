package feed

import (
	"testing"
)

func TestNormalizeText_CaseFolding(t *testing.T) {
	if NormalizeText("CAFÉ") != NormalizeText("café") {
		t.Error("Case variants should normalize identically")
	}
	if NormalizeText("") != "" {
		t.Error("Empty string should stay empty")
	}
}

func TestNormalizeText_CompositionVariants(t *testing.T) {
	// "café" with a precomposed é versus e + combining acute accent
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	if NormalizeText(composed) != NormalizeText(decomposed) {
		t.Error("NFC and NFD spellings should normalize identically")
	}
}

func TestNormalizeText_WidthVariants(t *testing.T) {
	// Fullwidth "ＧＯ" should fold to the same text as "go"
	if NormalizeText("ＧＯ") != NormalizeText("go") {
		t.Error("Fullwidth characters should normalize to their compatibility forms")
	}
}

func TestParseKeywords(t *testing.T) {
	keywords := ParseKeywords("foo, bar\nbaz,,  ")

	if len(keywords) != 3 {
		t.Fatalf("Expected 3 keywords, got %d: %v", len(keywords), keywords)
	}
	if keywords[0] != "foo" || keywords[1] != "bar" || keywords[2] != "baz" {
		t.Errorf("Unexpected keywords: %v", keywords)
	}
}

func TestParseKeywords_Empty(t *testing.T) {
	if len(ParseKeywords("")) != 0 {
		t.Error("Empty input should yield no keywords")
	}
	if len(ParseKeywords(" ,\n, ")) != 0 {
		t.Error("Whitespace-only input should yield no keywords")
	}
}

func TestParseKeywords_Normalizes(t *testing.T) {
	keywords := ParseKeywords("CAFÉ")
	if len(keywords) != 1 {
		t.Fatalf("Expected 1 keyword, got %d", len(keywords))
	}
	if keywords[0] != NormalizeText("café") {
		t.Errorf("Keyword should be normalized, got %q", keywords[0])
	}
}

func TestFieldText(t *testing.T) {
	item := Item{Title: "Title", Description: "Summary"}

	if FieldText(item, FieldTitle) != "Title" {
		t.Errorf("Unexpected title field text: %q", FieldText(item, FieldTitle))
	}
	if FieldText(item, FieldDescription) != "Summary" {
		t.Errorf("Unexpected description field text: %q", FieldText(item, FieldDescription))
	}
	if FieldText(item, FieldBoth) != "Title Summary" {
		t.Errorf("Unexpected combined field text: %q", FieldText(item, FieldBoth))
	}
	// Unknown field values behave like "both"
	if FieldText(item, "unknown") != "Title Summary" {
		t.Errorf("Unknown field should fall back to both, got %q", FieldText(item, "unknown"))
	}
}

func TestMatches_AnyMode(t *testing.T) {
	keywords := ParseKeywords("foo,bar")

	if !Matches("something about foo here", keywords, ModeAny) {
		t.Error("Text containing one keyword should match in any mode")
	}
	if Matches("nothing relevant", keywords, ModeAny) {
		t.Error("Text containing no keywords should not match")
	}
}

func TestMatches_AllMode(t *testing.T) {
	keywords := ParseKeywords("foo,bar")

	if Matches("only foo here", keywords, ModeAll) {
		t.Error("Text missing a keyword should not match in all mode")
	}
	if !Matches("foo and bar together", keywords, ModeAll) {
		t.Error("Text containing every keyword should match in all mode")
	}
}

func TestMatches_UnicodeKeywords(t *testing.T) {
	// Both spellings of CAFÉ must match text "Café"
	for _, raw := range []string{"CAF\u00c9", "cafe\u0301"} {
		keywords := ParseKeywords(raw)
		if !Matches("Café opens downtown", keywords, ModeAny) {
			t.Errorf("Keyword %q should match text containing Café", raw)
		}
	}
}
