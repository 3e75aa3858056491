package analysis

import (
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func TestTokenizerTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"punctuation dropped", "cat, cat! dog.", []string{"cat", "cat", "dog"}},
		{"case folded", "Word word WORD", []string{"word", "word", "word"}},
		{"digits and underscore", "snake_case 42 x2", []string{"snake_case", "42", "x2"}},
		{"whitespace runs", "  a\t\tb\n\nc  ", []string{"a", "b", "c"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"non ascii letters", "Über über", []string{"über", "über"}},
		{"empty", "", nil},
		{"separators only", "!?., --", nil},
	}

	tok := NewTokenizer(language.Und)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokens(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Tokens(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for _, token := range got {
				if token == "" {
					t.Fatalf("Tokens(%q) produced an empty token", tt.text)
				}
			}
		})
	}
}

func TestTokenizerTurkishLowercasing(t *testing.T) {
	tok := NewTokenizer(language.Turkish)
	got := tok.Tokens("IRMAK ırmak Çiçek ÇİÇEK")
	want := []string{"ırmak", "ırmak", "çiçek", "çiçek"}
	if !slices.Equal(got, want) {
		t.Fatalf("Tokens = %q, want %q", got, want)
	}
}

func TestTokenizerAllStopsEarly(t *testing.T) {
	tok := NewTokenizer(language.Und)
	var seen []string
	for token := range tok.All("one two three four") {
		seen = append(seen, token)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"one", "two"}) {
		t.Fatalf("unexpected tokens before break: %q", seen)
	}
}
