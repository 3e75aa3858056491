package analysis

import (
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits text into lowercase word tokens.
//
// A Tokenizer is not safe for concurrent use; the underlying caser keeps state
// between calls.
type Tokenizer struct {
	caser cases.Caser
}

// NewTokenizer returns a tokenizer that lowercases with the rules of tag.
// language.Und selects the Unicode default mapping.
func NewTokenizer(tag language.Tag) *Tokenizer {
	return &Tokenizer{caser: cases.Lower(tag)}
}

// Lower applies the tokenizer's lowercasing rules to s.
func (t *Tokenizer) Lower(s string) string {
	return t.caser.String(s)
}

// All yields the tokens of text in order. Separators never appear in a token
// and no token is empty.
func (t *Tokenizer) All(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		lowered := t.Lower(text)
		i := 0
		for i < len(lowered) {
			r, size := utf8.DecodeRuneInString(lowered[i:])
			if !isWordRune(r) {
				i += size
				continue
			}

			start := i
			for i < len(lowered) {
				r, size = utf8.DecodeRuneInString(lowered[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}

			if !yield(lowered[start:i]) {
				return
			}
		}
	}
}

// Tokens collects All into a slice.
func (t *Tokenizer) Tokens(text string) []string {
	return slices.Collect(t.All(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

var defaultLanguage = language.Und
