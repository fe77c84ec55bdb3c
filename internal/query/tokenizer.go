package query

import (
	"strings"
	"unicode"
)

// Tokenizer splits free text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer splits on every rune that is neither a letter nor a digit.
// Token text is returned verbatim; no case folding or stemming is applied.
type WordTokenizer struct{}

// Tokenize implements Tokenizer.
func (WordTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
