// Package textvec implements a small bag-of-words TF-IDF vector space with cosine similarity.
package textvec

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into word tokens of at least two characters.
// A word character is a letter, a digit or an underscore.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, lower[start:end])
		}
		start = -1
		runes = 0
	}

	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(lower))

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Analyze turns text into the terms counted by the vectorizer: tokens with stop words
// removed, followed by n-grams up to maxN built over the remaining tokens.
func Analyze(text string, stopWords map[string]struct{}, maxN int) []string {
	raw := Tokenize(text)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	if maxN < 1 {
		maxN = 1
	}

	terms := make([]string, 0, len(tokens)*maxN)
	terms = append(terms, tokens...)
	for n := 2; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
