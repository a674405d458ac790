// Package textproc reduces raw email text to a slice of normalized
// tokens ready for keyword scoring. The pipeline is lowercase, strip
// punctuation and digits, tokenize, drop stop words and short tokens,
// then stem and lemmatize each survivor.
package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// \w in the source tables is Unicode-aware, so the cleanup regexes use
// \p{L}/\p{N} classes. An ASCII-only class would strip accented runes
// and break matching for words like "reunião".
var (
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	digitRe   = regexp.MustCompile(`\p{N}+`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Normalizer holds no mutable state and is safe for concurrent use.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Preprocess lowercases the text and collapses punctuation, digits and
// whitespace runs into single spaces.
func (n *Normalizer) Preprocess(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	text = digitRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits preprocessed text, removes stop words and tokens of
// two runes or fewer, and reduces each remaining token with Stem.
func (n *Normalizer) Tokenize(text string) []string {
	tokens := []string{}
	for _, token := range strings.Fields(text) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		tokens = append(tokens, n.Stem(token))
	}
	return tokens
}

// Normalize runs the full pipeline on raw text.
func (n *Normalizer) Normalize(text string) []string {
	return n.Tokenize(n.Preprocess(text))
}

// Stem applies the Porter/Snowball stemmer and then lemmatizes the
// stem. The order matters: lemmatization operates on the stemmer's
// output, not on the surface form.
func (n *Normalizer) Stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil || stemmed == "" {
		stemmed = token
	}
	return lemmatize(stemmed)
}

// lemmatize strips the plural suffixes the stemmer leaves behind.
// Applied to stems this is all a dictionary lemmatizer does, since
// stems rarely carry verbal inflection.
func lemmatize(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s") && utf8.RuneCountInString(word) > 3:
		return strings.TrimSuffix(word, "s")
	}
	return word
}
