package textutil

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "by": true, "for": true, "from": true, "has": true,
	"had": true, "have": true, "he": true, "her": true, "his": true, "in": true,
	"is": true, "it": true, "its": true, "of": true, "on": true, "or": true,
	"she": true, "that": true, "the": true, "their": true, "them": true,
	"these": true, "they": true, "this": true, "to": true, "was": true,
	"we": true, "were": true, "which": true, "will": true, "with": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"can": true, "must": true, "shall": true, "do": true, "does": true,
	"did": true, "not": true, "no": true, "but": true, "if": true, "so": true,
	"our": true, "us": true, "you": true, "your": true, "i": true, "my": true,
	"me": true, "also": true, "such": true, "than": true, "then": true,
	"there": true, "when": true, "where": true, "who": true, "how": true,
	"what": true, "why": true, "all": true, "each": true, "more": true,
	"most": true, "other": true, "some": true, "into": true, "over": true,
	"only": true, "very": true, "both": true, "between": true, "during": true,
	"after": true, "before": true, "while": true, "about": true, "through": true,
	"because": true, "since": true, "however": true, "therefore": true,
}

// IsStopWord reports whether the lower-cased word is an English stop word.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}

// Stem reduces a word to its English stem. The original word is returned
// unchanged when stemming fails.
func Stem(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stem
}

// Keywords extracts the top n keywords by frequency, excluding stop
// words and short tokens. Inflected variants are counted together via
// stemming; the first surface form seen is the one returned. Ties break
// by order of first appearance.
func Keywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	type entry struct {
		surface string
		count   int
		first   int
	}

	byStem := make(map[string]*entry)
	var order []string

	pos := 0
	for _, token := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		pos++
		if len(token) < 3 || stopWords[token] {
			continue
		}
		stem := Stem(token)
		e, ok := byStem[stem]
		if !ok {
			e = &entry{surface: token, first: pos}
			byStem[stem] = e
			order = append(order, stem)
		}
		e.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := byStem[order[i]], byStem[order[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.first < b.first
	})

	if len(order) > n {
		order = order[:n]
	}
	keywords := make([]string, len(order))
	for i, stem := range order {
		keywords[i] = byStem[stem].surface
	}
	return keywords
}
