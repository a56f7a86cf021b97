// Package textutil provides the text processing shared by the pipeline
// stages: sentence splitting, word counting, truncation and keyword
// extraction.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize collapses all whitespace runs (including line breaks) into
// single spaces and trims the result.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TruncateWords cuts text to at most maxWords words, appending an
// ellipsis when anything was removed.
func TruncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

// Sentences splits text into sentences on terminal punctuation. A
// terminator only ends a sentence when followed by whitespace and an
// upper-case letter, a digit, or the end of input, which keeps
// abbreviations like "e.g. this" from splitting mid-phrase.
func Sentences(text string) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume trailing terminators ("..." or "?!").
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
		}
		end := i + 1
		if end >= len(runes) || endsSentenceAt(runes, end) {
			s := strings.TrimSpace(string(runes[start:end]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = end
		}
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func endsSentenceAt(runes []rune, pos int) bool {
	if pos >= len(runes) || !unicode.IsSpace(runes[pos]) {
		return false
	}
	for i := pos; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) {
			continue
		}
		return unicode.IsUpper(runes[i]) || unicode.IsDigit(runes[i])
	}
	return true
}

// Wrap breaks text into lines of at most maxChars characters without
// splitting words. Words longer than maxChars occupy a line of their own.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxChars <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= maxChars {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}
