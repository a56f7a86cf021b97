package textutil

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a  b\t c", "a b c"},
		{"removes line breaks", "a\nb\r\nc", "a b c"},
		{"trims", "  hello  ", "hello"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWords int
		want     string
	}{
		{"under limit", "one two three", 5, "one two three"},
		{"at limit", "one two three", 3, "one two three"},
		{"over limit", "one two three four", 2, "one two..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.in, tt.maxWords); got != tt.want {
				t.Errorf("TruncateWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"two sentences",
			"First sentence here. Second one follows.",
			[]string{"First sentence here.", "Second one follows."},
		},
		{
			"abbreviation not split",
			"Results improved by approx. ten percent overall.",
			[]string{"Results improved by approx. ten percent overall."},
		},
		{
			"question and exclamation",
			"Really? Yes! It works.",
			[]string{"Really?", "Yes!", "It works."},
		},
		{
			"trailing fragment without terminator",
			"Done. And then some",
			[]string{"Done.", "And then some"},
		},
		{"empty", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("line %q exceeds 15 chars", line)
		}
	}
	if got := strings.Join(lines, " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("Wrap lost words: %q", got)
	}

	if got := Wrap("", 10); got != nil {
		t.Errorf("Wrap(empty) = %v, want nil", got)
	}

	// A word longer than the limit still gets its own line.
	long := Wrap("supercalifragilistic ok", 5)
	if len(long) != 2 || long[0] != "supercalifragilistic" {
		t.Errorf("Wrap long word = %v", long)
	}
}

func TestKeywords(t *testing.T) {
	text := "Neural networks process data. The network processes more data. Networks everywhere."
	got := Keywords(text, 3)
	if len(got) != 3 {
		t.Fatalf("Keywords() returned %d keywords, want 3", len(got))
	}
	// "network"/"networks" stem together and dominate.
	if got[0] != "networks" {
		t.Errorf("top keyword = %q, want networks (first surface form)", got[0])
	}
}

func TestKeywordsFiltersStopWords(t *testing.T) {
	got := Keywords("the and with from because system", 5)
	if len(got) != 1 || got[0] != "system" {
		t.Errorf("Keywords() = %v, want [system]", got)
	}
}

func TestKeywordsEmpty(t *testing.T) {
	if got := Keywords("", 5); got != nil {
		t.Errorf("Keywords(empty) = %v, want nil", got)
	}
	if got := Keywords("text", 0); got != nil {
		t.Errorf("Keywords(n=0) = %v, want nil", got)
	}
}
