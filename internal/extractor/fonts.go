package extractor

import (
	"math"
	"strings"
)

// fallbackBodySize is assumed when the PDF carries no usable font size
// information at all.
const fallbackBodySize = 12.0

// fontStats summarises the font size distribution of the sampled pages.
// The most common size is taken to be body text; anything above
// threshold counts as a heading.
type fontStats struct {
	mode      float64
	max       float64
	threshold float64
	sampled   int
}

// analyzeFonts builds font statistics from the first sampled pages.
// Sizes are bucketed to half points so tiny rasterisation differences
// do not fragment the mode.
func analyzeFonts(lines []textLine, samplePages int, headingScale float64) fontStats {
	counts := make(map[float64]int)
	stats := fontStats{}

	for _, line := range lines {
		if samplePages > 0 && line.page > samplePages {
			break
		}
		stats.sampled++
		for _, run := range line.runs {
			if run.size <= 0 {
				continue
			}
			bucket := math.Round(run.size*2) / 2
			counts[bucket] += len(run.text)
			if bucket > stats.max {
				stats.max = bucket
			}
		}
	}

	best := 0
	for size, n := range counts {
		if n > best || (n == best && size < stats.mode) {
			best = n
			stats.mode = size
		}
	}

	if stats.mode == 0 {
		stats.mode = fallbackBodySize
	}
	stats.threshold = stats.mode * headingScale

	return stats
}

var boldIndicators = []string{"bold", "black", "heavy", "extrabold", "semibold"}

// isBoldFont reports whether the font name signals bold weight.
func isBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	for _, ind := range boldIndicators {
		if strings.Contains(name, ind) {
			return true
		}
	}
	return false
}

// isHeadingLine applies the document-relative heading rule: font size
// above the threshold, or bold weight. Lines without font information
// fall back to shape heuristics.
func isHeadingLine(line textLine, stats fontStats) bool {
	text := line.text()
	if len(text) < 3 {
		return false
	}

	size := line.fontSize()
	if size > 0 {
		if size > stats.threshold {
			return true
		}
		return isBoldFont(line.fontName()) && len(text) < 150
	}

	return looksLikeHeading(text)
}

// looksLikeHeading is the no-font-info fallback: short lines without
// mid-sentence punctuation, or all-caps lines.
func looksLikeHeading(text string) bool {
	words := strings.Fields(text)

	if len(text) < 20 && len(words) < 5 {
		return true
	}
	if text == strings.ToUpper(text) && len(text) < 80 && len(words) < 12 {
		return true
	}
	if strings.HasSuffix(text, ":") && len(text) < 100 {
		return true
	}
	if len(text) < 80 && len(words) < 10 {
		return !strings.ContainsAny(trimEnds(text), ".!?,")
	}
	return false
}

// trimEnds drops the first and last few characters so terminal
// punctuation does not count as mid-sentence punctuation.
func trimEnds(text string) string {
	if len(text) <= 10 {
		return text
	}
	return text[5 : len(text)-5]
}
