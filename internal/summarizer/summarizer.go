package summarizer

import (
	"context"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/slidecast/internal/analyzer"
	"github.com/nguyentantai21042004/slidecast/internal/textutil"
)

const (
	// Bullets shorter than this many characters are treated as
	// fragments and rejected.
	minBulletChars = 15
	// Section keywords considered for sentence overlap scoring.
	sectionKeywordCount = 5
)

// Summarize turns each ranked section into slide content. Sections that
// produce no usable bullets are dropped with a warning.
func (s *implSummarizer) Summarize(ctx context.Context, sections []analyzer.RankedSection) ([]SlideContent, error) {
	slides := make([]SlideContent, 0, len(sections))

	for _, section := range sections {
		slide := s.summarizeSection(section)
		if len(slide.Bullets) == 0 {
			s.logger.Warn(ctx, "Dropping slide %q: no bullets passed the quality filter", slide.Title)
			continue
		}
		slides = append(slides, slide)
	}

	s.logger.Info(ctx, "Summarized %d sections into %d slides", len(sections), len(slides))
	return slides, nil
}

func (s *implSummarizer) summarizeSection(section analyzer.RankedSection) SlideContent {
	text := section.Text()
	keywords := textutil.Keywords(text, sectionKeywordCount)

	return SlideContent{
		Title:       s.title(section),
		Bullets:     s.bullets(text, keywords),
		SpeakerNote: s.speakerNote(text),
	}
}

// title uses the section heading when present, otherwise the leading
// sentence, capped at max_title_words either way.
func (s *implSummarizer) title(section analyzer.RankedSection) string {
	maxWords := s.cfg.Summarization.MaxTitleWords

	if section.Heading != "" {
		return textutil.TruncateWords(section.Heading, maxWords)
	}

	sentences := textutil.Sentences(section.Text())
	if len(sentences) == 0 {
		return "Untitled"
	}
	return textutil.TruncateWords(strings.TrimRight(sentences[0], "."), maxWords)
}

// bullets picks the best-scoring sentences, truncates them to the word
// cap and filters out fragments.
func (s *implSummarizer) bullets(text string, keywords []string) []string {
	count := s.cfg.Summarization.BulletCount
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	type scored struct {
		sentence string
		score    float64
		index    int
	}
	ranked := make([]scored, 0, len(sentences))
	for i, sent := range sentences {
		ranked = append(ranked, scored{
			sentence: sent,
			score:    sentenceScore(sent, keywords),
			index:    i,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var bullets []string
	seen := make(map[string]bool)
	for _, r := range ranked {
		if len(bullets) >= count {
			break
		}
		bullet := textutil.TruncateWords(textutil.Normalize(r.sentence), s.cfg.Summarization.MaxBulletWords)
		if !s.acceptBullet(bullet) || seen[bullet] {
			continue
		}
		seen[bullet] = true
		bullets = append(bullets, bullet)
	}
	return bullets
}

// acceptBullet rejects fragments and gibberish: too few words or too
// few characters to carry meaning on a slide.
func (s *implSummarizer) acceptBullet(bullet string) bool {
	trimmed := strings.TrimSpace(strings.TrimSuffix(bullet, "..."))
	if len(trimmed) <= minBulletChars {
		return false
	}
	return textutil.WordCount(trimmed) >= s.cfg.Summarization.MinBulletWords
}

// sentenceScore prefers medium-length sentences and rewards keyword
// overlap, mirroring the bullet-worthiness bands.
func sentenceScore(sentence string, keywords []string) float64 {
	n := textutil.WordCount(sentence)

	var score float64
	switch {
	case n >= 10 && n <= 25:
		score = 1.0
	case n >= 26 && n <= 40:
		score = 0.8
	case n >= 5 && n <= 9:
		score = 0.7
	default:
		score = 0.5
	}

	lower := strings.ToLower(sentence)
	overlap := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			overlap++
			if overlap == 2 {
				break
			}
		}
	}
	return score + 0.1*float64(overlap)
}

// speakerNote takes leading sentences, whole, until the word budget is
// spent. Narration reads full sentences rather than truncated bullets,
// so a sentence is only cut when the first one alone busts the cap.
func (s *implSummarizer) speakerNote(text string) string {
	maxWords := s.cfg.Summarization.MaxSpeakerWords
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return "This slide covers the key points of the section."
	}

	var note []string
	used := 0
	for _, sent := range sentences {
		n := textutil.WordCount(sent)
		if used+n > maxWords {
			break
		}
		note = append(note, textutil.Normalize(sent))
		used += n
	}

	if len(note) == 0 {
		return textutil.TruncateWords(textutil.Normalize(sentences[0]), maxWords)
	}
	return strings.Join(note, " ")
}
