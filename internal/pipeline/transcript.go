package pipeline

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
)

const (
	transcriptFont     = "Times New Roman"
	transcriptFontSize = 13
)

// writeTranscript exports the narration script as a docx: document
// title, then one heading and speaker note per slide.
func (p *implPipeline) writeTranscript(title string, slides []summarizer.SlideContent, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for i, slide := range slides {
		addRun(doc.AddParagraph(""), fmt.Sprintf("Slide %d: %s", i+1, slide.Title), true, 14)
		addRun(doc.AddParagraph(""), slide.SpeakerNote, false, transcriptFontSize)
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(transcriptFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
