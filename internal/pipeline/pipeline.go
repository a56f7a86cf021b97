package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/slidecast/internal/assembler"
)

// Convert runs the full conversion: extract, analyze, summarize,
// visualize, assemble, render. Stage failures local to one slide degrade
// that slide; document-level failures abort with an error.
func (p *implPipeline) Convert(ctx context.Context, pdfPath, outDir string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting conversion: %s", pdfPath)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	runDir := filepath.Join(p.cfg.Paths.Temp, uuid.NewString())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer p.cleanupRunDir(ctx, runDir)

	// Step 1: Extract sections
	doc, err := p.extractor.Extract(ctx, pdfPath)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	p.logger.Info(ctx, "Extracted %d sections from %d pages of %q",
		len(doc.Sections), doc.PageCount, doc.Title)

	// Step 2: Rank sections
	ranked, err := p.analyzer.Rank(ctx, doc)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// Step 3: Summarize into slide content
	slides, err := p.summarizer.Summarize(ctx, ranked)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	if len(slides) == 0 {
		return fmt.Errorf("summarize: no slides survived the quality filter")
	}

	// Step 4: Generate visuals (non-fatal per slide)
	enriched := make([]assembler.EnrichedSlide, 0, len(slides))
	for i, slide := range slides {
		visual, err := p.visualizer.Generate(ctx, slide, i+1, runDir)
		if err != nil {
			p.logger.Warn(ctx, "Slide %d: visual generation failed, continuing without: %v", i+1, err)
			visual = ""
		}
		enriched = append(enriched, assembler.EnrichedSlide{SlideContent: slide, VisualPath: visual})
	}

	// Step 5: Assemble presentation
	pptxPath := filepath.Join(outDir, "slides.pptx")
	if err := p.assembler.Assemble(ctx, enriched, pptxPath); err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	// Transcript is a convenience artifact; failure does not abort.
	transcriptPath := filepath.Join(outDir, "transcript.docx")
	if err := p.writeTranscript(doc.Title, slides, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript: %v", err)
		transcriptPath = ""
	}

	// Step 6: Render narrated video
	videoPath := filepath.Join(outDir, "video."+p.cfg.Video.OutputFormat)
	if err := p.videogen.Generate(ctx, pptxPath, videoPath, runDir); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Conversion completed successfully!")
	p.logger.Info(ctx, "Presentation: %s", pptxPath)
	p.logger.Info(ctx, "Video: %s", videoPath)
	if transcriptPath != "" {
		p.logger.Info(ctx, "Transcript: %s", transcriptPath)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// cleanupRunDir removes the per-run temp directory, logging on failure.
func (p *implPipeline) cleanupRunDir(ctx context.Context, runDir string) {
	if err := os.RemoveAll(runDir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", runDir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", runDir)
	}
}
