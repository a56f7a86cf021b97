package pipeline

import "context"

// Pipeline defines the interface for the PDF-to-video conversion
type Pipeline interface {
	Convert(ctx context.Context, pdfPath, outDir string) error
}
