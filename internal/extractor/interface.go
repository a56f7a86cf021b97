package extractor

import (
	"context"
	"errors"
)

// ErrNoTextLayer is returned for PDFs with no extractable text, such as
// scanned image-only documents.
var ErrNoTextLayer = errors.New("pdf has no extractable text layer")

// Extractor turns a PDF file into structured sections with font-based
// heading detection.
type Extractor interface {
	Extract(ctx context.Context, pdfPath string) (*Document, error)
}
