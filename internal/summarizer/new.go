package summarizer

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implSummarizer struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Summarizer instance
func New(cfg *config.Config, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		logger: log,
	}
}
