package extractor

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implExtractor struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Extractor instance
func New(cfg *config.Config, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:    cfg,
		logger: log,
	}
}
