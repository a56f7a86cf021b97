package analyzer

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implAnalyzer struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Analyzer instance
func New(cfg *config.Config, log logger.Logger) Analyzer {
	return &implAnalyzer{
		cfg:    cfg,
		logger: log,
	}
}
