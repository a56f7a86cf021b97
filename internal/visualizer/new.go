package visualizer

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implVisualizer struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Visualizer instance
func New(cfg *config.Config, log logger.Logger) Visualizer {
	return &implVisualizer{
		cfg:    cfg,
		logger: log,
	}
}
