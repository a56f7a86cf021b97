package videogen

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

type implVideoGenerator struct {
	cfg      *config.Config
	logger   logger.Logger
	executor executor.Executor
}

// New creates a new VideoGenerator instance
func New(cfg *config.Config, log logger.Logger, exec executor.Executor) VideoGenerator {
	return &implVideoGenerator{
		cfg:      cfg,
		logger:   log,
		executor: exec,
	}
}
