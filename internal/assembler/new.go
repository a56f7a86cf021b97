package assembler

import (
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implAssembler struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Assembler instance
func New(cfg *config.Config, log logger.Logger) Assembler {
	return &implAssembler{
		cfg:    cfg,
		logger: log,
	}
}
