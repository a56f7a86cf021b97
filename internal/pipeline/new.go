package pipeline

import (
	"github.com/nguyentantai21042004/slidecast/internal/analyzer"
	"github.com/nguyentantai21042004/slidecast/internal/assembler"
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/extractor"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
	"github.com/nguyentantai21042004/slidecast/internal/videogen"
	"github.com/nguyentantai21042004/slidecast/internal/visualizer"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

type implPipeline struct {
	cfg    *config.Config
	logger logger.Logger

	extractor  extractor.Extractor
	analyzer   analyzer.Analyzer
	summarizer summarizer.Summarizer
	visualizer visualizer.Visualizer
	assembler  assembler.Assembler
	videogen   videogen.VideoGenerator
}

// New creates a new Pipeline instance wiring all six stages
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		logger:     log,
		extractor:  extractor.New(cfg, log),
		analyzer:   analyzer.New(cfg, log),
		summarizer: summarizer.New(cfg, log),
		visualizer: visualizer.New(cfg, log),
		assembler:  assembler.New(cfg, log),
		videogen:   videogen.New(cfg, log, exec),
	}
}
