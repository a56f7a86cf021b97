package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/pipeline"
	"github.com/nguyentantai21042004/slidecast/internal/watcher"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

func main() {
	var (
		inputPath   = flag.String("i", "", "input PDF file (or directory with --watch)")
		outDir      = flag.String("o", "output", "output directory")
		configPath  = flag.String("c", "", "config file (YAML)")
		maxSlides   = flag.Int("max-slides", 0, "override analysis.max_slides")
		videoFormat = flag.String("video-format", "", "override video.output_format (mp4|gif)")
		watchMode   = flag.Bool("watch", false, "watch the input directory and convert each new PDF")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	ctx := context.Background()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: pipeline -i <input.pdf> [-o <outdir>] [-c <config.yaml>] [--max-slides N] [--video-format mp4|gif] [--watch] [-v]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *maxSlides > 0 {
		cfg.Analysis.MaxSlides = *maxSlides
		if cfg.Analysis.MinSlides > cfg.Analysis.MaxSlides {
			cfg.Analysis.MinSlides = cfg.Analysis.MaxSlides
		}
	}
	if *videoFormat != "" {
		cfg.Video.OutputFormat = *videoFormat
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	pipe := pipeline.New(cfg, executor.New(), log)

	if *watchMode {
		if err := runWatch(ctx, cfg, pipe, log, *inputPath, *outDir); err != nil {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := pipe.Convert(ctx, *inputPath, *outDir); err != nil {
		log.Error(ctx, "Conversion failed: %v", err)
		os.Exit(1)
	}
}

// runWatch converts every PDF that appears in inputDir until
// interrupted. Each conversion gets its own subdirectory under outDir.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger, inputDir, outDir string) error {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}

	w, err := watcher.New(inputDir, func(ctx context.Context, pdfPath string) error {
		name := filepath.Base(pdfPath)
		runOut := filepath.Join(outDir, name[:len(name)-len(filepath.Ext(name))])
		return pipe.Convert(ctx, pdfPath, runOut)
	}, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s; output under %s. Press Ctrl+C to stop", inputDir, outDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
