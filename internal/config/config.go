package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Extraction    ExtractionConfig    `yaml:"extraction"`
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Summarization SummarizationConfig `yaml:"summarization"`
	Visuals       VisualsConfig       `yaml:"visuals"`
	Slides        SlidesConfig        `yaml:"slides"`
	Video         VideoConfig         `yaml:"video"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type ExtractionConfig struct {
	// HeadingScale multiplies the body-text mode font size to get the
	// heading threshold.
	HeadingScale      float64 `yaml:"heading_scale"`
	SamplePages       int     `yaml:"sample_pages"`
	MinParagraphChars int     `yaml:"min_paragraph_chars"`
}

type AnalysisConfig struct {
	MaxSlides      int     `yaml:"max_slides"`
	MinSlides      int     `yaml:"min_slides"`
	LengthWeight   float64 `yaml:"length_weight"`
	KeywordWeight  float64 `yaml:"keyword_weight"`
	PositionWeight float64 `yaml:"position_weight"`
}

type SummarizationConfig struct {
	MaxTitleWords   int `yaml:"max_title_words"`
	MaxBulletWords  int `yaml:"max_bullet_words"`
	MaxSpeakerWords int `yaml:"max_speaker_words"`
	BulletCount     int `yaml:"bullet_count"`
	MinBulletWords  int `yaml:"min_bullet_words"`
}

type VisualsConfig struct {
	Strategy    string `yaml:"strategy"` // diagram, icons or none
	IconDir     string `yaml:"icon_dir"`
	ImageWidth  int    `yaml:"image_width"`
	ImageHeight int    `yaml:"image_height"`
}

type SlidesConfig struct {
	AspectRatio string `yaml:"aspect_ratio"` // 16:9 or 4:3
}

type VideoConfig struct {
	FPS              int              `yaml:"fps"`
	Resolution       ResolutionConfig `yaml:"resolution"`
	MinSlideDuration float64          `yaml:"min_slide_duration"`
	MaxSlideDuration float64          `yaml:"max_slide_duration"`
	OutputFormat     string           `yaml:"output_format"`   // mp4 or gif
	OverflowPolicy   string           `yaml:"overflow_policy"` // extend or trim
	TTSProvider      string           `yaml:"tts_provider"`    // espeak-ng, say, flite or none
	TTSRate          int              `yaml:"tts_rate"`        // words per minute
}

type ResolutionConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config file and applies defaults. An empty path
// returns the default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Extraction.HeadingScale == 0 {
		c.Extraction.HeadingScale = 1.2
	}
	if c.Extraction.SamplePages == 0 {
		c.Extraction.SamplePages = 5
	}
	if c.Extraction.MinParagraphChars == 0 {
		c.Extraction.MinParagraphChars = 30
	}

	if c.Analysis.MaxSlides == 0 {
		c.Analysis.MaxSlides = 10
	}
	if c.Analysis.MinSlides == 0 {
		c.Analysis.MinSlides = 3
	}
	if c.Analysis.LengthWeight == 0 && c.Analysis.KeywordWeight == 0 && c.Analysis.PositionWeight == 0 {
		c.Analysis.LengthWeight = 0.4
		c.Analysis.KeywordWeight = 0.3
		c.Analysis.PositionWeight = 0.3
	}
	if c.Analysis.MinSlides > c.Analysis.MaxSlides {
		return fmt.Errorf("analysis.min_slides (%d) exceeds analysis.max_slides (%d)",
			c.Analysis.MinSlides, c.Analysis.MaxSlides)
	}

	if c.Summarization.MaxTitleWords == 0 {
		c.Summarization.MaxTitleWords = 20
	}
	if c.Summarization.MaxBulletWords == 0 {
		c.Summarization.MaxBulletWords = 15
	}
	if c.Summarization.MaxSpeakerWords == 0 {
		c.Summarization.MaxSpeakerWords = 25
	}
	if c.Summarization.BulletCount == 0 {
		c.Summarization.BulletCount = 3
	}
	if c.Summarization.MinBulletWords == 0 {
		c.Summarization.MinBulletWords = 3
	}

	if c.Visuals.Strategy == "" {
		c.Visuals.Strategy = "diagram"
	}
	switch c.Visuals.Strategy {
	case "diagram", "icons", "none":
	default:
		return fmt.Errorf("visuals.strategy must be diagram, icons or none, got %q", c.Visuals.Strategy)
	}
	if c.Visuals.IconDir == "" {
		c.Visuals.IconDir = "assets/icons"
	}
	if c.Visuals.ImageWidth == 0 {
		c.Visuals.ImageWidth = 800
	}
	if c.Visuals.ImageHeight == 0 {
		c.Visuals.ImageHeight = 600
	}

	if c.Slides.AspectRatio == "" {
		c.Slides.AspectRatio = "16:9"
	}
	if c.Slides.AspectRatio != "16:9" && c.Slides.AspectRatio != "4:3" {
		return fmt.Errorf("slides.aspect_ratio must be 16:9 or 4:3, got %q", c.Slides.AspectRatio)
	}

	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Video.Resolution.Width == 0 {
		c.Video.Resolution.Width = 1280
	}
	if c.Video.Resolution.Height == 0 {
		c.Video.Resolution.Height = 720
	}
	if c.Video.MinSlideDuration == 0 {
		c.Video.MinSlideDuration = 5
	}
	if c.Video.MaxSlideDuration == 0 {
		c.Video.MaxSlideDuration = 12
	}
	if c.Video.MinSlideDuration > c.Video.MaxSlideDuration {
		return fmt.Errorf("video.min_slide_duration (%.1f) exceeds video.max_slide_duration (%.1f)",
			c.Video.MinSlideDuration, c.Video.MaxSlideDuration)
	}
	if c.Video.OutputFormat == "" {
		c.Video.OutputFormat = "mp4"
	}
	if c.Video.OutputFormat != "mp4" && c.Video.OutputFormat != "gif" {
		return fmt.Errorf("video.output_format must be mp4 or gif, got %q", c.Video.OutputFormat)
	}
	if c.Video.OverflowPolicy == "" {
		c.Video.OverflowPolicy = "extend"
	}
	if c.Video.OverflowPolicy != "extend" && c.Video.OverflowPolicy != "trim" {
		return fmt.Errorf("video.overflow_policy must be extend or trim, got %q", c.Video.OverflowPolicy)
	}
	if c.Video.TTSProvider == "" {
		c.Video.TTSProvider = "espeak-ng"
	}
	if c.Video.TTSRate == 0 {
		c.Video.TTSRate = 150
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
