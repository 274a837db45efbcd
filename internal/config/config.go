package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration
type Config struct {
	Detector DetectorConfig `yaml:"detector"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DetectorConfig contains duplicate detection settings
type DetectorConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxSimilarToShow    int     `yaml:"max_similar_to_show"`
	MaxFeatures         int     `yaml:"max_features"`
	KeywordTopN         int     `yaml:"keyword_top_n"`
	MaxMatchingKeywords int     `yaml:"max_matching_keywords"`
	ExcerptLength       int     `yaml:"excerpt_length"`
}

// CorpusConfig contains corpus loading settings
type CorpusConfig struct {
	Path          string `yaml:"path"`
	MaxDocuments  int    `yaml:"max_documents"`
	IncludeClosed bool   `yaml:"include_closed"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Environment string `yaml:"environment"`
	Level       string `yaml:"level"`
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	// Check common locations
	paths := []string{
		"dupcheck.yaml",
		"dupcheck.yml",
		".github/dupcheck.yaml",
		".github/dupcheck.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "dupcheck", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Detector.SimilarityThreshold == 0 {
		cfg.Detector.SimilarityThreshold = 0.7
	}
	if cfg.Detector.MaxSimilarToShow == 0 {
		cfg.Detector.MaxSimilarToShow = 5
	}
	if cfg.Detector.MaxFeatures == 0 {
		cfg.Detector.MaxFeatures = 5000
	}
	if cfg.Detector.KeywordTopN == 0 {
		cfg.Detector.KeywordTopN = 10
	}
	if cfg.Detector.MaxMatchingKeywords == 0 {
		cfg.Detector.MaxMatchingKeywords = 5
	}
	if cfg.Detector.ExcerptLength == 0 {
		cfg.Detector.ExcerptLength = 200
	}
	if cfg.Corpus.MaxDocuments == 0 {
		cfg.Corpus.MaxDocuments = 100
	}
	// IncludeClosed defaults to false (zero value) - closed issues leave the corpus
	if cfg.Logging.Environment == "" {
		cfg.Logging.Environment = "local"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
