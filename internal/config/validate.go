package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	if cfg.Detector.SimilarityThreshold < 0 || cfg.Detector.SimilarityThreshold > 1 {
		errs = append(errs, ValidationError{"detector.similarity_threshold", "must be between 0 and 1"})
	}
	if cfg.Detector.MaxSimilarToShow < 0 {
		errs = append(errs, ValidationError{"detector.max_similar_to_show", "must be positive"})
	}
	if cfg.Detector.MaxFeatures < 0 {
		errs = append(errs, ValidationError{"detector.max_features", "must be positive"})
	}
	if cfg.Detector.KeywordTopN < 0 {
		errs = append(errs, ValidationError{"detector.keyword_top_n", "must be positive"})
	}
	if cfg.Detector.MaxMatchingKeywords < 0 {
		errs = append(errs, ValidationError{"detector.max_matching_keywords", "must be positive"})
	}
	if cfg.Detector.ExcerptLength < 0 {
		errs = append(errs, ValidationError{"detector.excerpt_length", "must be positive"})
	}

	if cfg.Corpus.MaxDocuments < 0 {
		errs = append(errs, ValidationError{"corpus.max_documents", "must be positive"})
	}

	if lvl := cfg.Logging.Level; lvl != "" {
		switch lvl {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		default:
			errs = append(errs, ValidationError{"logging.level", "unknown level"})
		}
	}

	return errs
}
