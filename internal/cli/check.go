package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostelfix/dupcheck/internal/corpus"
	"github.com/hostelfix/dupcheck/internal/detector"
	"github.com/hostelfix/dupcheck/internal/logging"
	"github.com/hostelfix/dupcheck/internal/report"
)

func newCheckCmd() *cobra.Command {
	var (
		corpusPath  string
		title       string
		description string
		threshold   float64
		limit       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a new issue against the open-issue corpus",
		Long: `Check whether a new issue duplicates an existing one. The corpus is a
JSON export of the issue store; closed issues are dropped before
comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && description == "" {
				return fmt.Errorf("at least one of --title and --description is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging.Environment, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			if corpusPath == "" {
				corpusPath = cfg.Corpus.Path
			}
			if corpusPath == "" {
				return fmt.Errorf("corpus file required (--corpus flag or corpus.path in config)")
			}

			docs, err := corpus.LoadFile(corpusPath, corpus.Options{
				MaxDocuments:  cfg.Corpus.MaxDocuments,
				IncludeClosed: cfg.Corpus.IncludeClosed,
			})
			if err != nil {
				return err
			}

			opts := detector.Options{
				SimilarityThreshold: cfg.Detector.SimilarityThreshold,
				MaxSimilarToShow:    cfg.Detector.MaxSimilarToShow,
				MaxFeatures:         cfg.Detector.MaxFeatures,
				KeywordTopN:         cfg.Detector.KeywordTopN,
				MaxMatchingKeywords: cfg.Detector.MaxMatchingKeywords,
				ExcerptLength:       cfg.Detector.ExcerptLength,
			}
			if cmd.Flags().Changed("threshold") {
				opts.SimilarityThreshold = threshold
			}
			if cmd.Flags().Changed("limit") {
				opts.MaxSimilarToShow = limit
			}

			d := detector.New(opts, logger)
			verdict := d.CheckIssue(title, description, docs)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(verdict)
			}

			fmt.Print(report.FormatVerdict(verdict))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "path to issue export JSON")
	cmd.Flags().StringVar(&title, "title", "", "new issue title")
	cmd.Flags().StringVar(&description, "description", "", "new issue description")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.7, "similarity threshold override")
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum matches to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw verdict as JSON")

	return cmd
}
