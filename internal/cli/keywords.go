package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostelfix/dupcheck/internal/detector"
	"github.com/hostelfix/dupcheck/internal/logging"
	"github.com/hostelfix/dupcheck/internal/report"
)

func newKeywordsCmd() *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "keywords [text]",
		Short: "Extract the top keywords from a text (debugging/testing)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging.Environment, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			d := detector.New(detector.Options{
				KeywordTopN: cfg.Detector.KeywordTopN,
			}, logger)

			keywords := d.ExtractKeywords(text, topN)
			fmt.Print(report.FormatKeywords(keywords))
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", 0, "number of keywords to return (default from config)")

	return cmd
}
