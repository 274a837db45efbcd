package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hostelfix/dupcheck/internal/config"
)

var (
	cfgFile string
	envFile string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "dupcheck",
	Short: "Hostel issue duplicate detection",
	Long: `dupcheck scores a newly submitted hostel maintenance issue against the
corpus of currently-open issues and reports likely duplicates with
similarity scores and overlapping keywords.

A fresh term-weighting model is fit for every check; nothing is cached
between runs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for ${VAR} references in the config file.
		_ = godotenv.Load(envFile)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to .env file")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newKeywordsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dupcheck version %s\n", version)
		},
	}
}

// loadConfig resolves, loads, and validates the configuration. A missing
// config file is not an error; the deployment defaults apply.
func loadConfig() (*config.Config, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return cfg, nil
}
