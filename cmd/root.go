package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/config"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

var rootCmd = &cobra.Command{
	Use:   "dsmanual",
	Short: "Interactive data-science manual",
	Long: "dsmanual: a terminal manual of data-science topics (Python, pandas, SQL, visualisation, " +
		"machine learning) with progress tracking, flashcards and a scored quiz.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("catalogue", "", "Path to a YAML catalogue (overrides DSMANUAL_CATALOGUE env var)")
	flags.Int64("seed", 0, "Seed for card and question draws, 0 for random (overrides DSMANUAL_SEED)")
	flags.String("log-file", "", "Write logs to this file (overrides DSMANUAL_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides DSMANUAL_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment configuration and applies the persistent
// flags on top. A flag wins over its variable only when set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalogue") {
		cfg.CataloguePath, _ = flags.GetString("catalogue")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadContent returns the configured catalogue (or the built-in one) and its
// question pool. An empty pool is fatal: neither review mode could start.
func loadContent(path string, logger *slog.Logger) (*catalogue.Catalogue, questions.Pool, error) {
	cat := catalogue.Default()
	if path != "" {
		var err error
		cat, err = catalogue.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
	}

	pool, err := questions.Build(cat)
	if err != nil {
		return nil, nil, fmt.Errorf("build question index: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil, fmt.Errorf("catalogue has no quizzable topics: %w", questions.ErrEmptyPool)
	}

	logger.Info("catalogue loaded",
		"source", sourceName(path),
		"categories", len(cat.Categories()),
		"topics", cat.Len(),
		"questions", len(pool),
	)
	return cat, pool, nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
