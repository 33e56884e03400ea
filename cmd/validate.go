package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalogue file (or the built-in one) and its quiz questions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := cfg.CataloguePath
		if len(args) == 1 {
			path = args[0]
		}
		return validateCatalogue(cmd.OutOrStdout(), path)
	},
}

// validateCatalogue loads path (or the built-in catalogue when empty), builds
// its question index and writes a short report. Any problem is returned.
func validateCatalogue(w io.Writer, path string) error {
	cat := catalogue.Default()
	if path != "" {
		var err error
		if cat, err = catalogue.LoadFile(path); err != nil {
			return err
		}
	}

	pool, err := questions.Build(cat)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return fmt.Errorf("%s: %w", sourceName(path), questions.ErrEmptyPool)
	}

	demos := 0
	for _, rec := range cat.Records() {
		if rec.HasVisualDemo {
			demos++
		}
	}
	fmt.Fprintf(w, "%s: ok (%d categories, %d topics, %d questions, %d demos)\n",
		sourceName(path), len(cat.Categories()), cat.Len(), len(pool), demos)
	return nil
}
