package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/logging"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List catalogue topics (optionally filtered by category or quiz availability)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		quizOnly, _ := cmd.Flags().GetBool("quiz")

		cat, _, err := loadContent(cfg.CataloguePath, logging.Discard())
		if err != nil {
			return err
		}

		records, err := selectTopics(cat, category, quizOnly)
		if err != nil {
			return err
		}
		writeTopics(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("category", "", "Filter by category name or slug (e.g. bases-de-datos-y-sql)")
	topicsCmd.Flags().Bool("quiz", false, "Only list topics that have a quiz question")
}

// selectTopics returns the records matching the filters, in catalogue order.
func selectTopics(cat *catalogue.Catalogue, category string, quizOnly bool) ([]catalogue.TopicRecord, error) {
	records := cat.Records()
	if category != "" {
		c, ok := cat.FindCategory(category)
		if !ok {
			return nil, fmt.Errorf("no category matches %q", category)
		}
		records = c.Topics
	}

	if !quizOnly {
		return records, nil
	}
	var out []catalogue.TopicRecord
	for _, rec := range records {
		if rec.Quizzable() {
			out = append(out, rec)
		}
	}
	return out, nil
}

func writeTopics(w io.Writer, records []catalogue.TopicRecord) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderRow(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers("CATEGORY", "TOPIC", "SLUG", "QUIZ", "DEMO")

	for _, rec := range records {
		t.Row(rec.Category, rec.Topic, catalogue.Slug(rec.Topic), mark(rec.Quizzable()), mark(rec.HasVisualDemo))
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "\n%d topics\n", len(records))
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
