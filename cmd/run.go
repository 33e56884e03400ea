package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/app"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/demo"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/logging"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/screen"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

// runApp loads the content, builds the learner's session and launches the TUI.
// The terminal belongs to the UI, so logs go to a file or nowhere.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	cat, pool, err := loadContent(cfg.CataloguePath, logger)
	if err != nil {
		return err
	}

	sess := session.New(questions.NewSource(cfg.Seed))
	logger.Info("session started", "session", sess.ID(), "seed", cfg.Seed)

	return app.Run(&screen.Env{
		Catalogue: cat,
		Pool:      pool,
		Demos:     demo.Default(),
		Session:   sess,
		Logger:    logger,
	})
}
