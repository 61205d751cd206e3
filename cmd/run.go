package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mockmate/mockmate/internal/app"
	"github.com/mockmate/mockmate/internal/evaluate"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/logger"
	"github.com/mockmate/mockmate/internal/screen"
	"github.com/mockmate/mockmate/internal/screens/setup"
	"github.com/spf13/cobra"
)

// runApp resolves configuration, builds the provider stack, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// A .env in the working directory is optional.
	_ = godotenv.Load()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns stdout, so logs go to a file (or nowhere).
	log, err := logger.New(os.Getenv("MOCKMATE_LOG_FILE"), os.Getenv("MOCKMATE_DEBUG") != "")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	tracker := llm.NewUsageTracker()
	provider, err := llm.NewProvider(ctx, cfg, log, tracker)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	evaluator := evaluate.NewService(provider, evaluate.DefaultConfig())

	factory := func() screen.Screen {
		return setup.New(evaluator, cfg.ActiveModel(), tracker)
	}
	return app.Run(factory)
}
