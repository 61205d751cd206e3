package cmd

import (
	"fmt"
	"os"

	"github.com/mockmate/mockmate/internal/llm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mockmate",
	Short: "AI interview practice in your terminal",
	Long:  "MockMate — terminal app for practicing job interviews with AI feedback on every answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, anthropic, openai, openrouter, mock (overrides MOCKMATE_LLM_PROVIDER)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveConfig builds the LLM config from the environment, applying the
// --provider flag on top. When the selected provider has no key and the
// user did not pin a provider explicitly, it falls back to probing the
// standard API key variables (GEMINI_API_KEY, OPENAI_API_KEY, ...).
func resolveConfig(cmd *cobra.Command) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()

	flagProvider, _ := cmd.Flags().GetString("provider")
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}

	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}

	pinned := flagProvider != "" || os.Getenv("MOCKMATE_LLM_PROVIDER") != ""
	if !pinned {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout = cfg.Timeout
			return found, nil
		}
	}

	return llm.Config{}, fmt.Errorf("%w (set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY, or put one in a .env file)", err)
}
