package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/logger"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved provider, model and key source",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		keySource := cfg.KeySource
		if keySource == "" {
			keySource = "(none)"
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", cfg.ActiveModel())
		fmt.Printf("Key:       %s\n", keySource)
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		if c := llm.LookupCost(cfg.ActiveModel()); c != nil {
			fmt.Printf("Pricing:   $%.2f in / $%.2f out per 1M tokens\n", c.InputPerMTok, c.OutputPerMTok)
		} else {
			fmt.Println("Pricing:   unknown (cost estimates unavailable)")
		}
		return nil
	},
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a tiny request to verify the provider works",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logger.New(os.Getenv("MOCKMATE_LOG_FILE"), os.Getenv("MOCKMATE_DEBUG") != "")
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		tracker := llm.NewUsageTracker()
		provider, err := llm.NewProvider(cmd.Context(), cfg, log, tracker)
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}

		fmt.Printf("Pinging %s (%s)...\n", cfg.Provider, provider.ModelID())

		ctx := llm.WithPurpose(cmd.Context(), llm.PurposePing)
		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: pong"}},
			MaxTokens: 64,
		})
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			return fmt.Errorf("ping failed after %s: %w", elapsed, err)
		}

		fmt.Printf("Reply:     %s\n", strings.TrimSpace(resp.Text))
		fmt.Printf("Latency:   %s\n", elapsed)
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if u := tracker.Snapshot(); u.CostUSD > 0 {
			fmt.Printf("Cost:      %s\n", formatCost(u.CostUSD))
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmInfoCmd)
	llmCmd.AddCommand(llmPingCmd)
}
