package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mockmate/mockmate/internal/evaluate"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/logger"
	"github.com/mockmate/mockmate/internal/question"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Practice at the prompt without the TUI",
	Long: `Generate interview questions and answer them on stdin.

This is a stateless preview — the same questions and feedback as the TUI,
without the screens. Counts past the cycle length repeat questions.`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().String("role", string(interview.RoleSoftwareEngineer), "Role to practice for")
	questionsCmd.Flags().String("mode", string(interview.ModeTechnical), "Question mode: Technical, Behavioral or System Design")
	questionsCmd.Flags().String("domain", "", "Optional focus area, e.g. Python")
	questionsCmd.Flags().Int("count", question.CycleLength, "Number of questions to ask")
	questionsCmd.Flags().Bool("list", false, "Print the questions and exit without prompting")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	roleVal, _ := cmd.Flags().GetString("role")
	modeVal, _ := cmd.Flags().GetString("mode")
	domain, _ := cmd.Flags().GetString("domain")
	count, _ := cmd.Flags().GetInt("count")
	list, _ := cmd.Flags().GetBool("list")

	role, err := parseRole(roleVal)
	if err != nil {
		return err
	}
	mode, err := parseMode(modeVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	if list {
		for i := 0; i < count; i++ {
			fmt.Printf("%d. %s\n", i+1, question.Generate(role, domain, mode, i))
		}
		return nil
	}

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
	evaluator := evaluate.NewService(provider, evaluate.DefaultConfig())

	header := fmt.Sprintf("Role: %s, Mode: %s", role, mode)
	if domain != "" {
		header += ", Domain: " + domain
	}
	fmt.Println(header)
	fmt.Printf("Answering %d questions. Press Enter on an empty line to skip.\n\n", count)

	scanner := bufio.NewScanner(os.Stdin)
	var scores []float64

	for i := 0; i < count; i++ {
		q := question.Generate(role, domain, mode, i)

		fmt.Printf("── Question %d/%d ──\n", i+1, count)
		fmt.Println(q)

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		feedback := evaluator.Evaluate(cmd.Context(), answer, q, mode)
		score := evaluate.ExtractScore(feedback)
		scores = append(scores, score)

		fmt.Printf("\n%s\n", colorScore(score))
		fmt.Println(feedback)
		fmt.Println()
	}

	if len(scores) == 0 {
		fmt.Println("── Summary: nothing answered ──")
	} else {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		avg := sum / float64(len(scores))
		fmt.Printf("── Summary: %d/%d answered, average %.1f/10 ──\n", len(scores), count, avg)
	}

	if u := tracker.Snapshot(); u.Requests > 0 {
		fmt.Printf("LLM usage: %d requests, %d in / %d out tokens, %s\n",
			u.Requests, u.InputTokens, u.OutputTokens, formatCost(u.CostUSD))
	}
	return nil
}

// parseRole matches the flag value against the known roles, ignoring case.
func parseRole(val string) (interview.Role, error) {
	var names []string
	for _, r := range interview.Roles() {
		if strings.EqualFold(val, string(r)) {
			return r, nil
		}
		names = append(names, string(r))
	}
	return "", fmt.Errorf("invalid role %q: must be one of %s", val, strings.Join(names, ", "))
}

func parseMode(val string) (interview.Mode, error) {
	switch strings.ToLower(val) {
	case "technical":
		return interview.ModeTechnical, nil
	case "behavioral":
		return interview.ModeBehavioral, nil
	case "system design", "system-design", "design":
		return interview.ModeSystemDesign, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be Technical, Behavioral or System Design", val)
	}
}

func colorScore(score float64) string {
	s := fmt.Sprintf("Score: %.1f/10", score)
	switch {
	case score >= 8:
		return "\033[32m" + s + "\033[0m"
	case score >= 5:
		return "\033[33m" + s + "\033[0m"
	default:
		return "\033[31m" + s + "\033[0m"
	}
}
