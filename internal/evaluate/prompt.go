package evaluate

import "fmt"

const evaluationPromptFormat = `Briefly evaluate this interview answer. Keep it short and simple.
Question: %s
Answer: %s

Give a score out of 10 and 2-3 sentences of feedback. Format as:
Score: X/10
[Your brief feedback here]`

func buildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(evaluationPromptFormat, question, answer)
}
