package orchestrator

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	promptx "github.com/pumpernickelhq/bakery-assistant/agent/prompt"
)

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IntentClassifier labels customer messages with the model, using the
// delegation-manager prompt.
type IntentClassifier struct {
	gen     Generator
	prompts promptx.PromptSet
}

func NewIntentClassifier(gen Generator) *IntentClassifier {
	return &IntentClassifier{gen: gen, prompts: promptx.LoadPromptSet()}
}

func (c *IntentClassifier) Classify(ctx context.Context, message string) (contractx.Intent, error) {
	raw, err := c.gen.Generate(ctx, fmt.Sprintf(c.prompts.Intent, message))
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}

	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty classification", contractx.ErrSchemaViolation)
	}

	intent := contractx.Intent(strings.Trim(fields[0], ".,!\"'`"))
	if !intent.Valid() {
		return "", fmt.Errorf("%w: unknown intent %q", contractx.ErrSchemaViolation, raw)
	}
	return intent, nil
}
