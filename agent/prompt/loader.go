package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/intent.txt
	intentRaw string

	//go:embed template/escalation.txt
	escalationRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	// Intent classifies a customer message; takes the message as its one
	// format argument.
	Intent string
	// Escalation is the canned hand-off reply; takes phone and WhatsApp
	// contact as format arguments.
	Escalation string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Intent:     strings.TrimSpace(intentRaw),
		Escalation: strings.TrimSpace(escalationRaw),
	}
}
