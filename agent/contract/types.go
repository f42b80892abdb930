package contract

// Intent is the classified purpose of a customer message.
type Intent string

const (
	IntentInquiry    Intent = "inquiry"
	IntentOrder      Intent = "order"
	IntentEscalation Intent = "escalation"
)

// Valid reports whether the intent is one of the three known classes.
func (i Intent) Valid() bool {
	switch i {
	case IntentInquiry, IntentOrder, IntentEscalation:
		return true
	}
	return false
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
