package contract

import "context"

// Classifier labels a customer message with one of the intent classes.
type Classifier interface {
	Classify(ctx context.Context, message string) (Intent, error)
}

// ToolGateway executes tool requests on behalf of the agent.
type ToolGateway interface {
	Execute(ctx context.Context, reqs []ToolRequest) ([]ToolResult, error)
}
