package node

import (
	"context"
	"fmt"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
)

func ClassifyIntent(
	ctx context.Context,
	in *GraphState,
	classifier contractx.Classifier,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	intent, err := classifier.Classify(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	if !intent.Valid() {
		return nil, fmt.Errorf("%w: unknown intent %q", contractx.ErrSchemaViolation, intent)
	}

	in.Intent = intent
	return in, nil
}
