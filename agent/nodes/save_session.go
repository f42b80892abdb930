package node

import (
	"context"
	"fmt"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	statex "github.com/pumpernickelhq/bakery-assistant/agent/state"
)

func SaveSession(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.LastIntent = string(in.Intent)
	in.Session.Touch(in.Now)
	if err := in.Session.Validate(); err != nil {
		return nil, err
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}
