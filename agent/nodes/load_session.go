package node

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	statex "github.com/pumpernickelhq/bakery-assistant/agent/state"
)

func LoadSession(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
	customerID string,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := store.Load(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return nil, err
		}
		st = statex.NewSessionState(in.SessionID, customerID, in.Now)
	}
	in.Session = st
	return in, nil
}
