package node

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
)

func Dispatch(
	ctx context.Context,
	in *GraphState,
	responder Responder,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	var (
		reply string
		err   error
	)
	switch in.Intent {
	case contractx.IntentInquiry:
		reply, err = responder.Inquiry(ctx, in.Text)
	case contractx.IntentOrder:
		in.Session.AppendDraft(in.Text)
		var placed bool
		reply, placed, err = responder.Order(ctx, in.Session.OrderDraft)
		if err == nil && placed {
			in.Session.ClearDraft()
		}
	case contractx.IntentEscalation:
		reply, err = responder.Escalation(ctx, in.Text)
	default:
		return nil, fmt.Errorf("%w: unknown intent %q", contractx.ErrSchemaViolation, in.Intent)
	}
	if err != nil {
		return nil, err
	}

	in.Message = strings.TrimSpace(reply)
	return in, nil
}
