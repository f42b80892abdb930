package node

import (
	"fmt"
	"strings"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Message)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: dispatch returned empty message", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply, Intent: in.Intent}, nil
}
