package orchestrator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	nodex "github.com/pumpernickelhq/bakery-assistant/agent/nodes"
	statex "github.com/pumpernickelhq/bakery-assistant/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Config struct {
	CustomerID string
}

// Orchestrator drives the message-handling graph: validate, load session,
// classify intent, dispatch to the bakery services, save session, reply.
type Orchestrator struct {
	store      statex.Store
	classifier contractx.Classifier
	responder  nodex.Responder
	tools      contractx.ToolGateway

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	customerID string

	now func() time.Time
}

func New(
	store statex.Store,
	classifier contractx.Classifier,
	responder nodex.Responder,
	tools contractx.ToolGateway,
	cfg Config,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if classifier == nil {
		return nil, errors.New("intent classifier is required")
	}
	if responder == nil {
		return nil, errors.New("responder is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	customerID := strings.TrimSpace(cfg.CustomerID)
	if customerID == "" {
		customerID = "default-customer"
	}

	o := &Orchestrator{
		store:      store,
		classifier: classifier,
		responder:  responder,
		tools:      tools,
		customerID: customerID,
		now:        time.Now,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage runs one customer message through the graph and returns
// the assistant's reply.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID string, text string) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Tools exposes the deterministic tool gateway for embedders that want to
// run tool requests outside the graph.
func (o *Orchestrator) Tools() contractx.ToolGateway {
	return o.tools
}
