package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

const requirementsURI = "bakery://order/requirements"

// RequirementsResource exposes the order information requirements as a
// readable MCP resource.
type RequirementsResource struct{}

func NewRequirementsResource() *RequirementsResource {
	return &RequirementsResource{}
}

func (r *RequirementsResource) Definition() mcp.Resource {
	return mcp.NewResource(
		requirementsURI,
		"order_information_requirements",
		mcp.WithResourceDescription("Information required from a customer to place an order."),
		mcp.WithMIMEType("application/json"),
	)
}

func (r *RequirementsResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(knowledge.Requirements())
	if err != nil {
		return nil, fmt.Errorf("encoding order requirements: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      requirementsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
