package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/pumpernickelhq/bakery-assistant/bakery/intake"
)

// OrderTranslatorTool converts a free-form customer inquiry into
// structured order details without persisting anything.
type OrderTranslatorTool struct {
	parser *intake.Parser
}

func NewOrderTranslatorTool(parser *intake.Parser) *OrderTranslatorTool {
	return &OrderTranslatorTool{parser: parser}
}

func (t *OrderTranslatorTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "customer_inquiry_to_order_translator",
		Description: "Translate customer inquiry to order details.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"customer_inquiry": stringProp("Full customer message describing what they want to order"),
			},
			Required: []string{"customer_inquiry"},
		},
	}
}

func (t *OrderTranslatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inquiry := stringArg(req.GetArguments(), "customer_inquiry")
	if inquiry == "" {
		return mcp.NewToolResultError("customer_inquiry is required"), nil
	}

	parsed, err := t.parser.ParseOrder(ctx, inquiry)
	if err != nil {
		log.Error().Err(err).Msg("order translation failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(parsed)
}

// OrderManagerTool places an order once the customer confirms.
type OrderManagerTool struct {
	parser *intake.Parser
}

func NewOrderManagerTool(parser *intake.Parser) *OrderManagerTool {
	return &OrderManagerTool{parser: parser}
}

func (t *OrderManagerTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "order_manager",
		Description: "Manage the order. Places the order when the customer confirms and returns the new order id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"order_details": stringProp("Confirmed order details as text"),
			},
			Required: []string{"order_details"},
		},
	}
}

func (t *OrderManagerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	details := stringArg(req.GetArguments(), "order_details")
	if details == "" {
		return mcp.NewToolResultError("order_details is required"), nil
	}

	orderID, err := t.parser.CreateFromText(ctx, details)
	if err != nil {
		log.Error().Err(err).Msg("order placement failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{"order_id": orderID})
}

// OrderCompleteTool answers whether an order draft carries every
// required detail.
type OrderCompleteTool struct {
	parser *intake.Parser
}

func NewOrderCompleteTool(parser *intake.Parser) *OrderCompleteTool {
	return &OrderCompleteTool{parser: parser}
}

func (t *OrderCompleteTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "order_are_order_details_complete",
		Description: "Check if all required order details are available. Returns true or false.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"customer_order_details": stringProp("Order details collected so far"),
			},
			Required: []string{"customer_order_details"},
		},
	}
}

func (t *OrderCompleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	details := stringArg(req.GetArguments(), "customer_order_details")
	if details == "" {
		return mcp.NewToolResultError("customer_order_details is required"), nil
	}

	complete, err := t.parser.DetailsComplete(ctx, details)
	if err != nil {
		log.Error().Err(err).Msg("completeness check failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strconv.FormatBool(complete)), nil
}
