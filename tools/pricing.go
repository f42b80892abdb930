package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

// itemsArg decodes the [{product_name, size, quantity}] shape the order
// tools accept.
func itemsArg(args map[string]any, key string) ([]pricing.Selection, bool) {
	raw, ok := args[key].([]any)
	if !ok {
		return nil, false
	}
	selections := make([]pricing.Selection, 0, len(raw))
	for _, entry := range raw {
		item, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		selections = append(selections, pricing.Selection{
			ProductName: stringArg(item, "product_name"),
			Size:        stringArg(item, "size"),
			Quantity:    intArg(item, "quantity"),
		})
	}
	return selections, true
}

var itemsProp = map[string]any{
	"type":        "array",
	"description": "Items with format [{\"product_name\": str, \"size\": str, \"quantity\": int}]",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": stringProp("Product name"),
			"size":         stringProp("Size, 5inch or 8inch"),
			"quantity":     integerProp("Quantity"),
		},
		"required": []string{"product_name", "size", "quantity"},
	},
}

// OrderTotalTool prices an order including the service charge.
type OrderTotalTool struct{}

func NewOrderTotalTool() *OrderTotalTool {
	return &OrderTotalTool{}
}

func (t *OrderTotalTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "calculate_order_total",
		Description: "Calculate the total cost of an order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"items": itemsProp},
			Required:   []string{"items"},
		},
	}
}

func (t *OrderTotalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selections, ok := itemsArg(req.GetArguments(), "items")
	if !ok {
		return mcp.NewToolResultError("items must be a list of {product_name, size, quantity} objects"), nil
	}

	total, err := pricing.OrderTotal(selections)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(total)
}

// PoundsToKilogramsTool converts cake weights to metric.
type PoundsToKilogramsTool struct{}

func NewPoundsToKilogramsTool() *PoundsToKilogramsTool {
	return &PoundsToKilogramsTool{}
}

func (t *PoundsToKilogramsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "pounds_to_kilograms",
		Description: "Convert pounds to kilograms.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"pounds": numberProp("Weight in pounds"),
			},
			Required: []string{"pounds"},
		},
	}
}

func (t *PoundsToKilogramsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pounds := floatArg(req.GetArguments(), "pounds")
	return jsonResult(map[string]float64{"kilograms": pricing.PoundsToKilograms(pounds)})
}

// KilogramsToPoundsTool converts metric cake weights to pounds.
type KilogramsToPoundsTool struct{}

func NewKilogramsToPoundsTool() *KilogramsToPoundsTool {
	return &KilogramsToPoundsTool{}
}

func (t *KilogramsToPoundsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "kilograms_to_pounds",
		Description: "Convert kilograms to pounds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"kilograms": numberProp("Weight in kilograms"),
			},
			Required: []string{"kilograms"},
		},
	}
}

func (t *KilogramsToPoundsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kilograms := floatArg(req.GetArguments(), "kilograms")
	return jsonResult(map[string]float64{"pounds": pricing.KilogramsToPounds(kilograms)})
}
