package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

// BusinessInfoTool returns the bakery profile with live open status.
type BusinessInfoTool struct{}

func NewBusinessInfoTool() *BusinessInfoTool {
	return &BusinessInfoTool{}
}

func (t *BusinessInfoTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_business_info",
		Description: "Get complete business information including hours, location, and contact details.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	}
}

func (t *BusinessInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := knowledge.Business()
	return jsonResult(map[string]any{
		"name":        info.Name,
		"established": info.Established,
		"tagline":     info.Tagline,
		"location":    info.Location,
		"address":     info.Address,
		"contact": map[string]string{
			"phone":    info.Phone,
			"whatsapp": info.WhatsApp,
			"email":    info.Email,
		},
		"hours":          info.Hours,
		"maps_link":      info.MapsLink,
		"currently_open": knowledge.IsOpen(time.Now()),
		"about":          info.About,
	})
}

// ContactOptionsTool lists every way to reach the bakery.
type ContactOptionsTool struct{}

func NewContactOptionsTool() *ContactOptionsTool {
	return &ContactOptionsTool{}
}

func (t *ContactOptionsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_contact_options",
		Description: "Get all available contact methods for the bakery.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	}
}

func (t *ContactOptionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(knowledge.Contact())
}

// FAQTool returns the canned question and answer list.
type FAQTool struct{}

func NewFAQTool() *FAQTool {
	return &FAQTool{}
}

func (t *FAQTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_faq",
		Description: "Get frequently asked questions and answers.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	}
}

func (t *FAQTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(knowledge.FrequentlyAsked())
}

// AllergenTool reports allergen data for one product or the whole catalog.
type AllergenTool struct{}

func NewAllergenTool() *AllergenTool {
	return &AllergenTool{}
}

func (t *AllergenTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "check_allergen_info",
		Description: "Check allergen information for a specific product or all products.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"product_name": stringProp("Name of the product to check allergens for. Empty for a catalog-wide summary."),
				"allergen":     stringProp("Specific allergen to check for (optional)"),
			},
		},
	}
}

func (t *AllergenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	productName := stringArg(args, "product_name")
	allergen := stringArg(args, "allergen")

	if productName == "" {
		return jsonResult(knowledge.AllergensAcrossCatalog())
	}

	report, err := knowledge.CheckAllergen(productName, allergen)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Product '%s' not found", productName)), nil
	}
	return jsonResult(report)
}
