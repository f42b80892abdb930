package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/pumpernickelhq/bakery-assistant/bakery/inquiry"
)

// ProductInquiryTool answers product questions with generated replies
// grounded in the catalog.
type ProductInquiryTool struct {
	svc *inquiry.Service
}

func NewProductInquiryTool(svc *inquiry.Service) *ProductInquiryTool {
	return &ProductInquiryTool{svc: svc}
}

func (t *ProductInquiryTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name: "handle_product_inquiry",
		Description: "Handle ALL product-related queries including product information and descriptions, " +
			"pricing and size recommendations, allergen information and dietary concerns, product recommendations, " +
			"size estimation for parties, and cake flavors and options.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": stringProp("The customer's product question"),
			},
			Required: []string{"query"},
		},
	}
}

func (t *ProductInquiryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := stringArg(req.GetArguments(), "query")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	answer, err := t.svc.Product(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("product inquiry failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(answer), nil
}

// CompanyInquiryTool answers business and company questions.
type CompanyInquiryTool struct {
	svc *inquiry.Service
}

func NewCompanyInquiryTool(svc *inquiry.Service) *CompanyInquiryTool {
	return &CompanyInquiryTool{svc: svc}
}

func (t *CompanyInquiryTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name: "handle_company_inquiry",
		Description: "Handle ALL business and company-related queries including business information and history, " +
			"operating hours and location, contact information and directions, FAQ responses, ordering process " +
			"and requirements, delivery and pickup options, and payment methods.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": stringProp("The customer's company or business question"),
			},
			Required: []string{"query"},
		},
	}
}

func (t *CompanyInquiryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := stringArg(req.GetArguments(), "query")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	answer, err := t.svc.Company(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("company inquiry failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(answer), nil
}
