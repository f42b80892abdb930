package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

// ProductCatalogTool returns the raw catalog.
type ProductCatalogTool struct{}

func NewProductCatalogTool() *ProductCatalogTool {
	return &ProductCatalogTool{}
}

func (t *ProductCatalogTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_product_catalog",
		Description: "Get the product catalog.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	}
}

func (t *ProductCatalogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(knowledge.Catalog())
}

// FullMenuTool returns every product with a total count.
type FullMenuTool struct{}

func NewFullMenuTool() *FullMenuTool {
	return &FullMenuTool{}
}

func (t *FullMenuTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name: "get_full_menu",
		Description: "Get the complete menu with all available products, including prices, descriptions, " +
			"and allergen information.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	}
}

func (t *FullMenuTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	products := knowledge.Catalog()
	return jsonResult(map[string]any{
		"products":       products,
		"total_products": len(products),
	})
}

// SearchProductsTool filters the catalog by query, category, and price.
type SearchProductsTool struct{}

func NewSearchProductsTool() *SearchProductsTool {
	return &SearchProductsTool{}
}

func (t *SearchProductsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "search_products",
		Description: "Search products by name, category, or price range.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query":     stringProp("Search term to match against product names and descriptions"),
				"category":  stringProp("Filter by category (chocolate_cake, cheesecake, specialty_cake, seasonal)"),
				"max_price": integerProp("Maximum price filter (0 = no limit)"),
				"min_price": integerProp("Minimum price filter (0 = no limit)"),
			},
		},
	}
}

func (t *SearchProductsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	filter := knowledge.SearchFilter{
		Query:    stringArg(args, "query"),
		Category: knowledge.Category(stringArg(args, "category")),
		MinPrice: intArg(args, "min_price"),
		MaxPrice: intArg(args, "max_price"),
	}

	results := knowledge.Search(filter)

	priceRange := "any"
	if filter.MinPrice != 0 || filter.MaxPrice != 0 {
		priceRange = fmt.Sprintf("%d-%d", filter.MinPrice, filter.MaxPrice)
	}
	return jsonResult(map[string]any{
		"results":     results,
		"total_found": len(results),
		"search_criteria": map[string]any{
			"query":       filter.Query,
			"category":    filter.Category,
			"price_range": priceRange,
		},
	})
}

// ProductDetailsTool returns one product with formatted pricing.
type ProductDetailsTool struct{}

func NewProductDetailsTool() *ProductDetailsTool {
	return &ProductDetailsTool{}
}

func (t *ProductDetailsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_product_details",
		Description: "Get detailed information about a specific product.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"product_name": stringProp("Name of the product to get details for"),
			},
			Required: []string{"product_name"},
		},
	}
}

func (t *ProductDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req.GetArguments(), "product_name")
	product, ok := knowledge.ProductByName(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Product '%s' not found", name)), nil
	}

	availability := "Available"
	if !product.Available {
		availability = "Currently unavailable"
	}
	return jsonResult(map[string]any{
		"product": product,
		"pricing": map[string]string{
			"8inch": knowledge.FormatPrice(product.Sizes[knowledge.SizeLarge]),
			"5inch": knowledge.FormatPrice(product.Sizes[knowledge.SizeSmall]),
		},
		"availability": availability,
	})
}

// RecommendationsTool scores the catalog against customer preferences.
type RecommendationsTool struct{}

func NewRecommendationsTool() *RecommendationsTool {
	return &RecommendationsTool{}
}

func (t *RecommendationsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get personalized product recommendations based on preferences, budget, and occasion.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"preferences": stringProp("Customer preferences, e.g. chocolate, fruity, coffee"),
				"budget":      integerProp("Budget in NPR (0 = no budget limit)"),
				"occasion":    stringProp("Special occasion, e.g. birthday, anniversary, casual"),
			},
		},
	}
}

func (t *RecommendationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	preferences := stringArg(args, "preferences")
	budget := intArg(args, "budget")
	occasion := stringArg(args, "occasion")

	return jsonResult(map[string]any{
		"recommendations": knowledge.Recommend(preferences, budget, occasion),
		"criteria": map[string]any{
			"preferences": preferences,
			"budget":      budget,
			"occasion":    occasion,
		},
	})
}
