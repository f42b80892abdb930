package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

const (
	ToolCatalogSearch    = "catalog.search"
	ToolCatalogRecommend = "catalog.recommend"
	ToolAllergenCheck    = "allergen.check"
	ToolOrderTotal       = "order.total"
	ToolWeightConvert    = "weight.convert"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Build returns the deterministic tool catalog together with its executor.
func Build() ([]*schema.ToolInfo, Executor) {
	return infos(), NewExecutor()
}

func NewExecutor() Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolCatalogSearch:
			return executeSearch(tool, args)
		case ToolCatalogRecommend:
			return executeRecommend(tool, args)
		case ToolAllergenCheck:
			return executeAllergenCheck(tool, args)
		case ToolOrderTotal:
			return executeOrderTotal(tool, args)
		case ToolWeightConvert:
			return executeWeightConvert(tool, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is unavailable", tool),
			}, nil
		}
	}
}

// Gateway adapts an Executor to the contract.ToolGateway interface.
type Gateway struct {
	exec Executor
}

func NewGateway() *Gateway {
	return &Gateway{exec: NewExecutor()}
}

func (g *Gateway) Execute(ctx context.Context, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := g.exec(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolCatalogSearch,
			Desc: "Search the product catalog by keyword, category, and price range.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query":     {Type: schema.String, Desc: "Keyword matched against names and descriptions"},
				"category":  {Type: schema.String, Desc: "chocolate_cake, cheesecake, specialty_cake, or seasonal"},
				"max_price": {Type: schema.Integer, Desc: "Maximum 8inch price in NPR (0 = no limit)"},
				"min_price": {Type: schema.Integer, Desc: "Minimum 8inch price in NPR (0 = no limit)"},
			}),
		},
		{
			Name: ToolCatalogRecommend,
			Desc: "Recommend products for the customer's preferences, budget, and occasion.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"preferences": {Type: schema.String, Desc: "Customer preferences, e.g. chocolate, fruity, coffee"},
				"budget":      {Type: schema.Integer, Desc: "Budget in NPR (0 = no limit)"},
				"occasion":    {Type: schema.String, Desc: "birthday, anniversary, casual, ..."},
			}),
		},
		{
			Name: ToolAllergenCheck,
			Desc: "Check allergen information for a product, optionally for a specific allergen.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_name": {Type: schema.String, Desc: "Product to check", Required: true},
				"allergen":     {Type: schema.String, Desc: "Specific allergen to look for"},
			}),
		},
		{
			Name: ToolOrderTotal,
			Desc: "Price an order including the 10% service charge.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"items": {
					Type:     schema.Array,
					Desc:     "Selections as {product_name, size, quantity}",
					Required: true,
					ElemInfo: &schema.ParameterInfo{Type: schema.Object},
				},
			}),
		},
		{
			Name: ToolWeightConvert,
			Desc: "Convert cake weights between pounds and kilograms.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"value": {Type: schema.Number, Desc: "Weight to convert", Required: true},
				"unit":  {Type: schema.String, Desc: "Unit of value: pounds or kilograms", Required: true},
			}),
		},
	}
}

func executeSearch(tool string, args map[string]any) (contractx.ToolResult, error) {
	filter := knowledge.SearchFilter{
		Query:    stringArg(args, "query"),
		Category: knowledge.Category(stringArg(args, "category")),
		MinPrice: intArg(args, "min_price"),
		MaxPrice: intArg(args, "max_price"),
	}
	return contractx.ToolResult{Tool: tool, Result: knowledge.Search(filter)}, nil
}

func executeRecommend(tool string, args map[string]any) (contractx.ToolResult, error) {
	recs := knowledge.Recommend(
		stringArg(args, "preferences"),
		intArg(args, "budget"),
		stringArg(args, "occasion"),
	)
	return contractx.ToolResult{Tool: tool, Result: recs}, nil
}

func executeAllergenCheck(tool string, args map[string]any) (contractx.ToolResult, error) {
	productName := stringArg(args, "product_name")
	if productName == "" {
		return contractx.ToolResult{Tool: tool, Result: knowledge.AllergensAcrossCatalog()}, nil
	}
	report, err := knowledge.CheckAllergen(productName, stringArg(args, "allergen"))
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: report}, nil
}

func executeOrderTotal(tool string, args map[string]any) (contractx.ToolResult, error) {
	rawItems, ok := args["items"].([]any)
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "items must be a list"}, nil
	}
	selections := make([]pricing.Selection, 0, len(rawItems))
	for _, raw := range rawItems {
		item, ok := raw.(map[string]any)
		if !ok {
			return contractx.ToolResult{Tool: tool, Error: "each item must be an object"}, nil
		}
		selections = append(selections, pricing.Selection{
			ProductName: stringArg(item, "product_name"),
			Size:        stringArg(item, "size"),
			Quantity:    intArg(item, "quantity"),
		})
	}
	total, err := pricing.OrderTotal(selections)
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: total}, nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// intArg accepts both int and float64 since decoded JSON numbers arrive as
// float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
