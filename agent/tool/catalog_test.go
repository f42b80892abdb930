package tool

import (
	"context"
	"math"
	"testing"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

func TestBuildCatalogAndExecutorAgree(t *testing.T) {
	t.Parallel()
	infos, exec := Build()
	if len(infos) != 5 {
		t.Fatalf("got %d tool infos", len(infos))
	}
	for _, info := range infos {
		res, err := exec(context.Background(), info.Name, map[string]any{})
		if err != nil {
			t.Fatalf("exec(%s) error = %v", info.Name, err)
		}
		if res.Error == "tool="+info.Name+" is unavailable" {
			t.Fatalf("declared tool %s has no executor", info.Name)
		}
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()
	res, err := exec(context.Background(), "nope", nil)
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	if res.Error == "" {
		t.Fatal("expected error result for unknown tool")
	}
}

func TestExecuteSearch(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()
	res, err := exec(context.Background(), ToolCatalogSearch, map[string]any{
		"query":     "chocolate",
		"max_price": float64(2000),
	})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	products, ok := res.Result.([]knowledge.Product)
	if !ok {
		t.Fatalf("result type %T", res.Result)
	}
	if len(products) == 0 {
		t.Fatal("no matches")
	}
	for _, p := range products {
		if p.Sizes[knowledge.SizeLarge] > 2000 {
			t.Fatalf("price filter leaked %s", p.Name)
		}
	}
}

func TestExecuteRecommend(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()
	res, err := exec(context.Background(), ToolCatalogRecommend, map[string]any{
		"preferences": "coffee",
	})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	recs, ok := res.Result.([]knowledge.Recommendation)
	if !ok {
		t.Fatalf("result type %T", res.Result)
	}
	if len(recs) == 0 || recs[0].Product.Name != "Tiramisu" {
		t.Fatalf("recommendations = %+v", recs)
	}
}

func TestExecuteAllergenCheck(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()

	res, err := exec(context.Background(), ToolAllergenCheck, map[string]any{
		"product_name": "Snickers Delight",
		"allergen":     "peanuts",
	})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	report, ok := res.Result.(knowledge.AllergenReport)
	if !ok {
		t.Fatalf("result type %T", res.Result)
	}
	if report.Specific == nil || !report.Specific.Present {
		t.Fatalf("peanuts not flagged: %+v", report)
	}

	// No product name falls back to the catalog-wide summary.
	res, err = exec(context.Background(), ToolAllergenCheck, map[string]any{})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	if _, ok := res.Result.(knowledge.AllergenSummary); !ok {
		t.Fatalf("summary type %T", res.Result)
	}
}

func TestExecuteOrderTotal(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()
	res, err := exec(context.Background(), ToolOrderTotal, map[string]any{
		"items": []any{
			map[string]any{"product_name": "Tiramisu", "size": "8inch", "quantity": float64(2)},
		},
	})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	total, ok := res.Result.(pricing.Total)
	if !ok {
		t.Fatalf("result type %T (error %q)", res.Result, res.Error)
	}
	// 2*1950 = 3900 + 390 = 4290
	if total.Total != "Rs. 4,290" {
		t.Fatalf("total = %q", total.Total)
	}
}

func TestExecuteOrderTotalBadArgs(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()
	res, err := exec(context.Background(), ToolOrderTotal, map[string]any{"items": "nope"})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	if res.Error == "" {
		t.Fatal("expected argument error")
	}
}

func TestExecuteWeightConvert(t *testing.T) {
	t.Parallel()
	exec := NewExecutor()

	res, err := exec(context.Background(), ToolWeightConvert, map[string]any{
		"value": float64(1),
		"unit":  "pounds",
	})
	if err != nil {
		t.Fatalf("exec() error = %v", err)
	}
	out, ok := res.Result.(WeightConvertOutput)
	if !ok {
		t.Fatalf("result type %T (error %q)", res.Result, res.Error)
	}
	if math.Abs(out.Converted-0.45359237) > 1e-12 {
		t.Fatalf("converted = %v", out.Converted)
	}

	res, _ = exec(context.Background(), ToolWeightConvert, map[string]any{
		"value": float64(1),
		"unit":  "stone",
	})
	if res.Error == "" {
		t.Fatal("expected error for unknown unit")
	}
}

func TestGatewayExecutesInOrder(t *testing.T) {
	t.Parallel()
	gw := NewGateway()
	results, err := gw.Execute(context.Background(), []contractx.ToolRequest{
		{Tool: ToolCatalogSearch, Args: map[string]any{"query": "tiramisu"}},
		{Tool: ToolWeightConvert, Args: map[string]any{"value": float64(2), "unit": "kg"}},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Tool != ToolCatalogSearch || results[1].Tool != ToolWeightConvert {
		t.Fatalf("results = %+v", results)
	}
}
