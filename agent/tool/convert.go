package tool

import (
	"strings"

	contractx "github.com/pumpernickelhq/bakery-assistant/agent/contract"
	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

type WeightConvertOutput struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Converted float64 `json:"converted"`
	ToUnit    string  `json:"to_unit"`
}

func executeWeightConvert(tool string, args map[string]any) (contractx.ToolResult, error) {
	rawValue, ok := args["value"]
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "value is required"}, nil
	}
	value, ok := floatArg(rawValue)
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "value must be a number"}, nil
	}

	unit := strings.ToLower(strings.TrimSpace(stringArg(args, "unit")))
	var out WeightConvertOutput
	switch unit {
	case "pounds", "lb", "lbs":
		out = WeightConvertOutput{
			Value:     value,
			Unit:      "pounds",
			Converted: pricing.PoundsToKilograms(value),
			ToUnit:    "kilograms",
		}
	case "kilograms", "kg":
		out = WeightConvertOutput{
			Value:     value,
			Unit:      "kilograms",
			Converted: pricing.KilogramsToPounds(value),
			ToUnit:    "pounds",
		}
	default:
		return contractx.ToolResult{Tool: tool, Error: "unit must be pounds or kilograms"}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: out}, nil
}

func floatArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
