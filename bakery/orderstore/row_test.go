package orderstore

import "testing"

func TestExtractLineItems(t *testing.T) {
	t.Parallel()
	row := Row{
		"order_id":         "o1",
		"item_name_line_1": "Tiramisu",
		"quantity_line_1":  "2",
		"price_line_1":     "1450.5",
		"item_name_line_2": "Mango Mousse",
		"quantity_line_2":  "1",
		"price_line_2":     "2250",
	}
	items := ExtractLineItems(row)
	want := []LineItem{
		{ItemName: "Tiramisu", Quantity: 2, Price: 1450.5},
		{ItemName: "Mango Mousse", Quantity: 1, Price: 2250},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestExtractLineItemsDropsEmptySuffix(t *testing.T) {
	t.Parallel()
	row := Row{
		"order_id":         "o1",
		"item_name_line_1": "Tiramisu",
		"quantity_line_1":  "2",
		"price_line_1":     "1450",
		"item_name_line_2": "",
		"quantity_line_2":  "",
		"price_line_2":     "",
	}
	items := ExtractLineItems(row)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestExtractLineItemsPartialSuffix(t *testing.T) {
	t.Parallel()
	row := Row{
		"item_name_line_1": "Tiramisu",
		"quantity_line_1":  "",
		"price_line_1":     "",
	}
	items := ExtractLineItems(row)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].ItemName != "Tiramisu" || items[0].Quantity != 0 || items[0].Price != 0 {
		t.Fatalf("partial item = %+v", items[0])
	}
}

func TestExtractLineItemsIgnoresMalformedSuffix(t *testing.T) {
	t.Parallel()
	row := Row{
		"item_name_line_x":   "bogus",
		"item_name_line_":    "bogus",
		"quantity_line_1abc": "bogus",
		"item_name_line_1":   "Real",
		"quantity_line_1":    "1",
		"price_line_1":       "10",
	}
	items := ExtractLineItems(row)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].ItemName != "Real" {
		t.Fatalf("item = %+v", items[0])
	}
}

func TestExtractLineItemsSortsSuffixesNumerically(t *testing.T) {
	t.Parallel()
	row := Row{
		"item_name_line_10": "Tenth",
		"item_name_line_2":  "Second",
		"item_name_line_1":  "First",
	}
	items := ExtractLineItems(row)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	names := []string{items[0].ItemName, items[1].ItemName, items[2].ItemName}
	if names[0] != "First" || names[1] != "Second" || names[2] != "Tenth" {
		t.Fatalf("order = %v", names)
	}
}

func TestParseQuantityTruncatesFloats(t *testing.T) {
	t.Parallel()
	row := Row{
		"item_name_line_1": "Cake",
		"quantity_line_1":  "2.0",
		"price_line_1":     "100",
	}
	items := ExtractLineItems(row)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("items = %+v", items)
	}
}

func TestParseNumbersToleratesGarbage(t *testing.T) {
	t.Parallel()
	row := Row{
		"item_name_line_1": "Cake",
		"quantity_line_1":  "two",
		"price_line_1":     "cheap",
	}
	items := ExtractLineItems(row)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Quantity != 0 || items[0].Price != 0 {
		t.Fatalf("garbage numbers parsed to %+v", items[0])
	}
}

func TestIsLineColumn(t *testing.T) {
	t.Parallel()
	cases := []struct {
		col  string
		want bool
	}{
		{"item_name_line_1", true},
		{"quantity_line_12", true},
		{"price_line_3", true},
		{"order_id", false},
		{"delivery_notes", false},
		{"item_name_line_", false},
		{"item_name_line_x", false},
	}
	for _, tc := range cases {
		if got := IsLineColumn(tc.col); got != tc.want {
			t.Fatalf("IsLineColumn(%q) = %v, want %v", tc.col, got, tc.want)
		}
	}
}
