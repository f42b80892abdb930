package intake

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pumpernickelhq/bakery-assistant/bakery/orderstore"
)

type fakeGenerator struct {
	reply string
	err   error

	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

const orderJSON = `{
	"order": {
		"name": "Asha Shrestha",
		"address": "Thamel, Kathmandu",
		"user_id": "u1",
		"contact_number": "+977 9800000000",
		"date": "2026-09-05",
		"time": "15:00",
		"item_ordered": "Triple Chocolate Cake",
		"delivery_notes": "",
		"order_type": "delivery"
	},
	"order_line_items": [
		{"item_name": "Triple Chocolate Cake", "quantity": 1, "price": 1950}
	]
}`

func TestParseOrder(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: orderJSON}
	p := NewParser(gen, nil)

	parsed, err := p.ParseOrder(context.Background(), "one triple chocolate cake delivered to Thamel")
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}
	if parsed.Order.Name != "Asha Shrestha" {
		t.Fatalf("order name = %q", parsed.Order.Name)
	}
	if len(parsed.LineItems) != 1 || parsed.LineItems[0].Price != 1950 {
		t.Fatalf("line items = %+v", parsed.LineItems)
	}
	if !strings.Contains(gen.lastPrompt, "one triple chocolate cake delivered to Thamel") {
		t.Fatal("prompt missing customer text")
	}
}

func TestParseOrderToleratesFencedJSON(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: "```json\n" + orderJSON + "\n```"}
	p := NewParser(gen, nil)

	parsed, err := p.ParseOrder(context.Background(), "order text")
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}
	if parsed.Order.UserID != "u1" {
		t.Fatalf("user id = %q", parsed.Order.UserID)
	}
}

func TestParseOrderRejectsProse(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: "Sure! Here is your order."}
	p := NewParser(gen, nil)

	_, err := p.ParseOrder(context.Background(), "order text")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
}

func TestParseOrderPropagatesModelError(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{err: errors.New("model down")}
	p := NewParser(gen, nil)

	if _, err := p.ParseOrder(context.Background(), "order text"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreateFromText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := orderstore.NewCSVStore(filepath.Join(t.TempDir(), "orders.csv"))
	p := NewParser(&fakeGenerator{reply: orderJSON}, store)

	id, err := p.CreateFromText(ctx, "one triple chocolate cake")
	if err != nil {
		t.Fatalf("CreateFromText() error = %v", err)
	}
	detail, err := store.GetWithLineItems(ctx, id)
	if err != nil {
		t.Fatalf("GetWithLineItems() error = %v", err)
	}
	if detail.Order.ItemOrdered != "Triple Chocolate Cake" {
		t.Fatalf("stored order = %+v", detail.Order)
	}
	if len(detail.LineItems) != 1 {
		t.Fatalf("stored line items = %+v", detail.LineItems)
	}
}

func TestDetailsComplete(t *testing.T) {
	t.Parallel()
	cases := []struct {
		reply   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"False", false, false},
		{"True.", true, false},
		{"The answer is false", false, false},
		{"maybe", false, true},
	}
	for _, tc := range cases {
		p := NewParser(&fakeGenerator{reply: tc.reply}, nil)
		got, err := p.DetailsComplete(context.Background(), "some details")
		if tc.wantErr {
			if !errors.Is(err, ErrParse) {
				t.Fatalf("reply %q: error = %v, want ErrParse", tc.reply, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("reply %q: error = %v", tc.reply, err)
		}
		if got != tc.want {
			t.Fatalf("reply %q: got %v, want %v", tc.reply, got, tc.want)
		}
	}
}

func TestDescribeInquiryIncludesCatalog(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: "  Tiramisu, 5inch, Rs. 1,450  "}
	p := NewParser(gen, nil)

	reply, err := p.DescribeInquiry(context.Background(), "do you have tiramisu?")
	if err != nil {
		t.Fatalf("DescribeInquiry() error = %v", err)
	}
	if reply != "Tiramisu, 5inch, Rs. 1,450" {
		t.Fatalf("reply = %q", reply)
	}
	if !strings.Contains(gen.lastPrompt, "Mango Mousse") {
		t.Fatal("prompt missing catalog entries")
	}
	if !strings.Contains(gen.lastPrompt, "do you have tiramisu?") {
		t.Fatal("prompt missing inquiry")
	}
}
