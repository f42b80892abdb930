package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestOrderTotal(t *testing.T) {
	t.Parallel()
	total, err := OrderTotal([]Selection{
		{ProductName: "Triple Chocolate Cake", Size: "8inch", Quantity: 2},
		{ProductName: "Tiramisu", Size: "5inch", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("OrderTotal() error = %v", err)
	}

	// 2*1950 + 1450 = 5350; service charge 535; total 5885.
	if total.Subtotal != "Rs. 5,350" {
		t.Fatalf("subtotal = %q", total.Subtotal)
	}
	if total.ServiceCharge != "Rs. 535" {
		t.Fatalf("service charge = %q", total.ServiceCharge)
	}
	if total.Total != "Rs. 5,885" {
		t.Fatalf("total = %q", total.Total)
	}
	if total.Currency != "NPR" {
		t.Fatalf("currency = %q", total.Currency)
	}
	if len(total.Items) != 2 {
		t.Fatalf("got %d items", len(total.Items))
	}
	if total.Items[0].UnitPrice != "Rs. 1,950" || total.Items[0].Total != "Rs. 3,900" {
		t.Fatalf("item 0 = %+v", total.Items[0])
	}
}

func TestOrderTotalUnknownProduct(t *testing.T) {
	t.Parallel()
	_, err := OrderTotal([]Selection{{ProductName: "Croissant", Size: "8inch", Quantity: 1}})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("error = %v, want ErrUnknownProduct", err)
	}
}

func TestOrderTotalUnknownSize(t *testing.T) {
	t.Parallel()
	_, err := OrderTotal([]Selection{{ProductName: "Tiramisu", Size: "12inch", Quantity: 1}})
	if !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("error = %v, want ErrUnknownSize", err)
	}
}

func TestOrderTotalEmpty(t *testing.T) {
	t.Parallel()
	total, err := OrderTotal(nil)
	if err != nil {
		t.Fatalf("OrderTotal(nil) error = %v", err)
	}
	if total.Total != "Rs. 0" {
		t.Fatalf("empty order total = %q", total.Total)
	}
}

func TestWeightConversionsRoundTrip(t *testing.T) {
	t.Parallel()
	if got := PoundsToKilograms(1); math.Abs(got-0.45359237) > 1e-12 {
		t.Fatalf("PoundsToKilograms(1) = %v", got)
	}
	if got := KilogramsToPounds(PoundsToKilograms(2.5)); math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("round trip = %v", got)
	}
}
