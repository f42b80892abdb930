// Package pricing computes order totals and handles the weight unit
// conversions customers ask about.
package pricing

import (
	"errors"
	"fmt"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

// ErrUnknownProduct and ErrUnknownSize mark selection problems in an order
// request; callers match them with errors.Is.
var (
	ErrUnknownProduct = errors.New("pricing: unknown product")
	ErrUnknownSize    = errors.New("pricing: size not offered")
)

// PoundKilogramFactor is the exact pounds-to-kilograms conversion factor.
const PoundKilogramFactor = 0.45359237

// serviceChargeRate is applied to every order subtotal.
const serviceChargeRate = 0.10

// Selection is one requested product in an order.
type Selection struct {
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

// PricedItem is a selection with its resolved prices, formatted in NPR.
type PricedItem struct {
	Product   string `json:"product"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// Total is the full cost breakdown of an order.
type Total struct {
	Items         []PricedItem `json:"items"`
	Subtotal      string       `json:"subtotal"`
	ServiceCharge string       `json:"service_charge"`
	Total         string       `json:"total"`
	Currency      string       `json:"currency"`
}

// OrderTotal prices every selection against the catalog and adds the 10%
// service charge. It fails on the first unknown product or size.
func OrderTotal(selections []Selection) (Total, error) {
	var (
		items    []PricedItem
		subtotal int
	)

	for _, sel := range selections {
		product, ok := knowledge.ProductByName(sel.ProductName)
		if !ok {
			return Total{}, fmt.Errorf("%w: %q", ErrUnknownProduct, sel.ProductName)
		}
		unitPrice, ok := product.PriceFor(sel.Size)
		if !ok {
			return Total{}, fmt.Errorf("%w: %q for %s", ErrUnknownSize, sel.Size, product.Name)
		}

		itemTotal := unitPrice * sel.Quantity
		subtotal += itemTotal
		items = append(items, PricedItem{
			Product:   product.Name,
			Size:      sel.Size,
			Quantity:  sel.Quantity,
			UnitPrice: knowledge.FormatPrice(unitPrice),
			Total:     knowledge.FormatPrice(itemTotal),
		})
	}

	serviceCharge := int(float64(subtotal) * serviceChargeRate)
	return Total{
		Items:         items,
		Subtotal:      knowledge.FormatPrice(subtotal),
		ServiceCharge: knowledge.FormatPrice(serviceCharge),
		Total:         knowledge.FormatPrice(subtotal + serviceCharge),
		Currency:      "NPR",
	}, nil
}

// PoundsToKilograms converts cake weights from pounds to kilograms.
func PoundsToKilograms(pounds float64) float64 {
	return pounds * PoundKilogramFactor
}

// KilogramsToPounds converts cake weights from kilograms to pounds.
func KilogramsToPounds(kilograms float64) float64 {
	return kilograms / PoundKilogramFactor
}
