// Package fulfillment handles the customer-facing side of a confirmed
// order: validating the submitted details, pickup reminders, and delivery
// scheduling.
package fulfillment

import (
	"errors"
	"strings"
)

// ErrIncomplete marks a details submission that is missing required fields.
var ErrIncomplete = errors.New("fulfillment: missing required fields")

// Details is everything the customer supplies when confirming an order.
type Details struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	ItemOrdered       string `json:"item_ordered"`
	ContactNumber     string `json:"contact_number"`
	AlternativeNumber string `json:"alternative_number"`
	DeliveryOrPickup  string `json:"delivery_or_pickup"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	PaymentMethod     string `json:"payment_method"`
	MessageOnCake     string `json:"message_on_cake"`
}

// Summary is a validated order ready for confirmation. Address is "N/A"
// for pickup orders, and PaymentLink is set when the payment method has a
// known checkout page.
type Summary struct {
	Details
	PaymentLink string `json:"payment_link,omitempty"`
}

var paymentLinks = map[string]string{
	"fonepay qr": "https://fonepay.com/qr",
	"stripe":     "https://stripe.com/pay",
	"khalti":     "https://khalti.com/",
}

// ValidateDetails checks a submission against the order requirements and
// returns either a confirmed summary or ErrIncomplete together with one
// message per missing field.
func ValidateDetails(d Details) (Summary, []string, error) {
	var problems []string
	if d.Name == "" {
		problems = append(problems, "Name is required.")
	}
	if d.ItemOrdered == "" {
		problems = append(problems, "Item ordered is required.")
	}
	if d.ContactNumber == "" {
		problems = append(problems, "Contact number is required.")
	}
	if d.DeliveryOrPickup == "" {
		problems = append(problems, "Please specify delivery or pickup.")
	}
	if d.Date == "" {
		problems = append(problems, "Date is required.")
	}
	if d.Time == "" {
		problems = append(problems, "Time is required.")
	}
	isDelivery := strings.EqualFold(d.DeliveryOrPickup, "delivery")
	if isDelivery && d.Address == "" {
		problems = append(problems, "Address is required for delivery.")
	}
	if d.PaymentMethod == "" {
		problems = append(problems, "Payment method is required.")
	}
	if len(problems) > 0 {
		return Summary{}, problems, ErrIncomplete
	}

	summary := Summary{Details: d}
	if !isDelivery {
		summary.Address = "N/A"
	}
	summary.PaymentLink = paymentLinks[strings.ToLower(d.PaymentMethod)]
	return summary, nil, nil
}
