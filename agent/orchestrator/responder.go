package orchestrator

import (
	"context"
	"fmt"
	"strings"

	promptx "github.com/pumpernickelhq/bakery-assistant/agent/prompt"
	"github.com/pumpernickelhq/bakery-assistant/bakery/inquiry"
	"github.com/pumpernickelhq/bakery-assistant/bakery/intake"
	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

// BakeryResponder answers classified messages with the bakery services:
// inquiries go to the knowledge-grounded inquiry service, orders run
// through the intake parser, escalations get the canned hand-off reply.
type BakeryResponder struct {
	inquiries *inquiry.Service
	parser    *intake.Parser
	prompts   promptx.PromptSet
}

func NewBakeryResponder(inquiries *inquiry.Service, parser *intake.Parser) *BakeryResponder {
	return &BakeryResponder{
		inquiries: inquiries,
		parser:    parser,
		prompts:   promptx.LoadPromptSet(),
	}
}

// Inquiry routes product-sounding questions to the product prompt and
// everything else to the company prompt.
func (r *BakeryResponder) Inquiry(ctx context.Context, message string) (string, error) {
	if mentionsProduct(message) {
		return r.inquiries.Product(ctx, message)
	}
	return r.inquiries.Company(ctx, message)
}

// Order checks whether the draft carries every required detail. A complete
// draft is placed immediately; otherwise the customer is asked for the
// rest.
func (r *BakeryResponder) Order(ctx context.Context, draft string) (string, bool, error) {
	complete, err := r.parser.DetailsComplete(ctx, draft)
	if err != nil {
		return "", false, err
	}
	if !complete {
		return "Almost there! To place your order I still need a few details: " +
			"your name, contact number, the item ordered, delivery or pickup, " +
			"preferred date and time, and a payment method (Fonepay QR, Stripe, or Khalti). " +
			"For delivery, please include your address too.", false, nil
	}

	orderID, err := r.parser.CreateFromText(ctx, draft)
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Your order has been placed! Your order id is %s. "+
		"Thank you for choosing Pumpernickel Bakery.", orderID), true, nil
}

func (r *BakeryResponder) Escalation(_ context.Context, _ string) (string, error) {
	info := knowledge.Business()
	return fmt.Sprintf(r.prompts.Escalation, info.Phone, info.WhatsApp), nil
}

// productWords are the cues that a question is about the cakes themselves
// rather than the business.
var productWords = []string{
	"cake", "cheesecake", "brownie", "tiramisu", "mousse", "flavor", "flavour",
	"price", "size", "allergen", "allergy", "chocolate", "menu", "recommend",
}

func mentionsProduct(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range knowledge.Catalog() {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return true
		}
	}
	for _, w := range productWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
