// Package inquiry answers free-form product and business questions by
// grounding a language model in the bakery's knowledge base.
package inquiry

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
)

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	//go:embed template/product.txt
	productPromptRaw string

	//go:embed template/company.txt
	companyPromptRaw string
)

// fallbackReply is sent when the model is unavailable, pointing the
// customer at a human instead of dropping the conversation.
const fallbackReply = "I apologize, but I'm having trouble processing your inquiry right now. " +
	"Please contact us directly at our phone number or WhatsApp for immediate assistance."

// Service answers inquiries against the product catalog and business
// profile.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Product answers a product-related query: descriptions, prices, sizes,
// allergens, recommendations. Model failures degrade to a manual-contact
// reply rather than an error.
func (s *Service) Product(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(strings.TrimSpace(productPromptRaw), productSection(), query)
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return fallbackReply, nil
	}
	return strings.TrimSpace(reply), nil
}

// Company answers a business-related query: hours, location, ordering
// process, payment, delivery.
func (s *Service) Company(ctx context.Context, query string) (string, error) {
	info := knowledge.Business()
	prompt := fmt.Sprintf(strings.TrimSpace(companyPromptRaw),
		info.Name, info.Established, info.Location,
		businessSection(info), info.About,
		faqSection(), requirementsSection(), query)
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return fallbackReply, nil
	}
	return strings.TrimSpace(reply), nil
}

func productSection() string {
	var b strings.Builder
	for _, p := range knowledge.Catalog() {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Name, p.Category)
		fmt.Fprintf(&b, "  Sizes & Prices: 8inch %s, 5inch %s\n",
			knowledge.FormatPrice(p.Sizes[knowledge.SizeLarge]),
			knowledge.FormatPrice(p.Sizes[knowledge.SizeSmall]))
		fmt.Fprintf(&b, "  Weights: 8inch %s, 5inch %s\n",
			p.Weights[knowledge.SizeLarge], p.Weights[knowledge.SizeSmall])
		fmt.Fprintf(&b, "  Description: %s\n", p.Description)
		fmt.Fprintf(&b, "  Tags: %s\n", strings.Join(p.Tags, ", "))
		allergens := "None"
		if len(p.Allergens) > 0 {
			allergens = strings.Join(p.Allergens, ", ")
		}
		fmt.Fprintf(&b, "  Allergens: %s\n", allergens)
	}
	return b.String()
}

func businessSection(info knowledge.BusinessInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Established: %d\n", info.Established)
	fmt.Fprintf(&b, "Tagline: %s\n", info.Tagline)
	fmt.Fprintf(&b, "Location: %s\n", info.Location)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	fmt.Fprintf(&b, "Phone: %s\n", info.Phone)
	fmt.Fprintf(&b, "WhatsApp: %s\n", info.WhatsApp)
	fmt.Fprintf(&b, "Email: %s\n", info.Email)
	fmt.Fprintf(&b, "Maps Link: %s\n", info.MapsLink)
	fmt.Fprintf(&b, "Operating Hours: %s\n", info.Hours)
	b.WriteString("Delivery Options: pickup, delivery\n")
	return b.String()
}

func faqSection() string {
	var b strings.Builder
	for _, entry := range knowledge.FrequentlyAsked().Entries {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", entry.Question, entry.Answer)
	}
	return b.String()
}

func requirementsSection() string {
	var b strings.Builder
	for _, field := range knowledge.Requirements().Fields {
		fmt.Fprintf(&b, "- %s: %s (Required: %s)\n", field.Name, field.Description, field.Required)
	}
	return b.String()
}
