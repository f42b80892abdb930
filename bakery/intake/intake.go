// Package intake turns natural-language customer messages into structured
// orders with the help of a language model.
package intake

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
	"github.com/pumpernickelhq/bakery-assistant/bakery/orderstore"
)

// ErrParse marks model output that could not be turned into the expected
// structure.
var ErrParse = errors.New("intake: unparseable model output")

// Generator produces a completion for a prompt. *genai.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	//go:embed template/order.txt
	orderPromptRaw string

	//go:embed template/complete.txt
	completePromptRaw string

	//go:embed template/inquiry.txt
	inquiryPromptRaw string
)

// ParsedOrder is the structured form of a natural-language order.
type ParsedOrder struct {
	Order     orderstore.Order      `json:"order"`
	LineItems []orderstore.LineItem `json:"order_line_items"`
}

// Parser extracts orders from customer text and persists them.
type Parser struct {
	gen   Generator
	store orderstore.Store
}

func NewParser(gen Generator, store orderstore.Store) *Parser {
	return &Parser{gen: gen, store: store}
}

// ParseOrder asks the model to structure the customer's order text. The
// model is told to return bare JSON, but a fenced ```json block is
// tolerated since models ignore that instruction often enough.
func (p *Parser) ParseOrder(ctx context.Context, orderText string) (ParsedOrder, error) {
	prompt := fmt.Sprintf(strings.TrimSpace(orderPromptRaw), orderText)
	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return ParsedOrder{}, fmt.Errorf("intake: parse order: %w", err)
	}

	var parsed ParsedOrder
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return ParsedOrder{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return parsed, nil
}

// CreateFromText parses the customer's order text and stores the result,
// returning the new order id.
func (p *Parser) CreateFromText(ctx context.Context, orderText string) (string, error) {
	parsed, err := p.ParseOrder(ctx, orderText)
	if err != nil {
		return "", err
	}
	id, err := p.store.Create(ctx, parsed.Order, parsed.LineItems)
	if err != nil {
		return "", fmt.Errorf("intake: store parsed order: %w", err)
	}
	return id, nil
}

// DetailsComplete asks the model whether the customer has supplied every
// required order detail. The model is instructed to answer with a bare
// boolean; the first true/false token in the reply decides.
func (p *Parser) DetailsComplete(ctx context.Context, details string) (bool, error) {
	requirements, err := json.Marshal(knowledge.Requirements())
	if err != nil {
		return false, fmt.Errorf("intake: marshal requirements: %w", err)
	}
	prompt := fmt.Sprintf(strings.TrimSpace(completePromptRaw), details, requirements)
	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("intake: completeness check: %w", err)
	}

	for _, field := range strings.Fields(strings.ToLower(stripFences(raw))) {
		switch strings.Trim(field, ".,!") {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: no boolean in %q", ErrParse, raw)
}

// DescribeInquiry answers a free-form product inquiry against the catalog,
// returning the model's plain-text order details.
func (p *Parser) DescribeInquiry(ctx context.Context, inquiry string) (string, error) {
	var lines []string
	for _, product := range knowledge.Catalog() {
		lines = append(lines, fmt.Sprintf("%s. %s", product.Name, product.Description))
	}
	prompt := fmt.Sprintf(strings.TrimSpace(inquiryPromptRaw), strings.Join(lines, "\n"), inquiry)
	reply, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("intake: describe inquiry: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
