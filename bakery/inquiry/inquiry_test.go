package inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"
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

func TestProductPromptCarriesCatalog(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: "We have ten cakes."}
	s := NewService(gen)

	reply, err := s.Product(context.Background(), "what chocolate cakes do you have?")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if reply != "We have ten cakes." {
		t.Fatalf("reply = %q", reply)
	}
	for _, want := range []string{
		"Triple Chocolate Cake",
		"Rs. 1,950",
		"Allergens: wheat, milk, eggs",
		"what chocolate cakes do you have?",
	} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestCompanyPromptCarriesBusinessData(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{reply: "We open at 6:30 AM."}
	s := NewService(gen)

	if _, err := s.Company(context.Background(), "when do you open?"); err != nil {
		t.Fatalf("Company() error = %v", err)
	}
	for _, want := range []string{
		"Pumpernickel Bakery",
		"+977 9826045931",
		"What are your operating hours?",
		"payment_method",
		"when do you open?",
	} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestInquiryDegradesOnModelFailure(t *testing.T) {
	t.Parallel()
	s := NewService(&fakeGenerator{err: errors.New("model down")})

	reply, err := s.Product(context.Background(), "query")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if !strings.Contains(reply, "contact us directly") {
		t.Fatalf("fallback reply = %q", reply)
	}

	reply, err = s.Company(context.Background(), "query")
	if err != nil {
		t.Fatalf("Company() error = %v", err)
	}
	if !strings.Contains(reply, "contact us directly") {
		t.Fatalf("fallback reply = %q", reply)
	}
}
