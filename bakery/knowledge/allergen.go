package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// AllergenReport describes the allergens of one product, optionally with a
// verdict on a single allergen the customer asked about.
type AllergenReport struct {
	Product      string         `json:"product"`
	Allergens    []string       `json:"allergens"`
	AllergenFree bool           `json:"allergen_free"`
	Specific     *AllergenCheck `json:"specific_allergen,omitempty"`
}

type AllergenCheck struct {
	Allergen string `json:"allergen"`
	Present  bool   `json:"present"`
	Message  string `json:"message"`
}

// AllergenSummary covers the whole catalog.
type AllergenSummary struct {
	AllAllergens         []string            `json:"all_allergens"`
	ProductAllergens     map[string][]string `json:"product_allergens"`
	AllergenFreeProducts []string            `json:"allergen_free_products"`
}

// CheckAllergen reports the allergen information for the named product.
// When allergen is non-empty the report also states whether that specific
// allergen is present, matched case-insensitively.
func CheckAllergen(productName, allergen string) (AllergenReport, error) {
	product, ok := ProductByName(productName)
	if !ok {
		return AllergenReport{}, fmt.Errorf("product %q not found", productName)
	}

	report := AllergenReport{
		Product:      product.Name,
		Allergens:    product.Allergens,
		AllergenFree: len(product.Allergens) == 0,
	}
	if allergen != "" {
		present := false
		for _, a := range product.Allergens {
			if strings.EqualFold(a, allergen) {
				present = true
				break
			}
		}
		verb := "Does not contain"
		if present {
			verb = "Contains"
		}
		report.Specific = &AllergenCheck{
			Allergen: allergen,
			Present:  present,
			Message:  fmt.Sprintf("%s %s", verb, allergen),
		}
	}
	return report, nil
}

// AllergensAcrossCatalog summarizes allergens over every product.
func AllergensAcrossCatalog() AllergenSummary {
	seen := map[string]struct{}{}
	perProduct := make(map[string][]string, len(catalog))
	var free []string

	for _, p := range catalog {
		perProduct[p.Name] = p.Allergens
		for _, a := range p.Allergens {
			seen[a] = struct{}{}
		}
		if len(p.Allergens) == 0 {
			free = append(free, p.Name)
		}
	}

	all := make([]string, 0, len(seen))
	for a := range seen {
		all = append(all, a)
	}
	sort.Strings(all)

	return AllergenSummary{
		AllAllergens:         all,
		ProductAllergens:     perProduct,
		AllergenFreeProducts: free,
	}
}
