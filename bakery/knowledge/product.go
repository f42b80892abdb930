// Package knowledge holds the bakery's static business data: the product
// catalog, business profile, FAQ, and the ordering requirements customers
// must satisfy. Everything here is read-only at runtime.
package knowledge

import "strings"

type Category string

const (
	CategoryChocolateCake Category = "chocolate_cake"
	CategoryCheesecake    Category = "cheesecake"
	CategorySpecialtyCake Category = "specialty_cake"
	CategorySeasonal      Category = "seasonal"
)

const (
	SizeSmall = "5inch"
	SizeLarge = "8inch"
)

type Product struct {
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	Sizes       map[string]int    `json:"sizes"`
	Weights     map[string]string `json:"weights"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Allergens   []string          `json:"allergens"`
	Available   bool              `json:"available"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PriceFor returns the price for a size. ok is false when the size is not
// offered for this product.
func (p Product) PriceFor(size string) (int, bool) {
	price, ok := p.Sizes[size]
	return price, ok
}

var catalog = []Product{
	{
		Name:        "Triple Chocolate Cake",
		Category:    CategoryChocolateCake,
		Sizes:       map[string]int{SizeLarge: 1950, SizeSmall: 1450},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Indulge in the ultimate treat with our premium chocolate cake, crafted for true chocolate lovers. Made with the finest, ethically sourced cocoa, this cake offers a rich, velvety texture that melts in your mouth. The layers are infused with smooth, dark chocolate ganache, providing a perfect balance of sweetness and depth.",
		Tags:        []string{"top_pick", "popular", "chocolate"},
		Allergens:   []string{"wheat", "milk", "eggs"},
		Available:   true,
	},
	{
		Name:        "Blueberry Cheesecake",
		Category:    CategoryCheesecake,
		Sizes:       map[string]int{SizeLarge: 3250, SizeSmall: 2250},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Blueberry cheesecake is a delightful dessert that combines the rich, creamy texture of classic cheesecake with the sweet, tangy flavor of fresh blueberries. The base is typically made from a buttery graham cracker crust, which adds a satisfying crunch and complements the smoothness of the filling.",
		Tags:        []string{"fruity", "creamy"},
		Allergens:   []string{"wheat", "milk", "eggs"},
		Available:   true,
	},
	{
		Name:        "Strawberry Cheesecake",
		Category:    CategoryCheesecake,
		Sizes:       map[string]int{SizeLarge: 3250, SizeSmall: 2250},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Our strawberry cheesecake is a delightful blend of creamy, smooth texture and vibrant, fruity flavor. Made with a rich and silky cream cheese filling, this dessert sits on a buttery graham cracker crust that adds the perfect crunch to every bite.",
		Tags:        []string{"fruity", "creamy", "fresh"},
		Allergens:   []string{"wheat", "milk", "eggs"},
		Available:   true,
	},
	{
		Name:        "Brownie Cake",
		Category:    CategoryChocolateCake,
		Sizes:       map[string]int{SizeLarge: 1850, SizeSmall: 1350},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Fudgy dark chocolate brownie with a hint of crunch from walnuts.",
		Tags:        []string{"fudgy", "nuts", "chocolate"},
		Allergens:   []string{"wheat", "milk", "eggs", "walnuts"},
		Available:   true,
	},
	{
		Name:        "Scarlet Cheesecake",
		Category:    CategorySpecialtyCake,
		Sizes:       map[string]int{SizeLarge: 3790, SizeSmall: 2790},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Our Scarlet Cheesecake is a decadent creation featuring a red velvet biscuit mold base and a luscious cream cheese whipped cream exterior. This rich fusion of textures and flavors combines the classic allure of red velvet with the creamy indulgence of cheesecake.",
		Tags:        []string{"specialty", "red_velvet", "premium"},
		Allergens:   []string{"wheat", "milk", "eggs"},
		Available:   true,
	},
	{
		Name:        "Raffaello Cake",
		Category:    CategorySpecialtyCake,
		Sizes:       map[string]int{SizeLarge: 2100, SizeSmall: 1550},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "The Raffaello Cake is a luscious, creamy dessert inspired by the popular Raffaello coconut-almond confectionery. This elegant cake features layers of soft, moist sponge infused with a delicate coconut flavor, complemented by a velvety white chocolate and almond cream.",
		Tags:        []string{"coconut", "almond", "elegant"},
		Allergens:   []string{"wheat", "milk", "eggs", "almonds"},
		Available:   true,
	},
	{
		Name:        "Snickers Delight",
		Category:    CategorySpecialtyCake,
		Sizes:       map[string]int{SizeLarge: 1950, SizeSmall: 1450},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "The Snicker Cake is a decadent dessert inspired by the beloved Snickers candy bar. It features layers of rich chocolate cake, creamy caramel, crunchy peanuts, and a smooth peanut butter frosting, all topped with a luscious chocolate ganache.",
		Tags:        []string{"caramel", "peanuts", "chocolate"},
		Allergens:   []string{"wheat", "milk", "eggs", "peanuts"},
		Available:   true,
	},
	{
		Name:        "Pistachio Cake",
		Category:    CategorySpecialtyCake,
		Sizes:       map[string]int{SizeLarge: 3790, SizeSmall: 2790},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Our Nutty Pistachio Cake features a soft pistachio sponge with crushed pistachios inside, layered with smooth vanilla cream and pistachio mousse, topped with a sprinkle of pistachio crumbs for the perfect finish.",
		Tags:        []string{"specialty", "nuts", "premium"},
		Allergens:   []string{"wheat", "milk", "eggs", "pistachios"},
		Available:   true,
	},
	{
		Name:        "Tiramisu",
		Category:    CategorySpecialtyCake,
		Sizes:       map[string]int{SizeLarge: 1950, SizeSmall: 1450},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "Our tiramisu cake is a luscious, multi-layered dessert that offers a perfect balance of rich flavors and creamy textures. It features soft, coffee-soaked layers of delicate sponge cake, topped with a smooth, airy mascarpone cream.",
		Tags:        []string{"coffee", "italian", "creamy"},
		Allergens:   []string{"wheat", "milk", "eggs"},
		Available:   true,
	},
	{
		Name:        "Mango Mousse",
		Category:    CategorySeasonal,
		Sizes:       map[string]int{SizeLarge: 3250, SizeSmall: 2250},
		Weights:     map[string]string{SizeLarge: "1 Pound", SizeSmall: "0.5 Pound"},
		Description: "The Mango Mousse cake is light, luscious, and topped with fresh mangoes. We're here to cool down your summer cravings, one slice at a time.",
		Tags:        []string{"seasonal", "tropical", "light"},
		Allergens:   []string{"milk", "eggs"},
		Available:   true,
	},
}

// Catalog returns the full product catalog. The returned slice is a copy;
// callers may reorder it freely.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// ProductByName finds a product by its exact name, case-insensitively.
// ok is false when no product matches.
func ProductByName(name string) (Product, bool) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}
