package knowledge

import (
	"sort"
	"strings"
)

// SearchFilter narrows a catalog search. Zero values mean "no filter".
// Price filters compare against the 8-inch price.
type SearchFilter struct {
	Query    string
	Category Category
	MinPrice int
	MaxPrice int
}

// Search returns every product matching the filter, in catalog order.
// The query matches case-insensitively against product names and
// descriptions.
func Search(filter SearchFilter) []Product {
	var results []Product
	query := strings.ToLower(filter.Query)

	for _, p := range catalog {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		large := p.Sizes[SizeLarge]
		if filter.MaxPrice > 0 && large > filter.MaxPrice {
			continue
		}
		if filter.MinPrice > 0 && large < filter.MinPrice {
			continue
		}
		results = append(results, p)
	}
	return results
}

// Recommendation pairs a product with the score it earned against the
// customer's stated preferences.
type Recommendation struct {
	Product Product `json:"product"`
	Score   int     `json:"score"`
	Reason  string  `json:"reason"`
}

const maxRecommendations = 5

// Recommend scores the catalog against the customer's preferences, occasion,
// and budget and returns the top matches. Products whose small size already
// exceeds a non-zero budget are excluded outright.
func Recommend(preferences string, budget int, occasion string) []Recommendation {
	var recs []Recommendation
	prefLower := strings.ToLower(preferences)
	occLower := strings.ToLower(occasion)

	for _, p := range catalog {
		score := 0

		if preferences != "" {
			for _, tag := range p.Tags {
				if strings.Contains(prefLower, tag) {
					score += 3
					break
				}
			}
			if strings.Contains(strings.ToLower(p.Name), prefLower) ||
				strings.Contains(strings.ToLower(p.Description), prefLower) {
				score += 2
			}
		}

		if occasion != "" {
			if (occLower == "birthday" || occLower == "celebration") && p.HasTag("premium") {
				score += 2
			}
			if occLower == "casual" && p.Sizes[SizeSmall] < 2000 {
				score++
			}
		}

		if p.HasTag("top_pick") || p.HasTag("popular") {
			score++
		}

		if budget > 0 {
			if p.Sizes[SizeSmall] <= budget {
				score++
			} else if p.Sizes[SizeLarge] > budget {
				continue
			}
		}

		if score > 0 {
			recs = append(recs, Recommendation{
				Product: p,
				Score:   score,
				Reason:  "Matches your preferences and budget",
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
