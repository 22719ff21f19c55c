package seller

import (
	"strings"

	"github.com/PoonjothiV/grocerywebsites/models"
)

// FilterProducts narrows the catalog by a case-insensitive name search and
// a category. Category "All" (or empty) matches everything.
func FilterProducts(products []models.Product, search, category string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Categories lists "All" followed by the distinct categories in catalog
// order.
func Categories(products []models.Product) []string {
	categories := []string{"All"}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
