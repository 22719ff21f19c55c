package store

import (
	"github.com/shopspring/decimal"

	"github.com/PoonjothiV/grocerywebsites/models"
)

// ProjectCart joins cart entries against the catalog, preserving entry
// order. Entries whose product no longer resolves are dropped without
// error; the product may simply have been delisted.
func ProjectCart(catalog []models.Product, entries []models.CartEntry) []models.LineItem {
	index := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		index[p.ID.Hex()] = p
	}

	lines := make([]models.LineItem, 0, len(entries))
	for _, entry := range entries {
		product, ok := index[entry.ProductID.Hex()]
		if !ok {
			continue
		}
		lines = append(lines, models.LineItem{
			Product:   product,
			Quantity:  entry.Quantity,
			LineTotal: product.OfferPrice.Mul(decimal.NewFromInt(int64(entry.Quantity))),
		})
	}
	return lines
}

// CartTotal sums the line totals. An empty cart totals zero.
func CartTotal(lines []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}
