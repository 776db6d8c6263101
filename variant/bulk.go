package variant

import (
	"strings"

	"github.com/velora-labs/velora-backend-go/models"
)

// BulkColor is the fixed color placeholder on matrix-sourced cart lines.
const BulkColor = "N/A"

// BulkCartItems turns the quantity map entered in the bulk-order matrix
// into cart lines, one per variant with a positive quantity. Quantities
// are clamped to each variant's stock ceiling and zero entries are
// skipped. The size label joins the combination values in attribute
// declaration order. The map is cleared on return: bulk add is one-shot,
// not a running draft.
func BulkCartItems(p models.Product, quantities map[string]int) []models.CartItem {
	var items []models.CartItem

	for _, v := range p.Variants {
		qty, ok := quantities[v.ID]
		if !ok || qty <= 0 {
			continue
		}
		if qty > v.Stock {
			qty = v.Stock
		}
		if qty <= 0 {
			continue
		}

		items = append(items, models.CartItem{
			ID:       v.ID,
			Title:    p.Name,
			Price:    v.Price,
			Quantity: qty,
			Size:     sizeLabel(p.Attributes, v),
			Color:    BulkColor,
			Img:      variantImage(p, v),
		})
	}

	for id := range quantities {
		delete(quantities, id)
	}

	return items
}

func sizeLabel(attrs []models.Attribute, v models.Variant) string {
	var parts []string
	for _, a := range attrs {
		if val, ok := v.Combination[a.Name]; ok {
			parts = append(parts, val)
		}
	}
	return strings.Join(parts, " / ")
}

func variantImage(p models.Product, v models.Variant) string {
	if v.Image != "" {
		return v.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
