package variant

import (
	"testing"

	"github.com/velora-labs/velora-backend-go/models"
)

func bulkProduct() models.Product {
	return models.Product{
		Name:       "Crew Tee",
		Type:       models.ProductTypeVariable,
		Attributes: shirtAttributes(),
		Variants: []models.Variant{
			{ID: "v1", Combination: map[string]string{"Color": "Red", "Size": "S"}, Price: 10, Stock: 5},
			{ID: "v2", Combination: map[string]string{"Color": "Red", "Size": "M"}, Price: 10, Stock: 3},
			{ID: "v3", Combination: map[string]string{"Color": "Blue", "Size": "L"}, Price: 12, Stock: 7},
		},
		Images: []string{"tee.jpg"},
	}
}

func TestBulkCartItemsSkipsZeroQuantities(t *testing.T) {
	quantities := map[string]int{"v1": 2, "v2": 0, "v3": 5}

	items := BulkCartItems(bulkProduct(), quantities)
	if len(items) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(items))
	}
	if items[0].ID != "v1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != "v3" || items[1].Quantity != 5 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestBulkCartItemsClearsQuantityMap(t *testing.T) {
	quantities := map[string]int{"v1": 2, "v2": 0, "v3": 5}
	BulkCartItems(bulkProduct(), quantities)
	if len(quantities) != 0 {
		t.Fatalf("expected quantity map cleared after bulk add, got %v", quantities)
	}
}

func TestBulkCartItemsClampsToStock(t *testing.T) {
	quantities := map[string]int{"v2": 100}
	items := BulkCartItems(bulkProduct(), quantities)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected quantity clamped to stock 3, got %+v", items)
	}
}

func TestBulkCartItemsOutOfStockVariantDropped(t *testing.T) {
	p := bulkProduct()
	p.Variants[0].Stock = 0
	quantities := map[string]int{"v1": 4}
	if items := BulkCartItems(p, quantities); len(items) != 0 {
		t.Fatalf("expected no items for an out-of-stock variant, got %+v", items)
	}
}

func TestBulkCartItemsSizeLabelFollowsDeclarationOrder(t *testing.T) {
	quantities := map[string]int{"v1": 1}
	items := BulkCartItems(bulkProduct(), quantities)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	// Attributes declare Color then Size.
	if items[0].Size != "Red / S" {
		t.Fatalf("expected size label %q, got %q", "Red / S", items[0].Size)
	}
	if items[0].Color != BulkColor {
		t.Fatalf("expected placeholder color %q, got %q", BulkColor, items[0].Color)
	}
}
