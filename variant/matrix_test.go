package variant

import (
	"testing"

	"github.com/velora-labs/velora-backend-go/models"
)

func shirtAttributes() []models.Attribute {
	return []models.Attribute{
		{Name: "Color", Values: []string{"Red", "Blue"}},
		{Name: "Size", Values: []string{"S", "M", "L"}},
	}
}

func shirtVariants() []models.Variant {
	return []models.Variant{
		{ID: "v1", Combination: map[string]string{"Color": "Red", "Size": "S"}, Price: 10, Stock: 5},
		{ID: "v2", Combination: map[string]string{"Color": "Red", "Size": "M"}, Price: 10, Stock: 3},
		{ID: "v3", Combination: map[string]string{"Color": "Blue", "Size": "L"}, Price: 12, Stock: 7},
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	if m := Build(nil, shirtVariants(), false); m != nil {
		t.Fatal("expected nil matrix with no attributes")
	}
	if m := Build(shirtAttributes(), nil, false); m != nil {
		t.Fatal("expected nil matrix with no variants")
	}
}

func TestBuildEveryVariantInExactlyOneCell(t *testing.T) {
	variants := shirtVariants()
	m := Build(shirtAttributes(), variants, false)
	if m == nil {
		t.Fatal("expected a matrix")
	}

	if m.Len() != len(variants) {
		t.Fatalf("expected %d occupied cells, got %d", len(variants), m.Len())
	}

	seen := make(map[string]int)
	for _, row := range m.RowValues {
		for _, col := range m.ColValues {
			if v, ok := m.At(row, col); ok {
				seen[v.ID]++
			}
		}
	}
	for _, v := range variants {
		if seen[v.ID] != 1 {
			t.Fatalf("variant %s appears in %d cells, want 1", v.ID, seen[v.ID])
		}
	}
}

func TestBuildSparseCellIsEmpty(t *testing.T) {
	m := Build(shirtAttributes(), shirtVariants(), false)

	// Blue/S was never realized.
	if _, ok := m.At("Blue", "S"); ok {
		t.Fatal("expected Blue/S cell to be empty")
	}
	if v, ok := m.At("Red", "M"); !ok || v.ID != "v2" {
		t.Fatalf("expected v2 at Red/M, got %+v ok=%v", v, ok)
	}
}

func TestBuildRealizedValuesInFirstEncounteredOrder(t *testing.T) {
	m := Build(shirtAttributes(), shirtVariants(), false)

	wantRows := []string{"Red", "Blue"}
	wantCols := []string{"S", "M", "L"}
	if len(m.RowValues) != len(wantRows) {
		t.Fatalf("row values: got %v want %v", m.RowValues, wantRows)
	}
	for i, r := range wantRows {
		if m.RowValues[i] != r {
			t.Fatalf("row values: got %v want %v", m.RowValues, wantRows)
		}
	}
	for i, c := range wantCols {
		if m.ColValues[i] != c {
			t.Fatalf("col values: got %v want %v", m.ColValues, wantCols)
		}
	}
}

func TestBuildAxisSwapIsInvolutive(t *testing.T) {
	attrs := shirtAttributes()
	variants := shirtVariants()

	plain := Build(attrs, variants, false)
	swapped := Build(attrs, variants, true)
	back := Build(attrs, variants, false)

	if swapped.RowAttr != plain.ColAttr || swapped.ColAttr != plain.RowAttr {
		t.Fatalf("swap did not exchange axes: %q/%q vs %q/%q",
			swapped.RowAttr, swapped.ColAttr, plain.RowAttr, plain.ColAttr)
	}
	if back.RowAttr != plain.RowAttr || back.ColAttr != plain.ColAttr {
		t.Fatal("swapping twice did not restore the original axes")
	}

	if v, ok := swapped.At("M", "Red"); !ok || v.ID != "v2" {
		t.Fatalf("expected v2 at M/Red after swap, got %+v ok=%v", v, ok)
	}
}

func TestBuildSingleAttributeUsesDefaultColumn(t *testing.T) {
	attrs := []models.Attribute{{Name: "Size", Values: []string{"S", "M"}}}
	variants := []models.Variant{
		{ID: "v1", Combination: map[string]string{"Size": "S"}},
		{ID: "v2", Combination: map[string]string{"Size": "M"}},
	}

	m := Build(attrs, variants, false)
	if m.ColAttr != "" {
		t.Fatalf("expected empty ColAttr, got %q", m.ColAttr)
	}
	if len(m.ColValues) != 1 || m.ColValues[0] != DefaultColumn {
		t.Fatalf("expected single %q column, got %v", DefaultColumn, m.ColValues)
	}
	if _, ok := m.At("S", DefaultColumn); !ok {
		t.Fatal("expected v1 under the Default column")
	}

	// Swap is meaningless on one axis and must not change anything.
	sw := Build(attrs, variants, true)
	if sw.RowAttr != m.RowAttr || sw.ColAttr != m.ColAttr {
		t.Fatal("swap changed a single-attribute matrix")
	}
}

func TestBuildIgnoresAttributesBeyondFirstTwo(t *testing.T) {
	attrs := append(shirtAttributes(), models.Attribute{Name: "Material", Values: []string{"Cotton", "Wool"}})
	variants := []models.Variant{
		{ID: "v1", Combination: map[string]string{"Color": "Red", "Size": "S", "Material": "Cotton"}},
		{ID: "v2", Combination: map[string]string{"Color": "Red", "Size": "M", "Material": "Wool"}},
	}

	m := Build(attrs, variants, false)
	if m.RowAttr != "Color" || m.ColAttr != "Size" {
		t.Fatalf("expected Color/Size axes, got %s/%s", m.RowAttr, m.ColAttr)
	}
	for _, row := range m.RowValues {
		if row == "Cotton" || row == "Wool" {
			t.Fatal("third attribute leaked into the row axis")
		}
	}
}
