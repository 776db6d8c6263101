package variant

import (
	"github.com/velora-labs/velora-backend-go/models"
)

// DefaultColumn is the sentinel column label used when a product
// varies on a single attribute only.
const DefaultColumn = "Default"

// Matrix is the 2-D pivot of a variant list over the first two
// attributes of a variable product. Cells are sparse: a (row, col)
// pair with no realized variant is simply absent.
type Matrix struct {
	RowAttr   string
	ColAttr   string // empty when the product has a single attribute
	RowValues []string
	ColValues []string

	cells map[string]map[string]models.Variant
}

// Build pivots variants over the first two attributes. Returns nil when
// there is nothing to pivot (no attributes or no variants); callers fall
// back to the flat simple-product view. With a single attribute the
// column axis collapses to DefaultColumn. Attributes beyond the first
// two never pivot; only the first two axes are considered.
func Build(attrs []models.Attribute, variants []models.Variant, swapped bool) *Matrix {
	if len(attrs) == 0 || len(variants) == 0 {
		return nil
	}

	rowIdx, colIdx := 0, 1
	if swapped && len(attrs) > 1 {
		rowIdx, colIdx = 1, 0
	}

	m := &Matrix{
		RowAttr: attrs[rowIdx].Name,
		cells:   make(map[string]map[string]models.Variant),
	}
	if len(attrs) > 1 {
		m.ColAttr = attrs[colIdx].Name
	}

	seenRow := make(map[string]bool)
	seenCol := make(map[string]bool)

	for _, v := range variants {
		row := v.Combination[m.RowAttr]
		col := DefaultColumn
		if m.ColAttr != "" {
			col = v.Combination[m.ColAttr]
		}

		if !seenRow[row] {
			seenRow[row] = true
			m.RowValues = append(m.RowValues, row)
		}
		if !seenCol[col] {
			seenCol[col] = true
			m.ColValues = append(m.ColValues, col)
		}

		if m.cells[row] == nil {
			m.cells[row] = make(map[string]models.Variant)
		}
		m.cells[row][col] = v
	}

	return m
}

// At returns the variant at a (row, col) coordinate. Empty cells report
// ok=false; consumers render those as disabled, not zero.
func (m *Matrix) At(row, col string) (models.Variant, bool) {
	byCol, ok := m.cells[row]
	if !ok {
		return models.Variant{}, false
	}
	v, ok := byCol[col]
	return v, ok
}

// Len reports the number of occupied cells.
func (m *Matrix) Len() int {
	n := 0
	for _, byCol := range m.cells {
		n += len(byCol)
	}
	return n
}
