// Package cart builds the line items of an open cart.
//
// Every function is pure: the input slice is never modified and, when an
// operation is rejected, the returned slice is the input unchanged.
package cart

import (
	"slices"

	"pico-pos/internal/model"

	"github.com/shopspring/decimal"
)

// AddItem adds one unit of itemID to lines.
// A new line starts at quantity 1; an existing line is incremented.
// The add is rejected when the item is sold out or the line already holds all remaining stock.
func AddItem(menu []model.MenuItem, lines []model.CartLine, itemID string) ([]model.CartLine, error) {
	item, ok := find(menu, itemID)
	if !ok {
		return lines, model.ErrMenuItemNotFound
	}
	if !item.InStock() {
		return lines, model.ErrOutOfStock
	}

	idx := indexOf(lines, itemID)
	if idx < 0 {
		out := slices.Clone(lines)
		return append(out, model.CartLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: 1,
		}), nil
	}

	if lines[idx].Quantity >= item.Stock {
		return lines, model.ErrInsufficientStock
	}

	out := slices.Clone(lines)
	out[idx].Quantity++
	return out, nil
}

// SetQuantity adjusts the quantity of the line for itemID by delta.
// Increases beyond the current catalogue stock are refused. The result is
// clamped at zero and a line reaching zero is removed.
func SetQuantity(menu []model.MenuItem, lines []model.CartLine, itemID string, delta int) ([]model.CartLine, error) {
	idx := indexOf(lines, itemID)
	if idx < 0 {
		return lines, model.ErrCartLineNotFound
	}

	qty := lines[idx].Quantity + delta
	if delta > 0 {
		item, ok := find(menu, itemID)
		if !ok {
			return lines, model.ErrMenuItemNotFound
		}
		if qty > item.Stock {
			return lines, model.ErrInsufficientStock
		}
	}

	out := slices.Clone(lines)
	if qty <= 0 {
		return slices.Delete(out, idx, idx+1), nil
	}
	out[idx].Quantity = qty
	return out, nil
}

// SetNote replaces the free-text note on the line for itemID.
func SetNote(lines []model.CartLine, itemID, note string) ([]model.CartLine, error) {
	idx := indexOf(lines, itemID)
	if idx < 0 {
		return lines, model.ErrCartLineNotFound
	}
	out := slices.Clone(lines)
	out[idx].Note = note
	return out, nil
}

// Total returns the sum of price × quantity over lines.
func Total(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

func find(menu []model.MenuItem, id string) (model.MenuItem, bool) {
	for _, m := range menu {
		if m.ID == id {
			return m, true
		}
	}
	return model.MenuItem{}, false
}

func indexOf(lines []model.CartLine, itemID string) int {
	return slices.IndexFunc(lines, func(l model.CartLine) bool {
		return l.ItemID == itemID
	})
}
