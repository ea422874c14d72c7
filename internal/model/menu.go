package model

import "github.com/shopspring/decimal"

// Category is the menu section an item is listed under.
type Category string

const (
	CategoryCoffee   Category = "coffee"
	CategoryBeverage Category = "beverage"
	CategoryDessert  Category = "dessert"
	CategoryMeal     Category = "meal"
)

// Categories lists the menu sections in display order.
var Categories = []Category{CategoryCoffee, CategoryBeverage, CategoryDessert, CategoryMeal}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryBeverage, CategoryDessert, CategoryMeal:
		return true
	}
	return false
}

// MenuItem represents a sellable catalogue entry with its remaining stock.
type MenuItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
	Color    string          `json:"color"`
	Image    string          `json:"image"`
}

// InStock reports whether at least one unit can be sold.
func (m MenuItem) InStock() bool {
	return m.Stock > 0
}

// MenuItemRequest represents the payload for creating or updating a menu item.
type MenuItemRequest struct {
	Name     string           `json:"name"`
	Category Category         `json:"category,omitempty"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost,omitempty"`
	Stock    *int             `json:"stock,omitempty"`
	Color    string           `json:"color,omitempty"`
	Image    string           `json:"image,omitempty"`
}
