package model

// TableStatus reports whether a table has an open cart.
type TableStatus string

const (
	TableStatusEmpty    TableStatus = "empty"
	TableStatusOccupied TableStatus = "occupied"
)

// Table is a seat on the floor plan. X and Y are percentages of the floor area.
type Table struct {
	ID     int         `json:"id"`
	Label  string      `json:"label"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Status TableStatus `json:"status"`
}

// TableUpdateRequest represents the payload for renaming or moving a table.
type TableUpdateRequest struct {
	Label *string  `json:"label,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}
