package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a committed order.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// CartLine is a menu item snapshot with a requested quantity.
// Name and price are captured when the line is created and do not follow later catalogue edits.
type CartLine struct {
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Note     string          `json:"note,omitempty"`
}

// Amount returns price × quantity.
func (l CartLine) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the uncommitted lines of the table currently being served.
// A zero TableID means no table is open.
type Cart struct {
	TableID int        `json:"tableId"`
	Lines   []CartLine `json:"lines"`
}

// Open reports whether the cart is scoped to a table.
func (c Cart) Open() bool {
	return c.TableID != 0
}

// CartResponse represents the response payload for the active cart.
type CartResponse struct {
	TableID  int             `json:"tableId"`
	Lines    []CartLine      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Order represents an immutable record of a checked-out cart.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	TableID   int             `json:"tableId"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	Status    OrderStatus     `json:"status"`
}

// ShortID returns the first eight characters of the order ID as printed on receipts.
func (o Order) ShortID() string {
	return o.ID.String()[:8]
}

// Clone returns a copy of the order that shares no memory with o.
func (o Order) Clone() Order {
	items := make([]CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// AddItemRequest represents the payload for adding a menu item to the cart.
type AddItemRequest struct {
	ItemID string `json:"itemId"`
}

// QuantityRequest represents the payload for adjusting a cart line.
type QuantityRequest struct {
	Delta int `json:"delta"`
}

// NoteRequest represents the payload for replacing a cart line note.
type NoteRequest struct {
	Note string `json:"note"`
}

// OrderEvent is published after an order is committed or refunded.
type OrderEvent struct {
	Type       string          `json:"type"`
	OrderID    uuid.UUID       `json:"orderId"`
	TableID    int             `json:"tableId"`
	Total      decimal.Decimal `json:"total"`
	Status     OrderStatus     `json:"status"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Order event types.
const (
	EventOrderCompleted = "order.completed"
	EventOrderRefunded  = "order.refunded"
)
