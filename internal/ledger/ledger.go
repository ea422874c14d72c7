// Package ledger owns the café's in-memory state: the menu catalogue with its
// stock, the floor plan, the open cart, the store profile and the order log.
//
// All mutations happen under a single write lock, so checkout applies its
// effects on the order log, stock, table and cart as one unit relative to
// every reader. Reads hand out copies; callers never share memory with the
// ledger.
package ledger

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"pico-pos/internal/cart"
	"pico-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultItemColor = "bg-indigo-100"
	defaultItemImage = "https://images.unsplash.com/photo-1551024709-8f23befc6f87?auto=format&fit=crop&w=600&q=80"

	newTablePosition = 10
	maxTablePosition = 90
)

// Ledger is the single owner of POS state.
type Ledger struct {
	mu sync.RWMutex

	menu    []model.MenuItem
	tables  []model.Table
	orders  []model.Order
	cart    model.Cart
	profile *model.StoreProfile

	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to timestamp orders.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator overrides the generator used for order and menu item IDs.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// New creates a ledger seeded with the given menu and floor plan.
// Every table starts empty.
func New(menu []model.MenuItem, tables []model.Table, opts ...Option) *Ledger {
	l := &Ledger{
		menu:   slices.Clone(menu),
		tables: slices.Clone(tables),
		now:    time.Now,
		newID:  uuid.New,
	}
	for i := range l.tables {
		l.tables[i].Status = model.TableStatusEmpty
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Menu returns a copy of the catalogue.
func (l *Ledger) Menu() []model.MenuItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.menu)
}

// MenuItem returns a single catalogue entry.
func (l *Ledger) MenuItem(id string) (model.MenuItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.menuIndex(id)
	if idx < 0 {
		return model.MenuItem{}, model.ErrMenuItemNotFound
	}
	return l.menu[idx], nil
}

// Tables returns a copy of the floor plan.
func (l *Ledger) Tables() []model.Table {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.tables)
}

// Cart returns a copy of the open cart.
func (l *Ledger) Cart() model.Cart {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cartCopy()
}

// Orders returns a copy of the order log in the order it was written.
func (l *Ledger) Orders() []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ordersCopy()
}

// Order returns a copy of a single order.
func (l *Ledger) Order(id uuid.UUID) (model.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.orderIndex(id)
	if idx < 0 {
		return model.Order{}, model.ErrOrderNotFound
	}
	return l.orders[idx].Clone(), nil
}

// Snapshot returns consistent copies of the catalogue and the order log.
func (l *Ledger) Snapshot() ([]model.MenuItem, []model.Order) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.menu), l.ordersCopy()
}

// OpenTable starts a new cart for the table. A cart left open for another
// table is abandoned and that table is freed.
func (l *Ledger) OpenTable(tableID int) (model.Cart, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.tableIndex(tableID)
	if idx < 0 {
		return model.Cart{}, model.ErrTableNotFound
	}

	l.abandonCart()
	l.tables[idx].Status = model.TableStatusOccupied
	l.cart = model.Cart{TableID: tableID}
	return l.cartCopy(), nil
}

// CloseTable abandons the open cart and frees its table.
func (l *Ledger) CloseTable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.abandonCart()
}

// AddItem adds one unit of a menu item to the open cart.
func (l *Ledger) AddItem(itemID string) (model.Cart, error) {
	return l.updateLines(func(lines []model.CartLine) ([]model.CartLine, error) {
		return cart.AddItem(l.menu, lines, itemID)
	})
}

// UpdateQuantity adjusts the quantity of a cart line by delta.
func (l *Ledger) UpdateQuantity(itemID string, delta int) (model.Cart, error) {
	return l.updateLines(func(lines []model.CartLine) ([]model.CartLine, error) {
		return cart.SetQuantity(l.menu, lines, itemID, delta)
	})
}

// SetNote replaces the note of a cart line.
func (l *Ledger) SetNote(itemID, note string) (model.Cart, error) {
	return l.updateLines(func(lines []model.CartLine) ([]model.CartLine, error) {
		return cart.SetNote(lines, itemID, note)
	})
}

func (l *Ledger) updateLines(fn func([]model.CartLine) ([]model.CartLine, error)) (model.Cart, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cart.Open() {
		return model.Cart{}, model.ErrNoActiveTable
	}

	lines, err := fn(l.cart.Lines)
	if err != nil {
		return l.cartCopy(), err
	}
	l.cart.Lines = lines
	return l.cartCopy(), nil
}

// Checkout commits the open cart as a completed order. The order is appended
// to the log, stock is reduced by each line's quantity (never below zero),
// the table is freed and the cart cleared.
func (l *Ledger) Checkout() (model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cart.Open() {
		return model.Order{}, model.ErrNoActiveTable
	}
	if len(l.cart.Lines) == 0 {
		return model.Order{}, model.ErrEmptyCart
	}

	order := model.Order{
		ID:        l.newID(),
		TableID:   l.cart.TableID,
		Items:     slices.Clone(l.cart.Lines),
		Total:     cart.Total(l.cart.Lines),
		CreatedAt: l.now(),
		Status:    model.OrderStatusCompleted,
	}
	l.orders = append(l.orders, order)

	for _, line := range order.Items {
		if idx := l.menuIndex(line.ItemID); idx >= 0 {
			l.menu[idx].Stock = max(0, l.menu[idx].Stock-line.Quantity)
		}
	}

	if idx := l.tableIndex(order.TableID); idx >= 0 {
		l.tables[idx].Status = model.TableStatusEmpty
	}
	l.cart = model.Cart{}

	return order.Clone(), nil
}

// Refund marks a completed order as refunded. Stock is not restored.
func (l *Ledger) Refund(id uuid.UUID) (model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.orderIndex(id)
	if idx < 0 {
		return model.Order{}, model.ErrOrderNotFound
	}
	if l.orders[idx].Status == model.OrderStatusRefunded {
		return l.orders[idx].Clone(), model.ErrAlreadyRefunded
	}

	l.orders[idx].Status = model.OrderStatusRefunded
	return l.orders[idx].Clone(), nil
}

// CreateMenuItem adds a new item to the catalogue under a freshly generated ID.
func (l *Ledger) CreateMenuItem(req model.MenuItemRequest) (model.MenuItem, error) {
	item := model.MenuItem{
		Name:     req.Name,
		Category: model.CategoryCoffee,
		Color:    defaultItemColor,
		Image:    defaultItemImage,
	}
	if req.Price == nil {
		return model.MenuItem{}, model.ErrInvalidMenuItem
	}
	applyMenuItemRequest(&item, req)
	if err := validateMenuItem(item); err != nil {
		return model.MenuItem{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item.ID = l.newID().String()
	l.menu = append(l.menu, item)
	return item, nil
}

// UpdateMenuItem applies the non-empty fields of req to an existing item.
func (l *Ledger) UpdateMenuItem(id string, req model.MenuItemRequest) (model.MenuItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.menuIndex(id)
	if idx < 0 {
		return model.MenuItem{}, model.ErrMenuItemNotFound
	}

	item := l.menu[idx]
	applyMenuItemRequest(&item, req)
	if err := validateMenuItem(item); err != nil {
		return model.MenuItem{}, err
	}

	l.menu[idx] = item
	return item, nil
}

// DeleteMenuItem removes an item from the catalogue. Lines already in the
// open cart keep their snapshot.
func (l *Ledger) DeleteMenuItem(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.menuIndex(id)
	if idx < 0 {
		return model.ErrMenuItemNotFound
	}
	l.menu = slices.Delete(l.menu, idx, idx+1)
	return nil
}

// AddTable appends a table to the floor plan with the next free ID.
func (l *Ledger) AddTable() model.Table {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := 1
	for _, t := range l.tables {
		if t.ID >= id {
			id = t.ID + 1
		}
	}

	table := model.Table{
		ID:     id,
		Label:  "T-" + strconv.Itoa(id),
		X:      newTablePosition,
		Y:      newTablePosition,
		Status: model.TableStatusEmpty,
	}
	l.tables = append(l.tables, table)
	return table
}

// UpdateTable renames and/or moves a table. Positions are clamped to the floor area.
func (l *Ledger) UpdateTable(id int, req model.TableUpdateRequest) (model.Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.tableIndex(id)
	if idx < 0 {
		return model.Table{}, model.ErrTableNotFound
	}

	t := &l.tables[idx]
	if req.Label != nil && *req.Label != "" {
		t.Label = *req.Label
	}
	if req.X != nil {
		t.X = clampPosition(*req.X)
	}
	if req.Y != nil {
		t.Y = clampPosition(*req.Y)
	}
	return *t, nil
}

// RemoveTable deletes a table. Removing the open table abandons its cart.
func (l *Ledger) RemoveTable(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.tableIndex(id)
	if idx < 0 {
		return model.ErrTableNotFound
	}
	if l.cart.TableID == id {
		l.abandonCart()
	}
	l.tables = slices.Delete(l.tables, idx, idx+1)
	return nil
}

// Profile returns the active store profile.
func (l *Ledger) Profile() (model.StoreProfile, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.profile == nil {
		return model.StoreProfile{}, model.ErrNotLoggedIn
	}
	return *l.profile, nil
}

// SetProfile installs or replaces the store profile.
func (l *Ledger) SetProfile(p model.StoreProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.profile = &p
	return nil
}

// Logout ends the store session: the order log, the cart and the profile are
// discarded and every table is freed. The catalogue keeps its current stock.
func (l *Ledger) Logout() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = nil
	l.cart = model.Cart{}
	l.profile = nil
	for i := range l.tables {
		l.tables[i].Status = model.TableStatusEmpty
	}
}

// abandonCart must be called with the write lock held.
func (l *Ledger) abandonCart() {
	if !l.cart.Open() {
		return
	}
	if idx := l.tableIndex(l.cart.TableID); idx >= 0 {
		l.tables[idx].Status = model.TableStatusEmpty
	}
	l.cart = model.Cart{}
}

func (l *Ledger) cartCopy() model.Cart {
	return model.Cart{
		TableID: l.cart.TableID,
		Lines:   slices.Clone(l.cart.Lines),
	}
}

func (l *Ledger) ordersCopy() []model.Order {
	out := make([]model.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}
	return out
}

func (l *Ledger) menuIndex(id string) int {
	return slices.IndexFunc(l.menu, func(m model.MenuItem) bool { return m.ID == id })
}

func (l *Ledger) tableIndex(id int) int {
	return slices.IndexFunc(l.tables, func(t model.Table) bool { return t.ID == id })
}

func (l *Ledger) orderIndex(id uuid.UUID) int {
	return slices.IndexFunc(l.orders, func(o model.Order) bool { return o.ID == id })
}

func applyMenuItemRequest(item *model.MenuItem, req model.MenuItemRequest) {
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.Color != "" {
		item.Color = req.Color
	}
	if req.Image != "" {
		item.Image = req.Image
	}
}

func validateMenuItem(item model.MenuItem) error {
	if item.Name == "" || !item.Category.Valid() {
		return model.ErrInvalidMenuItem
	}
	if item.Price.LessThan(decimal.Zero) || item.Cost.LessThan(decimal.Zero) || item.Stock < 0 {
		return model.ErrInvalidMenuItem
	}
	return nil
}

func clampPosition(v float64) float64 {
	return max(0, min(maxTablePosition, v))
}
