package ledger

import (
	"sync"
	"testing"
	"time"

	"pico-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 6, 12, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	menu := []model.MenuItem{
		{ID: "1", Name: "Americano", Category: model.CategoryCoffee, Price: dec("3.50"), Cost: dec("0.80"), Stock: 2},
		{ID: "2", Name: "Cafe Latte", Category: model.CategoryCoffee, Price: dec("4.50"), Cost: dec("1.20"), Stock: 80},
		{ID: "8", Name: "Cheese Cake", Category: model.CategoryDessert, Price: dec("7.00"), Cost: dec("2.50"), Stock: 0},
	}
	tables := []model.Table{
		{ID: 1, Label: "T-1", X: 5, Y: 5},
		{ID: 2, Label: "T-2", X: 25, Y: 5},
		{ID: 7, Label: "VIP-1", X: 70, Y: 5},
	}
	return New(menu, tables, WithClock(func() time.Time { return fixedTime }))
}

func tableStatus(t *testing.T, l *Ledger, id int) model.TableStatus {
	t.Helper()
	for _, tb := range l.Tables() {
		if tb.ID == id {
			return tb.Status
		}
	}
	t.Fatalf("table %d not found", id)
	return ""
}

func stockOf(t *testing.T, l *Ledger, id string) int {
	t.Helper()
	item, err := l.MenuItem(id)
	require.NoError(t, err)
	return item.Stock
}

func TestNew_TablesStartEmpty(t *testing.T) {
	l := New(nil, []model.Table{{ID: 1, Status: model.TableStatusOccupied}})
	assert.Equal(t, model.TableStatusEmpty, l.Tables()[0].Status)
}

func TestOpenTable(t *testing.T) {
	l := newTestLedger(t)

	c, err := l.OpenTable(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TableID)
	assert.Empty(t, c.Lines)
	assert.Equal(t, model.TableStatusOccupied, tableStatus(t, l, 1))

	_, err = l.OpenTable(99)
	assert.ErrorIs(t, err, model.ErrTableNotFound)
	assert.Equal(t, 1, l.Cart().TableID, "failed open leaves the current cart alone")
}

func TestOpenTable_AbandonsPreviousCart(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(1)
	require.NoError(t, err)
	_, err = l.AddItem("2")
	require.NoError(t, err)

	c, err := l.OpenTable(2)
	require.NoError(t, err)

	assert.Empty(t, c.Lines)
	assert.Equal(t, model.TableStatusEmpty, tableStatus(t, l, 1))
	assert.Equal(t, model.TableStatusOccupied, tableStatus(t, l, 2))
	assert.Equal(t, 80, stockOf(t, l, "2"), "abandoning never touches stock")
}

func TestCloseTable(t *testing.T) {
	l := newTestLedger(t)

	l.CloseTable()
	assert.False(t, l.Cart().Open())

	_, err := l.OpenTable(7)
	require.NoError(t, err)
	_, err = l.AddItem("1")
	require.NoError(t, err)

	l.CloseTable()

	assert.False(t, l.Cart().Open())
	assert.Empty(t, l.Cart().Lines)
	assert.Equal(t, model.TableStatusEmpty, tableStatus(t, l, 7))
}

func TestCartOperations_RequireOpenTable(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.AddItem("1")
	assert.ErrorIs(t, err, model.ErrNoActiveTable)

	_, err = l.UpdateQuantity("1", 1)
	assert.ErrorIs(t, err, model.ErrNoActiveTable)

	_, err = l.SetNote("1", "hot")
	assert.ErrorIs(t, err, model.ErrNoActiveTable)
}

func TestCheckout_ReferenceExample(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = l.AddItem("1")
		require.NoError(t, err)
	}
	c, err := l.AddItem("1")
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	order, err := l.Checkout()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, 1, order.TableID)
	assert.True(t, dec("7.00").Equal(order.Total))
	assert.Equal(t, model.OrderStatusCompleted, order.Status)
	assert.Equal(t, fixedTime, order.CreatedAt)

	assert.Equal(t, 0, stockOf(t, l, "1"))
	assert.Equal(t, model.TableStatusEmpty, tableStatus(t, l, 1))
	assert.False(t, l.Cart().Open())
	assert.Len(t, l.Orders(), 1)
}

func TestCheckout_TotalMatchesCartAndStockDecreases(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = l.AddItem("2")
		require.NoError(t, err)
	}
	_, err = l.AddItem("1")
	require.NoError(t, err)
	_, err = l.SetNote("2", "oat milk")
	require.NoError(t, err)

	order, err := l.Checkout()
	require.NoError(t, err)

	assert.Equal(t, "17", order.Total.String())
	sum := decimal.Zero
	for _, line := range order.Items {
		sum = sum.Add(line.Amount())
	}
	assert.True(t, sum.Equal(order.Total))
	assert.Equal(t, "oat milk", order.Items[0].Note)
	assert.Equal(t, 77, stockOf(t, l, "2"))
	assert.Equal(t, 1, stockOf(t, l, "1"))
}

func TestCheckout_StockClampedAtZero(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(1)
	require.NoError(t, err)
	_, err = l.AddItem("1")
	require.NoError(t, err)
	_, err = l.AddItem("1")
	require.NoError(t, err)

	one := 1
	_, err = l.UpdateMenuItem("1", model.MenuItemRequest{Stock: &one})
	require.NoError(t, err)

	_, err = l.Checkout()
	require.NoError(t, err)
	assert.Equal(t, 0, stockOf(t, l, "1"))
}

func TestCheckout_NoOps(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Checkout()
	assert.ErrorIs(t, err, model.ErrNoActiveTable)

	_, err = l.OpenTable(1)
	require.NoError(t, err)

	_, err = l.Checkout()
	assert.ErrorIs(t, err, model.ErrEmptyCart)

	assert.Empty(t, l.Orders())
	assert.Equal(t, 2, stockOf(t, l, "1"))
	assert.Equal(t, 80, stockOf(t, l, "2"))
	assert.Equal(t, model.TableStatusOccupied, tableStatus(t, l, 1))
	assert.Equal(t, 1, l.Cart().TableID)
}

func TestCheckout_OrderIsSnapshot(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(1)
	require.NoError(t, err)
	_, err = l.AddItem("2")
	require.NoError(t, err)
	order, err := l.Checkout()
	require.NoError(t, err)

	newPrice := dec("9.99")
	_, err = l.UpdateMenuItem("2", model.MenuItemRequest{Name: "Renamed", Price: &newPrice})
	require.NoError(t, err)

	order.Items[0].Quantity = 50

	stored, err := l.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Latte", stored.Items[0].Name)
	assert.True(t, dec("4.50").Equal(stored.Items[0].Price))
	assert.Equal(t, 1, stored.Items[0].Quantity)
}

func TestRefund(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenTable(1)
	require.NoError(t, err)
	_, err = l.AddItem("2")
	require.NoError(t, err)
	first, err := l.Checkout()
	require.NoError(t, err)

	_, err = l.OpenTable(2)
	require.NoError(t, err)
	_, err = l.AddItem("2")
	require.NoError(t, err)
	second, err := l.Checkout()
	require.NoError(t, err)

	stockBefore := stockOf(t, l, "2")
	tablesBefore := l.Tables()

	refunded, err := l.Refund(first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusRefunded, refunded.Status)

	assert.Equal(t, stockBefore, stockOf(t, l, "2"), "refund does not restock")
	assert.Equal(t, tablesBefore, l.Tables())

	other, err := l.Order(second.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, other.Status)

	_, err = l.Refund(first.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyRefunded)

	_, err = l.Refund(uuid.New())
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	again, err := l.Order(first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusRefunded, again.Status)
	assert.True(t, first.Total.Equal(again.Total))
}

func TestCreateMenuItem(t *testing.T) {
	l := newTestLedger(t)
	price := dec("5.25")
	negative := dec("-1")
	stock := 12

	tests := []struct {
		name        string
		req         model.MenuItemRequest
		expectedErr error
	}{
		{name: "Defaults applied", req: model.MenuItemRequest{Name: "Flat White", Price: &price, Stock: &stock}},
		{name: "Missing name", req: model.MenuItemRequest{Price: &price}, expectedErr: model.ErrInvalidMenuItem},
		{name: "Missing price", req: model.MenuItemRequest{Name: "Mocha"}, expectedErr: model.ErrInvalidMenuItem},
		{name: "Negative price", req: model.MenuItemRequest{Name: "Mocha", Price: &negative}, expectedErr: model.ErrInvalidMenuItem},
		{name: "Negative cost", req: model.MenuItemRequest{Name: "Mocha", Price: &price, Cost: &negative}, expectedErr: model.ErrInvalidMenuItem},
		{name: "Unknown category", req: model.MenuItemRequest{Name: "Mocha", Price: &price, Category: "soup"}, expectedErr: model.ErrInvalidMenuItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(l.Menu())
			item, err := l.CreateMenuItem(tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Len(t, l.Menu(), before)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, item.ID)
			assert.Equal(t, model.CategoryCoffee, item.Category)
			assert.Equal(t, defaultItemColor, item.Color)
			assert.Equal(t, defaultItemImage, item.Image)
			assert.Equal(t, 12, item.Stock)
			assert.Len(t, l.Menu(), before+1)
		})
	}
}

func TestUpdateAndDeleteMenuItem(t *testing.T) {
	l := newTestLedger(t)
	stock := 5
	negative := -3

	item, err := l.UpdateMenuItem("8", model.MenuItemRequest{Stock: &stock, Category: model.CategoryMeal})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Stock)
	assert.Equal(t, model.CategoryMeal, item.Category)
	assert.Equal(t, "Cheese Cake", item.Name)

	_, err = l.UpdateMenuItem("8", model.MenuItemRequest{Stock: &negative})
	assert.ErrorIs(t, err, model.ErrInvalidMenuItem)
	assert.Equal(t, 5, stockOf(t, l, "8"))

	_, err = l.UpdateMenuItem("nope", model.MenuItemRequest{Name: "x"})
	assert.ErrorIs(t, err, model.ErrMenuItemNotFound)

	require.NoError(t, l.DeleteMenuItem("8"))
	_, err = l.MenuItem("8")
	assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
	assert.ErrorIs(t, l.DeleteMenuItem("8"), model.ErrMenuItemNotFound)
}

func TestTables(t *testing.T) {
	l := newTestLedger(t)

	added := l.AddTable()
	assert.Equal(t, 8, added.ID)
	assert.Equal(t, "T-8", added.Label)
	assert.Equal(t, 10.0, added.X)
	assert.Equal(t, model.TableStatusEmpty, added.Status)

	label := "Patio"
	x, y := 120.0, -4.0
	moved, err := l.UpdateTable(8, model.TableUpdateRequest{Label: &label, X: &x, Y: &y})
	require.NoError(t, err)
	assert.Equal(t, "Patio", moved.Label)
	assert.Equal(t, 90.0, moved.X)
	assert.Equal(t, 0.0, moved.Y)

	_, err = l.UpdateTable(99, model.TableUpdateRequest{X: &x})
	assert.ErrorIs(t, err, model.ErrTableNotFound)

	_, err = l.OpenTable(8)
	require.NoError(t, err)
	require.NoError(t, l.RemoveTable(8))
	assert.False(t, l.Cart().Open())
	assert.ErrorIs(t, l.RemoveTable(8), model.ErrTableNotFound)

	empty := New(nil, nil)
	assert.Equal(t, 1, empty.AddTable().ID)
}

func TestProfileAndLogout(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Profile()
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)

	assert.ErrorIs(t, l.SetProfile(model.StoreProfile{Name: "x", TaxRate: dec("-1")}), model.ErrInvalidProfile)
	assert.ErrorIs(t, l.SetProfile(model.StoreProfile{Name: "x", LogoIcon: "rocket"}), model.ErrInvalidProfile)

	profile := model.StoreProfile{Name: "Pico Cafe", Currency: "USD", TaxRate: dec("8"), LogoIcon: model.LogoCloud}
	require.NoError(t, l.SetProfile(profile))
	got, err := l.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Pico Cafe", got.Name)

	_, err = l.OpenTable(1)
	require.NoError(t, err)
	_, err = l.AddItem("2")
	require.NoError(t, err)
	_, err = l.Checkout()
	require.NoError(t, err)
	_, err = l.OpenTable(2)
	require.NoError(t, err)

	l.Logout()

	assert.Empty(t, l.Orders())
	assert.False(t, l.Cart().Open())
	assert.Equal(t, model.TableStatusEmpty, tableStatus(t, l, 2))
	assert.Equal(t, 79, stockOf(t, l, "2"), "catalogue survives logout")
	_, err = l.Profile()
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	l := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.OpenTable(1); err != nil {
				return
			}
			_, _ = l.AddItem("1")
			_, _ = l.Checkout()
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, stockOf(t, l, "1"), 0)
	sold := 0
	for _, o := range l.Orders() {
		for _, line := range o.Items {
			sold += line.Quantity
		}
	}
	assert.LessOrEqual(t, sold, 2)
}
