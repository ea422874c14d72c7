package catalog

import (
	"fmt"

	"pico-pos/internal/model"

	"github.com/shopspring/decimal"
)

// Seed is the initial state a ledger is built from.
type Seed struct {
	Menu     []SeedItem   `yaml:"menu"`
	Tables   []SeedTable  `yaml:"tables"`
	Profiles SeedProfiles `yaml:"profiles"`
}

// SeedItem is a menu entry as written in a seed file.
type SeedItem struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Price    float64 `yaml:"price"`
	Cost     float64 `yaml:"cost"`
	Stock    int     `yaml:"stock"`
	Color    string  `yaml:"color"`
	Image    string  `yaml:"image"`
}

// SeedTable is a floor plan entry as written in a seed file.
type SeedTable struct {
	ID    int     `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// SeedProfiles holds the store profiles offered at login.
// Demo is used for accounts containing "demo", Default for everyone else.
type SeedProfiles struct {
	Demo    SeedProfile `yaml:"demo"`
	Default SeedProfile `yaml:"default"`
}

// SeedProfile is a store profile as written in a seed file.
type SeedProfile struct {
	Name              string  `yaml:"name"`
	Location          string  `yaml:"location"`
	Currency          string  `yaml:"currency"`
	TaxRate           float64 `yaml:"taxRate"`
	TaxID             string  `yaml:"taxId"`
	SettlementAccount string  `yaml:"settlementAccount"`
	LogoIcon          string  `yaml:"logoIcon"`
	ThemeColor        string  `yaml:"themeColor"`
}

// Validate checks that the seed can build a consistent ledger.
func (s *Seed) Validate() error {
	ids := make(map[string]struct{}, len(s.Menu))
	for i, item := range s.Menu {
		if item.ID == "" || item.Name == "" {
			return fmt.Errorf("menu item %d: id and name are required", i)
		}
		if _, dup := ids[item.ID]; dup {
			return fmt.Errorf("menu item %d: duplicate id %q", i, item.ID)
		}
		ids[item.ID] = struct{}{}

		if !model.Category(item.Category).Valid() {
			return fmt.Errorf("menu item %q: invalid category %q", item.ID, item.Category)
		}
		if item.Price < 0 || item.Cost < 0 || item.Stock < 0 {
			return fmt.Errorf("menu item %q: price, cost and stock must be non-negative", item.ID)
		}
	}

	tableIDs := make(map[int]struct{}, len(s.Tables))
	for i, t := range s.Tables {
		if t.ID <= 0 {
			return fmt.Errorf("table %d: id must be positive", i)
		}
		if _, dup := tableIDs[t.ID]; dup {
			return fmt.Errorf("table %d: duplicate id %d", i, t.ID)
		}
		tableIDs[t.ID] = struct{}{}
	}

	for name, p := range map[string]SeedProfile{"demo": s.Profiles.Demo, "default": s.Profiles.Default} {
		if err := p.StoreProfile().Validate(); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}

	return nil
}

// MenuItems converts the seed menu into catalogue entries.
func (s *Seed) MenuItems() []model.MenuItem {
	items := make([]model.MenuItem, len(s.Menu))
	for i, item := range s.Menu {
		items[i] = model.MenuItem{
			ID:       item.ID,
			Name:     item.Name,
			Category: model.Category(item.Category),
			Price:    decimal.NewFromFloat(item.Price),
			Cost:     decimal.NewFromFloat(item.Cost),
			Stock:    item.Stock,
			Color:    item.Color,
			Image:    item.Image,
		}
	}
	return items
}

// FloorPlan converts the seed tables into empty tables.
func (s *Seed) FloorPlan() []model.Table {
	tables := make([]model.Table, len(s.Tables))
	for i, t := range s.Tables {
		tables[i] = model.Table{
			ID:     t.ID,
			Label:  t.Label,
			X:      t.X,
			Y:      t.Y,
			Status: model.TableStatusEmpty,
		}
	}
	return tables
}

// StoreProfile converts the seed profile into a store profile.
func (p SeedProfile) StoreProfile() model.StoreProfile {
	return model.StoreProfile{
		Name:              p.Name,
		Location:          p.Location,
		Currency:          p.Currency,
		TaxRate:           decimal.NewFromFloat(p.TaxRate),
		TaxID:             p.TaxID,
		SettlementAccount: p.SettlementAccount,
		LogoIcon:          model.LogoIcon(p.LogoIcon),
		ThemeColor:        p.ThemeColor,
	}
}

const imageBase = "https://images.unsplash.com/"

// DefaultSeed returns the built-in demo catalogue: nine menu items, twelve
// tables and the two login profiles.
func DefaultSeed() *Seed {
	img := func(id string) string {
		return imageBase + id + "?auto=format&fit=crop&w=600&q=80"
	}

	return &Seed{
		Menu: []SeedItem{
			{ID: "1", Name: "Americano", Category: "coffee", Price: 3.50, Cost: 0.80, Stock: 100, Color: "bg-amber-800", Image: img("photo-1509042239860-f550ce710b93")},
			{ID: "2", Name: "Cafe Latte", Category: "coffee", Price: 4.50, Cost: 1.20, Stock: 80, Color: "bg-amber-100", Image: img("photo-1561047029-3000c68339ca")},
			{ID: "3", Name: "Cappuccino", Category: "coffee", Price: 4.50, Cost: 1.20, Stock: 50, Color: "bg-amber-100", Image: img("photo-1572442388796-11668a67e53d")},
			{ID: "4", Name: "Vanilla Latte", Category: "coffee", Price: 5.00, Cost: 1.50, Stock: 40, Color: "bg-amber-100", Image: img("photo-1541167760496-1628856ab772")},
			{ID: "5", Name: "Lemonade", Category: "beverage", Price: 4.00, Cost: 0.50, Stock: 30, Color: "bg-yellow-200", Image: img("photo-1513558161293-cdaf765ed2fd")},
			{ID: "6", Name: "Mint Mojito", Category: "beverage", Price: 5.50, Cost: 1.00, Stock: 25, Color: "bg-green-200", Image: img("photo-1621263764928-df1444c5e859")},
			{ID: "7", Name: "Chocolate Cake", Category: "dessert", Price: 6.50, Cost: 2.00, Stock: 10, Color: "bg-brown-400", Image: img("photo-1578985545062-69928b1d9587")},
			{ID: "8", Name: "Cheese Cake", Category: "dessert", Price: 7.00, Cost: 2.50, Stock: 0, Color: "bg-yellow-100", Image: img("photo-1533134242443-d4fd215305ad")},
			{ID: "9", Name: "Club Sandwich", Category: "meal", Price: 12.00, Cost: 4.00, Stock: 20, Color: "bg-green-100", Image: img("photo-1528735602780-2552fd46c7af")},
		},
		Tables: []SeedTable{
			{ID: 1, Label: "T-1", X: 5, Y: 5},
			{ID: 2, Label: "T-2", X: 25, Y: 5},
			{ID: 3, Label: "T-3", X: 45, Y: 5},
			{ID: 4, Label: "T-4", X: 5, Y: 30},
			{ID: 5, Label: "T-5", X: 25, Y: 30},
			{ID: 6, Label: "T-6", X: 45, Y: 30},
			{ID: 7, Label: "VIP-1", X: 70, Y: 5},
			{ID: 8, Label: "VIP-2", X: 70, Y: 30},
			{ID: 9, Label: "W-1", X: 5, Y: 60},
			{ID: 10, Label: "W-2", X: 25, Y: 60},
			{ID: 11, Label: "W-3", X: 45, Y: 60},
			{ID: 12, Label: "Patio", X: 70, Y: 60},
		},
		Profiles: SeedProfiles{
			Demo: SeedProfile{
				Name:              "Blue Bottle Demo",
				Location:          "Gangnam, Seoul",
				Currency:          "KRW",
				TaxRate:           10,
				TaxID:             "123-456-7890",
				SettlementAccount: "KR-BANK-001",
				LogoIcon:          "coffee",
				ThemeColor:        "bg-indigo-900",
			},
			Default: SeedProfile{
				Name:              "Pico Cafe",
				Location:          "Global Branch",
				Currency:          "USD",
				TaxRate:           8,
				TaxID:             "987-654-321",
				SettlementAccount: "US-BANK-999",
				LogoIcon:          "cloud",
				ThemeColor:        "bg-indigo-600",
			},
		},
	}
}
