// Package report derives read-only aggregates from the order log.
package report

import (
	"pico-pos/internal/model"

	"github.com/shopspring/decimal"
)

// Summarize aggregates completed orders. Refunded orders are excluded
// entirely. Line costs use the current catalogue cost; items no longer on the
// menu cost nothing. The average order value is floored to a whole unit.
func Summarize(orders []model.Order, menu []model.MenuItem) model.Summary {
	costs := costIndex(menu)

	revenue := decimal.Zero
	cost := decimal.Zero
	count := 0

	for _, o := range orders {
		if o.Status != model.OrderStatusCompleted {
			continue
		}
		count++
		revenue = revenue.Add(o.Total)
		for _, line := range o.Items {
			cost = cost.Add(costs[line.ItemID].Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	avg := decimal.Zero
	if count > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(count))).Floor()
	}

	return model.Summary{
		Revenue:  revenue,
		Cost:     cost,
		Profit:   revenue.Sub(cost),
		Count:    count,
		AvgValue: avg,
	}
}

// Completed returns the orders that have not been refunded.
func Completed(orders []model.Order) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == model.OrderStatusCompleted {
			out = append(out, o)
		}
	}
	return out
}

// Stats builds the sales aggregate sent to the insight service. Unlike
// Summarize it does not filter by status; callers pass the orders to analyse.
func Stats(orders []model.Order, menu []model.MenuItem) model.SalesStats {
	costs := costIndex(menu)

	stats := model.SalesStats{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		ItemCounts:   make(map[string]int),
		OrderCount:   len(orders),
	}

	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		for _, line := range o.Items {
			stats.TotalCost = stats.TotalCost.Add(costs[line.ItemID].Mul(decimal.NewFromInt(int64(line.Quantity))))
			stats.ItemCounts[line.Name] += line.Quantity
		}
	}
	stats.NetProfit = stats.TotalRevenue.Sub(stats.TotalCost)

	return stats
}

func costIndex(menu []model.MenuItem) map[string]decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(menu))
	for _, m := range menu {
		costs[m.ID] = m.Cost
	}
	return costs
}
