package model

import "github.com/shopspring/decimal"

// Summary aggregates completed orders for the dashboard.
type Summary struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	Profit   decimal.Decimal `json:"profit"`
	Count    int             `json:"count"`
	AvgValue decimal.Decimal `json:"avgValue"`
}

// SalesStats is the aggregate handed to the insight service.
type SalesStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	ItemCounts   map[string]int  `json:"itemCounts"`
	OrderCount   int             `json:"orderCount"`
}

// ForecastPoint is a single predicted day.
type ForecastPoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// Insight is the combined result of an analysis run.
type Insight struct {
	Report      string          `json:"report"`
	Forecast    []ForecastPoint `json:"forecast"`
	CreditsLeft int             `json:"creditsLeft"`
}

// Analysis is the result of a report-only run.
type Analysis struct {
	Report      string `json:"report"`
	CreditsLeft int    `json:"creditsLeft"`
}

// Forecast is the result of a forecast-only run.
type Forecast struct {
	Forecast    []ForecastPoint `json:"forecast"`
	CreditsLeft int             `json:"creditsLeft"`
}

// CreditsResponse reports the remaining analysis credits.
type CreditsResponse struct {
	Credits int `json:"credits"`
}
