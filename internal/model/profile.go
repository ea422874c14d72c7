package model

import "github.com/shopspring/decimal"

// LogoIcon is the logo shown for the store.
type LogoIcon string

const (
	LogoCoffee   LogoIcon = "coffee"
	LogoMountain LogoIcon = "mountain"
	LogoCloud    LogoIcon = "cloud"
)

// StoreProfile holds the store configuration printed on receipts.
type StoreProfile struct {
	Name              string          `json:"name"`
	Location          string          `json:"location"`
	Currency          string          `json:"currency"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	TaxID             string          `json:"taxId"`
	SettlementAccount string          `json:"settlementAccount"`
	LogoIcon          LogoIcon        `json:"logoIcon"`
	ThemeColor        string          `json:"themeColor"`
}

// Validate rejects a negative tax rate or an unknown logo.
func (p StoreProfile) Validate() error {
	if p.TaxRate.IsNegative() {
		return ErrInvalidProfile
	}
	switch p.LogoIcon {
	case "", LogoCoffee, LogoMountain, LogoCloud:
	default:
		return ErrInvalidProfile
	}
	return nil
}

// LoginRequest represents the payload for starting a session.
type LoginRequest struct {
	Account string `json:"account"`
}
