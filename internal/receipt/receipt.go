// Package receipt renders printable receipts and the tax decompositions shown
// next to a cart or an order.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"pico-pos/internal/model"

	"github.com/shopspring/decimal"
)

const fallbackTaxID = "123456789"

var (
	previewTaxableShare = decimal.RequireFromString("0.87")
	previewTaxShare     = decimal.RequireFromString("0.13")
	receiptTaxableShare = decimal.RequireFromString("0.87")
	hundred             = decimal.NewFromInt(100)
)

// Preview splits a cart total for display before checkout using a fixed
// 87/13 split. Both parts are floored.
func Preview(total decimal.Decimal) (subtotal, tax decimal.Decimal) {
	return total.Mul(previewTaxableShare).Floor(), total.Mul(previewTaxShare).Floor()
}

// Taxes computes the lines printed under the receipt total: the taxable
// amount is 87% of the total and the tax uses the store's rate. Both are
// floored. The two figures are not required to add up to the total.
func Taxes(total, taxRate decimal.Decimal) (taxable, tax decimal.Decimal) {
	return total.Mul(receiptTaxableShare).Floor(), total.Mul(taxRate).Div(hundred).Floor()
}

const receiptTemplate = `{{.StoreName}}
{{.Location}}
PAN: {{.TaxID}}
--------------------------------
ORDER #{{.ShortID}}
{{.Timestamp}}
{{if .Refunded}}*** REFUNDED RECEIPT ***
{{end}}--------------------------------
ITEM                         AMT
{{range .Lines}}{{printf "%-24s %7s" .Label .Amount}}
{{if .Note}}  - {{.Note}}
{{end}}{{end}}================================
{{printf "%-16s %15s" "TOTAL" .Total}}
{{printf "%-16s %15s" "Taxable Amt" .Taxable}}
{{printf "%-16s %15s" .VATLabel .Tax}}
--------------------------------
Thank you for visiting.
{{.OrderID}}
`

var tmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

type receiptLine struct {
	Label  string
	Amount string
	Note   string
}

type receiptData struct {
	StoreName string
	Location  string
	TaxID     string
	ShortID   string
	OrderID   string
	Timestamp string
	Refunded  bool
	Lines     []receiptLine
	Total     string
	Taxable   string
	VATLabel  string
	Tax       string
}

// Render writes a printable receipt for order to w.
func Render(w io.Writer, order model.Order, profile model.StoreProfile) error {
	taxable, tax := Taxes(order.Total, profile.TaxRate)

	taxID := profile.TaxID
	if taxID == "" {
		taxID = fallbackTaxID
	}

	data := receiptData{
		StoreName: strings.ToUpper(profile.Name),
		Location:  profile.Location,
		TaxID:     taxID,
		ShortID:   order.ShortID(),
		OrderID:   order.ID.String(),
		Timestamp: order.CreatedAt.Format("1/2/2006, 3:04:05 PM"),
		Refunded:  order.Status == model.OrderStatusRefunded,
		Total:     money(profile.Currency, order.Total),
		Taxable:   money(profile.Currency, taxable),
		VATLabel:  fmt.Sprintf("VAT (%s%%)", profile.TaxRate.String()),
		Tax:       money(profile.Currency, tax),
	}
	for _, line := range order.Items {
		data.Lines = append(data.Lines, receiptLine{
			Label:  fmt.Sprintf("%s x%d", line.Name, line.Quantity),
			Amount: line.Amount().StringFixed(2),
			Note:   line.Note,
		})
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}

func money(currency string, amount decimal.Decimal) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}
