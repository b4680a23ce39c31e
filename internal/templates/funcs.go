package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"invoice-service/internal/format"
	"invoice-service/internal/gst"
	"invoice-service/internal/models"
)

var sharedFuncs = template.FuncMap{
	"currency": format.Currency,
	"date":     format.Date,
	"str": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"add":   func(a, b float64) float64 { return a + b },
	"half":  func(a float64) float64 { return a / 2 },
	"inc":   func(i int) int { return i + 1 },
	"upper": strings.ToUpper,
	"words": format.AmountInWords,
	"title": func(s string) string {
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(sharedFuncs).Parse(text))
}

func execute(tpl *template.Template, view any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

// baseView is what the simpler templates render from: the invoice aggregate
// plus the resolved logo. Logo is a data URI (or empty) typed as
// template.URL so html/template doesn't strip the data: scheme.
type baseView struct {
	*models.InvoiceData
	Logo template.URL
}

func newBaseView(data *models.InvoiceData, logo string) baseView {
	return baseView{InvoiceData: data, Logo: template.URL(logo)}
}

// taxRow is one line of the HSN/SAC tax summary table rendered by the
// detailed-breakdown templates.
type taxRow struct {
	SAC          string
	TaxableValue float64
	CGST         float64
	SGST         float64
	IGST         float64
	Total        float64
}

// buildTaxRows recomputes the per-line CGST/SGST/IGST split from the raw
// state strings at render time. This intentionally runs independently of the
// persisted per-line gst_amount, matching how the detailed templates have
// always behaved when a party's state changed after invoice creation.
func buildTaxRows(data *models.InvoiceData) ([]taxRow, gst.Breakdown) {
	supplier := data.CompanyState()
	recipient := data.ClientState()

	rows := make([]taxRow, 0, len(data.Items))
	var totals gst.Breakdown
	for _, item := range data.Items {
		b, err := gst.Calculate(item.LineTotal, item.GSTRate, supplier, recipient)
		if err != nil {
			slog.Warn("skipping tax split for invalid line item",
				"item_name", item.ItemName,
				"error", err)
		}
		sac := ""
		if item.HSNSAC != nil {
			sac = *item.HSNSAC
		}
		rows = append(rows, taxRow{
			SAC:          sac,
			TaxableValue: item.LineTotal,
			CGST:         b.CGSTAmount,
			SGST:         b.SGSTAmount,
			IGST:         b.IGSTAmount,
			Total:        b.TotalTax(),
		})
		totals.CGSTAmount += b.CGSTAmount
		totals.SGSTAmount += b.SGSTAmount
		totals.IGSTAmount += b.IGSTAmount
	}
	return rows, totals
}

// taxView extends baseView with the recomputed tax breakdown for the
// templates that print the full HSN/SAC summary table.
type taxView struct {
	baseView
	TaxRows      []taxRow
	TaxTotals    gst.Breakdown
	IntraState   bool
	HeadlineRate float64
}

func newTaxView(data *models.InvoiceData, logo string) taxView {
	rows, totals := buildTaxRows(data)
	return taxView{
		baseView:     newBaseView(data, logo),
		TaxRows:      rows,
		TaxTotals:    totals,
		IntraState:   gst.IntraState(data.CompanyState(), data.ClientState()),
		HeadlineRate: headlineRate(data),
	}
}

// headlineRate is the GST rate shown beside the IGST/CGST/SGST total rows.
// Invoices commonly carry one rate across all lines; when they don't, the
// first line's rate labels the row and the amounts stay exact.
func headlineRate(data *models.InvoiceData) float64 {
	if len(data.Items) == 0 {
		return 0
	}
	return data.Items[0].GSTRate
}
