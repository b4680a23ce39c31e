package templates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-service/internal/models"
)

type stubFetcher struct {
	uri string
	err error
}

func (f *stubFetcher) FetchDataURI(_ context.Context, _ string) (string, error) {
	return f.uri, f.err
}

func strPtr(s string) *string { return &s }

func sampleInvoiceData() *models.InvoiceData {
	return &models.InvoiceData{
		Invoice: models.InvoiceInfo{
			ID:            "b9c7a8a6-4f0e-4e57-9a53-0b3d2d9f1c11",
			InvoiceNumber: "INV-2025-001",
			InvoiceDate:   "2025-04-15",
			DueDate:       strPtr("2025-05-15"),
			Status:        "sent",
			Subtotal:      1234.50,
			TotalGST:      222.21,
			TotalAmount:   1456.71,
		},
		Client: models.ClientInfo{
			Name:    "Acme Traders",
			Address: strPtr("12 MG Road"),
			GSTIN:   strPtr("30AAACA1234A1Z5"),
			State:   strPtr("Goa"),
			City:    strPtr("Panaji"),
			Pin:     strPtr("403001"),
		},
		Company: &models.CompanyInfo{
			CompanyName:       "Horizon Consulting",
			Address:           strPtr("4 Beach Road, Panaji"),
			Email:             strPtr("billing@horizon.example"),
			Phone:             strPtr("+91 98765 43210"),
			GSTIN:             strPtr("30AABCH1234B1Z9"),
			PAN:               strPtr("AABCH1234B"),
			State:             strPtr("Goa"),
			BankName:          strPtr("State Bank of India, Panaji"),
			BankAccountNumber: strPtr("00001234567890"),
			BankIFSC:          strPtr("SBIN0000123"),
		},
		Items: []models.LineItem{
			{
				ItemName:  "Consulting services",
				HSNSAC:    strPtr("998311"),
				Quantity:  1,
				UnitPrice: 1234.50,
				GSTRate:   18,
				LineTotal: 1234.50,
				GSTAmount: 222.21,
			},
		},
	}
}

// Every template must render a data set where all optional fields, the
// company included, are absent.
func TestRenderTolerantOfMissingOptionalFields(t *testing.T) {
	registry := NewRegistry(nil)

	bare := &models.InvoiceData{
		Invoice: models.InvoiceInfo{
			InvoiceNumber: "INV-BARE-1",
			InvoiceDate:   "2025-01-01",
			Status:        "draft",
		},
		Client: models.ClientInfo{Name: "Walk-in Customer"},
		Items: []models.LineItem{
			{ItemName: "Widget", Quantity: 2, UnitPrice: 50, GSTRate: 0, LineTotal: 100},
		},
	}

	for _, info := range registry.Catalog() {
		t.Run(info.ID, func(t *testing.T) {
			html, err := registry.Resolve(info.ID).Render(bare)
			require.NoError(t, err)
			assert.Contains(t, html, "INV-BARE-1")
			assert.Contains(t, html, "Walk-in Customer")
		})
	}
}

func TestRenderRejectsIncompleteInvoice(t *testing.T) {
	registry := NewRegistry(nil)

	tests := []struct {
		name   string
		mutate func(*models.InvoiceData)
	}{
		{"no invoice number", func(d *models.InvoiceData) { d.Invoice.InvoiceNumber = "" }},
		{"no client name", func(d *models.InvoiceData) { d.Client.Name = "" }},
		{"no items", func(d *models.InvoiceData) { d.Items = nil }},
		{"unnamed item", func(d *models.InvoiceData) { d.Items[0].ItemName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := sampleInvoiceData()
			tt.mutate(data)
			_, err := registry.Resolve("modern").Render(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrMissingData))
		})
	}
}

// The modern family prints line_total + gst_amount in the Amount column; the
// letterhead family prints line_total alone. Two line items with distinct
// values keep the per-row amounts apart from the invoice totals.
func TestAmountColumnConvention(t *testing.T) {
	registry := NewRegistry(nil)

	data := sampleInvoiceData()
	data.Items = []models.LineItem{
		{ItemName: "Design work", Quantity: 1, UnitPrice: 100, GSTRate: 18, LineTotal: 100, GSTAmount: 18},
		{ItemName: "Development work", Quantity: 1, UnitPrice: 200, GSTRate: 18, LineTotal: 200, GSTAmount: 36},
	}
	data.Invoice.Subtotal = 300
	data.Invoice.TotalGST = 54
	data.Invoice.TotalAmount = 354

	taxInclusive := []string{"modern", "classic", "minimal"}
	for _, id := range taxInclusive {
		html, err := registry.Resolve(id).Render(data)
		require.NoError(t, err)
		assert.Contains(t, html, "₹118.00", "%s shows tax-inclusive amounts", id)
		assert.Contains(t, html, "₹236.00", "%s shows tax-inclusive amounts", id)
	}

	taxExclusive := []string{"simple_logo", "formal_letterhead", "modern_minimal", "corporate", "extrape_invoice"}
	for _, id := range taxExclusive {
		html, err := registry.Resolve(id).Render(data)
		require.NoError(t, err)
		assert.NotContains(t, html, "₹118.00", "%s shows tax-exclusive amounts", id)
		assert.NotContains(t, html, "₹236.00", "%s shows tax-exclusive amounts", id)
	}
}

func TestSimpleLogoOmitsImageWithoutLogoURL(t *testing.T) {
	registry := NewRegistry(&stubFetcher{uri: "data:image/png;base64,aGk="})

	data := sampleInvoiceData()
	data.Company.LogoURL = nil

	html, err := registry.Resolve("simple_logo").Render(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
}

func TestSimpleLogoInlinesFetchedLogo(t *testing.T) {
	registry := NewRegistry(&stubFetcher{uri: "data:image/png;base64,aGk="})

	data := sampleInvoiceData()
	data.Company.LogoURL = strPtr("https://cdn.example/logo.png")

	html, err := registry.Resolve("simple_logo").Render(data)
	require.NoError(t, err)
	assert.Contains(t, html, `src="data:image/png;base64,aGk="`)
}

func TestLogoFetchFailureDegradesToNoLogo(t *testing.T) {
	registry := NewRegistry(&stubFetcher{err: models.ErrLogoFetch})

	data := sampleInvoiceData()
	data.Company.LogoURL = strPtr("https://cdn.example/logo.png")

	for _, id := range []string{"simple_logo", "formal_letterhead", "modern_minimal", "corporate", "extrape_invoice"} {
		html, err := registry.Resolve(id).Render(data)
		require.NoError(t, err, "logo failure must not abort %s", id)
		assert.NotContains(t, html, "<img", id)
	}
}

func TestCorporateTaxBreakdownIntraState(t *testing.T) {
	registry := NewRegistry(nil)
	data := sampleInvoiceData()

	html, err := registry.Resolve("corporate").Render(data)
	require.NoError(t, err)

	// Same state on both sides: CGST/SGST rows, no IGST total row.
	assert.Contains(t, html, "CGST @ 9%")
	assert.Contains(t, html, "SGST @ 9%")
	assert.NotContains(t, html, "IGST @")
	assert.Contains(t, html, "₹111.11")
	assert.Contains(t, html, "998311")
}

func TestCorporateTaxBreakdownInterState(t *testing.T) {
	registry := NewRegistry(nil)
	data := sampleInvoiceData()
	data.Client.State = strPtr("Karnataka")

	html, err := registry.Resolve("corporate").Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "IGST @ 18%")
	assert.NotContains(t, html, "CGST @ 9%")
	assert.Contains(t, html, "₹222.21")
}

func TestExtrapeStatutoryFields(t *testing.T) {
	registry := NewRegistry(nil)
	data := sampleInvoiceData()
	data.Invoice.ReverseCharge = true
	data.Invoice.PlaceOfSupply = strPtr("Goa")

	html, err := registry.Resolve("extrape_invoice").Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "GST Payable under reverse charge:</strong> YES")
	assert.Contains(t, html, "Place of Supply")
	assert.Contains(t, html, "Amount Chargeable (in words):")
	assert.Contains(t, html, "Rupees")
	assert.Contains(t, html, "Director / Authorized Signatory")
	assert.Contains(t, html, "State Bank of India, Panaji")
}

func TestExtrapeReverseChargeDefaultsToNo(t *testing.T) {
	registry := NewRegistry(nil)

	html, err := registry.Resolve("extrape_invoice").Render(sampleInvoiceData())
	require.NoError(t, err)
	assert.Contains(t, html, "GST Payable under reverse charge:</strong> NO")
}

func TestRenderEscapesUserContent(t *testing.T) {
	registry := NewRegistry(nil)
	data := sampleInvoiceData()
	data.Client.Name = `<script>alert("x")</script>`

	html, err := registry.Resolve("modern").Render(data)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"), "client name must be escaped")
}

// Present-but-empty optional strings must behave like absent ones: the
// composite address line drops its separators instead of printing ", " or
// " - " around nothing.
func TestExtrapeAddressSkipsEmptyParts(t *testing.T) {
	renderer := newExtrapeRenderer(nil)

	data := sampleInvoiceData()
	data.Client.City = strPtr("")
	data.Client.Pin = strPtr("")

	html, err := renderer.Render(data)
	require.NoError(t, err)
	assert.Contains(t, html, ": 12 MG Road, Goa</p>")
	assert.NotContains(t, html, "Goa - <")
	assert.NotContains(t, html, "12 MG Road, ,")
}

func TestEmptyOptionalFieldsOmitLabeledBlocks(t *testing.T) {
	registry := NewRegistry(nil)

	data := sampleInvoiceData()
	data.Client.Email = strPtr("")
	data.Client.Phone = strPtr("")
	data.Invoice.Notes = strPtr("")

	for _, info := range registry.Catalog() {
		html, err := registry.Resolve(info.ID).Render(data)
		require.NoError(t, err, info.ID)
		assert.NotContains(t, html, "Email: </p>", info.ID)
		assert.NotContains(t, html, "Phone: </p>", info.ID)
	}
}
