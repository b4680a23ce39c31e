package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// simpleLogoRenderer: inlines the company logo as a data URI. Amount column
// shows line_total only (tax-exclusive); GST appears in the totals block.
type simpleLogoRenderer struct {
	tpl     *template.Template
	fetcher LogoFetcher
}

func newSimpleLogoRenderer(fetcher LogoFetcher) *simpleLogoRenderer {
	return &simpleLogoRenderer{
		tpl:     mustParse("simple_logo", simpleLogoTemplate),
		fetcher: fetcher,
	}
}

func (r *simpleLogoRenderer) ID() string { return "simple_logo" }

func (r *simpleLogoRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, inlineLogo(r.fetcher, data)))
}

const simpleLogoTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: white;">
  <div style="display: flex; align-items: center; justify-content: space-between; margin-bottom: 30px; border-bottom: 2px solid #e5e7eb; padding-bottom: 20px;">
    <div style="display: flex; align-items: center; gap: 15px;">
      {{if .Logo}}<img src="{{.Logo}}" alt="Company Logo" style="width: 60px; height: 60px; object-fit: contain;">{{end}}
      <div>
        <h1 style="font-family: 'Alex Brush', cursive; font-size: 28px; margin: 0; color: #1f2937;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
        <p style="margin: 5px 0 0 0; color: #6b7280; font-size: 14px;">{{with .Company}}{{str .Address}}{{end}}</p>
      </div>
    </div>
    <div style="text-align: right;">
      <h2 style="font-size: 24px; margin: 0; color: #1f2937;">GST INVOICE</h2>
      <p style="margin: 5px 0 0 0; color: #6b7280;">#{{.Invoice.InvoiceNumber}}</p>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 30px;">
    <div>
      <h3 style="font-size: 16px; font-weight: bold; margin: 0 0 10px 0; color: #1f2937;">From:</h3>
      <div style="background: #f9fafb; padding: 15px; border-radius: 8px;">
        {{with .Company}}
        <p style="margin: 0; font-weight: bold;">{{.CompanyName}}</p>
        {{if .Address}}<p style="margin: 5px 0 0 0;">{{str .Address}}</p>{{end}}
        {{if .Email}}<p style="margin: 5px 0 0 0;">Email: {{str .Email}}</p>{{end}}
        {{if .Phone}}<p style="margin: 5px 0 0 0;">Phone: {{str .Phone}}</p>{{end}}
        {{if .GSTIN}}<p style="margin: 5px 0 0 0;">GSTIN: {{str .GSTIN}}</p>{{end}}
        {{end}}
      </div>
    </div>
    <div>
      <h3 style="font-size: 16px; font-weight: bold; margin: 0 0 10px 0; color: #1f2937;">To:</h3>
      <div style="background: #f9fafb; padding: 15px; border-radius: 8px;">
        <p style="margin: 0; font-weight: bold;">{{.Client.Name}}</p>
        {{if str .Client.CompanyName}}<p style="margin: 5px 0 0 0;">{{str .Client.CompanyName}}</p>{{end}}
        {{if str .Client.Address}}<p style="margin: 5px 0 0 0;">{{str .Client.Address}}</p>{{end}}
        {{if str .Client.Email}}<p style="margin: 5px 0 0 0;">Email: {{str .Client.Email}}</p>{{end}}
        {{if str .Client.Phone}}<p style="margin: 5px 0 0 0;">Phone: {{str .Client.Phone}}</p>{{end}}
        {{if str .Client.GSTIN}}<p style="margin: 5px 0 0 0;">GSTIN: {{str .Client.GSTIN}}</p>{{end}}
      </div>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 30px;">
    <div>
      <p style="margin: 0;"><strong>Invoice Date:</strong> {{date .Invoice.InvoiceDate}}</p>
      {{if str .Invoice.DueDate}}<p style="margin: 10px 0 0 0;"><strong>Due Date:</strong> {{date (str .Invoice.DueDate)}}</p>{{end}}
    </div>
    <div style="text-align: right;">
      <span style="background: #dbeafe; color: #1e40af; padding: 4px 12px; border-radius: 20px; font-size: 14px;">{{title .Invoice.Status}}</span>
    </div>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 30px;">
    <thead>
      <tr style="background: #f3f4f6;">
        <th style="border: 1px solid #d1d5db; padding: 12px; text-align: left;">Item</th>
        <th style="border: 1px solid #d1d5db; padding: 12px; text-align: center;">Qty</th>
        <th style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">Rate</th>
        <th style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">GST</th>
        <th style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td style="border: 1px solid #d1d5db; padding: 12px;">
          <div style="font-weight: bold;">{{.ItemName}}</div>
          {{if .Description}}<div style="font-size: 12px; color: #6b7280;">{{str .Description}}</div>{{end}}
        </td>
        <td style="border: 1px solid #d1d5db; padding: 12px; text-align: center;">{{.Quantity}}</td>
        <td style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">{{currency .UnitPrice}}</td>
        <td style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">{{.GSTRate}}%</td>
        <td style="border: 1px solid #d1d5db; padding: 12px; text-align: right;">{{currency .LineTotal}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-bottom: 30px;">
    <div style="width: 300px;">
      <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb;">
        <span>Subtotal:</span>
        <span>{{currency .Invoice.Subtotal}}</span>
      </div>
      <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb;">
        <span>Total GST:</span>
        <span>{{currency .Invoice.TotalGST}}</span>
      </div>
      {{if gt .Invoice.Discount 0.0}}
      <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb;">
        <span>Discount:</span>
        <span>-{{currency .Invoice.Discount}}</span>
      </div>
      {{end}}
      <div style="display: flex; justify-content: space-between; padding: 12px 0; border-top: 2px solid #1f2937; font-size: 18px; font-weight: bold;">
        <span>Total:</span>
        <span>{{currency .Invoice.TotalAmount}}</span>
      </div>
    </div>
  </div>

  {{with .Company}}
  {{if or .BankName .BankAccountNumber}}
  <div style="background: #f9fafb; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
    <h3 style="font-size: 16px; font-weight: bold; margin: 0 0 10px 0; color: #1f2937;">Bank Details:</h3>
    {{if .BankName}}<p style="margin: 0;">Bank: {{str .BankName}}</p>{{end}}
    {{if .BankAccountNumber}}<p style="margin: 5px 0 0 0;">Account: {{str .BankAccountNumber}}</p>{{end}}
    {{if .BankIFSC}}<p style="margin: 5px 0 0 0;">IFSC: {{str .BankIFSC}}</p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if str .Invoice.Notes}}
  <div style="margin-top: 20px;">
    <h3 style="font-size: 16px; font-weight: bold; margin: 0 0 10px 0; color: #1f2937;">Notes:</h3>
    <p style="margin: 0; color: #6b7280;">{{str .Invoice.Notes}}</p>
  </div>
  {{end}}
</div>
`
