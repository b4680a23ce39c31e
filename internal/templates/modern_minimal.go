package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// modernMinimalRenderer: flat contemporary layout with an inlined logo.
// Amount column shows line_total only.
type modernMinimalRenderer struct {
	tpl     *template.Template
	fetcher LogoFetcher
}

func newModernMinimalRenderer(fetcher LogoFetcher) *modernMinimalRenderer {
	return &modernMinimalRenderer{
		tpl:     mustParse("modern_minimal", modernMinimalTemplate),
		fetcher: fetcher,
	}
}

func (r *modernMinimalRenderer) ID() string { return "modern_minimal" }

func (r *modernMinimalRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, inlineLogo(r.fetcher, data)))
}

const modernMinimalTemplate = `
<div style="font-family: 'Inter', -apple-system, sans-serif; max-width: 800px; margin: 0 auto; padding: 40px 20px; background: white; color: #111827;">
  <div style="display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 50px;">
    <div style="display: flex; align-items: center; gap: 12px;">
      {{if .Logo}}<img src="{{.Logo}}" alt="Company Logo" style="width: 48px; height: 48px; object-fit: contain; border-radius: 8px;">{{end}}
      <div>
        <h1 style="font-size: 20px; font-weight: 600; margin: 0; color: #111827;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
        {{with .Company}}{{if .GSTIN}}<p style="margin: 2px 0 0 0; font-size: 12px; color: #6b7280;">GSTIN: {{str .GSTIN}}</p>{{end}}{{end}}
      </div>
    </div>
    <div style="text-align: right;">
      <p style="font-size: 12px; color: #10b981; font-weight: 600; letter-spacing: 2px; text-transform: uppercase; margin: 0;">Invoice</p>
      <p style="font-size: 24px; font-weight: 700; margin: 4px 0 0 0; color: #111827;">{{.Invoice.InvoiceNumber}}</p>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 30px; margin-bottom: 50px;">
    <div>
      <p style="font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; margin: 0 0 8px 0;">From</p>
      {{with .Company}}
      <p style="font-size: 14px; font-weight: 600; margin: 0;">{{.CompanyName}}</p>
      {{if .Address}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">{{str .Address}}</p>{{end}}
      {{if .Email}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">{{str .Email}}</p>{{end}}
      {{if .Phone}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">{{str .Phone}}</p>{{end}}
      {{end}}
    </div>
    <div>
      <p style="font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; margin: 0 0 8px 0;">Billed To</p>
      <p style="font-size: 14px; font-weight: 600; margin: 0;">{{.Client.Name}}</p>
      {{if str .Client.CompanyName}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">{{str .Client.CompanyName}}</p>{{end}}
      {{if str .Client.Address}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">{{str .Client.Address}}</p>{{end}}
      {{if str .Client.GSTIN}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">GSTIN: {{str .Client.GSTIN}}</p>{{end}}
    </div>
    <div style="text-align: right;">
      <p style="font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; margin: 0 0 8px 0;">Details</p>
      <p style="font-size: 13px; color: #6b7280; margin: 0;">Issued: <span style="color: #111827; font-weight: 500;">{{date .Invoice.InvoiceDate}}</span></p>
      {{if str .Invoice.DueDate}}<p style="font-size: 13px; color: #6b7280; margin: 4px 0 0 0;">Due: <span style="color: #111827; font-weight: 500;">{{date (str .Invoice.DueDate)}}</span></p>{{end}}
      <p style="font-size: 13px; margin: 8px 0 0 0;"><span style="background: #ecfdf5; color: #059669; padding: 3px 10px; border-radius: 12px; font-weight: 600; font-size: 11px; text-transform: uppercase;">{{.Invoice.Status}}</span></p>
    </div>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 40px;">
    <thead>
      <tr>
        <th style="text-align: left; padding: 12px 0; font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb;">Item</th>
        <th style="text-align: center; padding: 12px 0; font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; width: 60px;">Qty</th>
        <th style="text-align: right; padding: 12px 0; font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; width: 100px;">Rate</th>
        <th style="text-align: center; padding: 12px 0; font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; width: 70px;">GST</th>
        <th style="text-align: right; padding: 12px 0; font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; width: 120px;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td style="padding: 16px 0; border-bottom: 1px solid #f3f4f6;">
          <div style="font-size: 14px; font-weight: 500;">{{.ItemName}}</div>
          {{if .Description}}<div style="font-size: 12px; color: #9ca3af; margin-top: 2px;">{{str .Description}}</div>{{end}}
        </td>
        <td style="padding: 16px 0; text-align: center; font-size: 14px; color: #6b7280; border-bottom: 1px solid #f3f4f6;">{{.Quantity}}</td>
        <td style="padding: 16px 0; text-align: right; font-size: 14px; color: #6b7280; border-bottom: 1px solid #f3f4f6;">{{currency .UnitPrice}}</td>
        <td style="padding: 16px 0; text-align: center; font-size: 14px; color: #6b7280; border-bottom: 1px solid #f3f4f6;">{{.GSTRate}}%</td>
        <td style="padding: 16px 0; text-align: right; font-size: 14px; font-weight: 500; border-bottom: 1px solid #f3f4f6;">{{currency .LineTotal}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-bottom: 50px;">
    <div style="width: 280px;">
      <div style="display: flex; justify-content: space-between; padding: 6px 0; font-size: 13px; color: #6b7280;">
        <span>Subtotal</span>
        <span style="color: #111827;">{{currency .Invoice.Subtotal}}</span>
      </div>
      <div style="display: flex; justify-content: space-between; padding: 6px 0; font-size: 13px; color: #6b7280;">
        <span>GST</span>
        <span style="color: #111827;">{{currency .Invoice.TotalGST}}</span>
      </div>
      {{if gt .Invoice.Discount 0.0}}
      <div style="display: flex; justify-content: space-between; padding: 6px 0; font-size: 13px; color: #6b7280;">
        <span>Discount</span>
        <span style="color: #dc2626;">-{{currency .Invoice.Discount}}</span>
      </div>
      {{end}}
      <div style="display: flex; justify-content: space-between; padding: 12px 0; margin-top: 8px; border-top: 2px solid #111827; font-size: 16px; font-weight: 700;">
        <span>Total</span>
        <span>{{currency .Invoice.TotalAmount}}</span>
      </div>
    </div>
  </div>

  {{with .Company}}
  {{if or .BankName .BankAccountNumber}}
  <div style="background: #f9fafb; border-radius: 8px; padding: 20px; margin-bottom: 30px;">
    <p style="font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; margin: 0 0 10px 0;">Payment Details</p>
    {{if .BankName}}<p style="font-size: 13px; margin: 0;">Bank: <span style="font-weight: 500;">{{str .BankName}}</span></p>{{end}}
    {{if .BankAccountNumber}}<p style="font-size: 13px; margin: 4px 0 0 0;">Account: <span style="font-weight: 500;">{{str .BankAccountNumber}}</span></p>{{end}}
    {{if .BankIFSC}}<p style="font-size: 13px; margin: 4px 0 0 0;">IFSC: <span style="font-weight: 500;">{{str .BankIFSC}}</span></p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if str .Invoice.Notes}}
  <div style="margin-bottom: 30px;">
    <p style="font-size: 11px; color: #9ca3af; text-transform: uppercase; letter-spacing: 1px; margin: 0 0 8px 0;">Notes</p>
    <p style="font-size: 13px; color: #6b7280; margin: 0; line-height: 1.6;">{{str .Invoice.Notes}}</p>
  </div>
  {{end}}

  <div style="text-align: center; padding-top: 30px; border-top: 1px solid #f3f4f6;">
    <p style="font-size: 12px; color: #9ca3af; margin: 0;">Thank you for your business</p>
  </div>
</div>
`
