package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// minimalRenderer: borderless, light typography. Amount column is
// tax-inclusive (line_total + gst_amount).
type minimalRenderer struct {
	tpl *template.Template
}

func newMinimalRenderer() *minimalRenderer {
	return &minimalRenderer{tpl: mustParse("minimal", minimalTemplate)}
}

func (r *minimalRenderer) ID() string { return "minimal" }

func (r *minimalRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, ""))
}

const minimalTemplate = `
<div style="max-width: 800px; margin: 0 auto; background: white; font-family: 'Helvetica Neue', Arial, sans-serif; color: #374151;">
  <div style="padding: 50px 0 30px; border-bottom: 1px solid #e5e7eb;">
    <div style="display: flex; justify-content: space-between; align-items: start;">
      <div>
        {{with .Company}}{{if .LogoURL}}<img src="{{str .LogoURL}}" alt="Company Logo" style="max-height: 50px; margin-bottom: 20px; opacity: 0.8;" />{{end}}{{end}}
        <h1 style="margin: 0; font-size: 24px; font-weight: 300; color: #374151; letter-spacing: 2px;">{{if .Company}}{{upper .Company.CompanyName}}{{else}}YOUR COMPANY{{end}}</h1>
        {{with .Company}}{{if .Address}}<p style="margin: 8px 0; color: #9ca3af; font-size: 14px;">{{str .Address}}</p>{{end}}{{end}}
      </div>
      <div style="text-align: right;">
        <h2 style="margin: 0; font-size: 48px; font-weight: 100; color: #374151; letter-spacing: 3px;">INVOICE</h2>
        <p style="margin: 10px 0; font-size: 16px; color: #9ca3af;">{{.Invoice.InvoiceNumber}}</p>
      </div>
    </div>
  </div>

  <div style="padding: 40px 0;">
    <div style="display: flex; justify-content: space-between;">
      <div style="width: 45%;">
        <h3 style="margin: 0 0 20px 0; color: #374151; font-size: 14px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px;">Bill To</h3>
        <p style="margin: 0 0 8px 0; font-size: 18px; font-weight: 500; color: #1f2937;">{{if str .Client.CompanyName}}{{str .Client.CompanyName}}{{else}}{{.Client.Name}}{{end}}</p>
        {{if str .Client.Address}}<p style="margin: 0 0 6px 0; color: #6b7280; font-size: 14px;">{{str .Client.Address}}</p>{{end}}
        {{if str .Client.Email}}<p style="margin: 0 0 6px 0; color: #6b7280; font-size: 14px;">{{str .Client.Email}}</p>{{end}}
        {{if str .Client.Phone}}<p style="margin: 0 0 6px 0; color: #6b7280; font-size: 14px;">{{str .Client.Phone}}</p>{{end}}
        {{if str .Client.GSTIN}}<p style="margin: 0; color: #6b7280; font-size: 14px;">GSTIN: {{str .Client.GSTIN}}</p>{{end}}
      </div>
      <div style="width: 45%; text-align: right;">
        <h3 style="margin: 0 0 20px 0; color: #374151; font-size: 14px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px;">Invoice Details</h3>
        <p style="margin: 0 0 8px 0; color: #6b7280; font-size: 14px;">Date: <span style="color: #1f2937; font-weight: 500;">{{date .Invoice.InvoiceDate}}</span></p>
        {{if str .Invoice.DueDate}}<p style="margin: 0 0 8px 0; color: #6b7280; font-size: 14px;">Due: <span style="color: #1f2937; font-weight: 500;">{{date (str .Invoice.DueDate)}}</span></p>{{end}}
        <p style="margin: 0; color: #6b7280; font-size: 14px;">Status: <span style="color: #1f2937; font-weight: 500; text-transform: uppercase;">{{.Invoice.Status}}</span></p>
      </div>
    </div>
  </div>

  <div style="margin: 40px 0;">
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="border-bottom: 2px solid #374151;">
          <th style="padding: 20px 0; text-align: left; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; color: #374151;">Description</th>
          <th style="padding: 20px 0; text-align: center; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; color: #374151; width: 80px;">Qty</th>
          <th style="padding: 20px 0; text-align: right; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; color: #374151; width: 100px;">Rate</th>
          <th style="padding: 20px 0; text-align: center; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; color: #374151; width: 80px;">GST%</th>
          <th style="padding: 20px 0; text-align: right; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; color: #374151; width: 120px;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #f3f4f6;">
          <td style="padding: 20px 0; vertical-align: top;">
            <div style="font-size: 16px; font-weight: 500; margin-bottom: 4px; color: #1f2937;">{{.ItemName}}</div>
            {{if .Description}}<div style="font-size: 14px; color: #9ca3af;">{{str .Description}}</div>{{end}}
          </td>
          <td style="padding: 20px 0; text-align: center; font-size: 16px; color: #6b7280;">{{.Quantity}}</td>
          <td style="padding: 20px 0; text-align: right; font-size: 16px; color: #6b7280;">{{currency .UnitPrice}}</td>
          <td style="padding: 20px 0; text-align: center; font-size: 16px; color: #6b7280;">{{.GSTRate}}%</td>
          <td style="padding: 20px 0; text-align: right; font-size: 16px; font-weight: 500; color: #1f2937;">{{currency (add .LineTotal .GSTAmount)}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div style="display: flex; justify-content: flex-end; margin: 40px 0;">
    <div style="width: 300px;">
      <div style="border-top: 1px solid #e5e7eb; padding-top: 20px;">
        <div style="display: flex; justify-content: space-between; margin-bottom: 12px;">
          <span style="color: #6b7280; font-size: 14px;">Subtotal</span>
          <span style="color: #1f2937; font-size: 14px; font-weight: 500;">{{currency .Invoice.Subtotal}}</span>
        </div>
        <div style="display: flex; justify-content: space-between; margin-bottom: 12px;">
          <span style="color: #6b7280; font-size: 14px;">GST</span>
          <span style="color: #1f2937; font-size: 14px; font-weight: 500;">{{currency .Invoice.TotalGST}}</span>
        </div>
        {{if gt .Invoice.Discount 0.0}}
        <div style="display: flex; justify-content: space-between; margin-bottom: 12px;">
          <span style="color: #6b7280; font-size: 14px;">Discount</span>
          <span style="color: #dc2626; font-size: 14px; font-weight: 500;">-{{currency .Invoice.Discount}}</span>
        </div>
        {{end}}
        <div style="border-top: 2px solid #374151; padding-top: 20px; margin-top: 20px;">
          <div style="display: flex; justify-content: space-between; align-items: center;">
            <span style="color: #374151; font-size: 18px; font-weight: 300; text-transform: uppercase; letter-spacing: 1px;">Total</span>
            <span style="color: #1f2937; font-size: 24px; font-weight: 500;">{{currency .Invoice.TotalAmount}}</span>
          </div>
        </div>
      </div>
    </div>
  </div>

  {{if str .Invoice.Notes}}
  <div style="margin: 50px 0;">
    <h4 style="margin: 0 0 15px 0; color: #374151; font-size: 14px; font-weight: 600; text-transform: uppercase; letter-spacing: 1px;">Notes</h4>
    <p style="margin: 0; color: #6b7280; line-height: 1.6; font-size: 14px;">{{str .Invoice.Notes}}</p>
  </div>
  {{end}}

  <div style="margin-top: 60px; padding-top: 30px; border-top: 1px solid #e5e7eb; text-align: center;">
    <p style="margin: 0; color: #9ca3af; font-size: 12px; text-transform: uppercase; letter-spacing: 1px;">Thank you for your business</p>
    {{with .Company}}{{if .Email}}<p style="margin: 8px 0 0 0; color: #9ca3af; font-size: 12px;">{{str .Email}}</p>{{end}}{{end}}
  </div>
</div>
`
