package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// modernRenderer: blue gradient header, card layout. The Amount column shows
// line_total + gst_amount (tax-inclusive), which this template has always done.
type modernRenderer struct {
	tpl *template.Template
}

func newModernRenderer() *modernRenderer {
	return &modernRenderer{tpl: mustParse("modern", modernTemplate)}
}

func (r *modernRenderer) ID() string { return "modern" }

func (r *modernRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, ""))
}

const modernTemplate = `
<div style="max-width: 800px; margin: 0 auto; background: white; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
  <div style="background: linear-gradient(135deg, #2563eb, #3b82f6); color: white; padding: 30px; border-radius: 8px 8px 0 0;">
    <div style="display: flex; justify-content: space-between; align-items: start;">
      <div>
        {{with .Company}}{{if .LogoURL}}<img src="{{str .LogoURL}}" alt="Company Logo" style="max-height: 60px; margin-bottom: 15px;" />{{end}}{{end}}
        <h1 style="margin: 0; font-size: 28px; font-weight: bold;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
        {{with .Company}}{{if .Address}}<p style="margin: 8px 0; opacity: 0.9;">{{str .Address}}</p>{{end}}{{end}}
      </div>
      <div style="text-align: right;">
        <h2 style="margin: 0; font-size: 32px; font-weight: bold;">INVOICE</h2>
        <p style="margin: 5px 0; font-size: 18px; font-weight: 600;">{{.Invoice.InvoiceNumber}}</p>
      </div>
    </div>
  </div>

  <div style="padding: 30px; background: #f8fafc;">
    <div style="display: flex; justify-content: space-between; margin-bottom: 30px;">
      <div>
        <h3 style="margin: 0 0 15px 0; color: #1f2937; font-size: 18px;">Bill To:</h3>
        <div style="background: white; padding: 20px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <p style="margin: 0 0 8px 0; font-weight: bold; font-size: 16px; color: #1f2937;">{{if str .Client.CompanyName}}{{str .Client.CompanyName}}{{else}}{{.Client.Name}}{{end}}</p>
          {{if str .Client.Address}}<p style="margin: 0 0 8px 0; color: #6b7280;">{{str .Client.Address}}</p>{{end}}
          {{if str .Client.Email}}<p style="margin: 0 0 8px 0; color: #6b7280;">Email: {{str .Client.Email}}</p>{{end}}
          {{if str .Client.Phone}}<p style="margin: 0 0 8px 0; color: #6b7280;">Phone: {{str .Client.Phone}}</p>{{end}}
          {{if str .Client.GSTIN}}<p style="margin: 0; color: #6b7280;">GSTIN: {{str .Client.GSTIN}}</p>{{end}}
        </div>
      </div>
      <div style="text-align: right;">
        <div style="background: white; padding: 20px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <p style="margin: 0 0 8px 0; color: #6b7280;"><strong>Date:</strong> {{date .Invoice.InvoiceDate}}</p>
          {{if str .Invoice.DueDate}}<p style="margin: 0 0 8px 0; color: #6b7280;"><strong>Due Date:</strong> {{date (str .Invoice.DueDate)}}</p>{{end}}
          <p style="margin: 0; color: #6b7280;"><strong>Status:</strong> <span style="text-transform: uppercase; font-weight: bold; color: #2563eb;">{{.Invoice.Status}}</span></p>
        </div>
      </div>
    </div>
  </div>

  <div style="padding: 0 30px;">
    <table style="width: 100%; border-collapse: collapse; background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
      <thead>
        <tr style="background: #2563eb; color: white;">
          <th style="padding: 15px; text-align: left; font-weight: 600;">Item</th>
          <th style="padding: 15px; text-align: center; font-weight: 600; width: 80px;">Qty</th>
          <th style="padding: 15px; text-align: right; font-weight: 600; width: 100px;">Rate</th>
          <th style="padding: 15px; text-align: center; font-weight: 600; width: 80px;">GST%</th>
          <th style="padding: 15px; text-align: right; font-weight: 600; width: 120px;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #e5e7eb;">
          <td style="padding: 15px; vertical-align: top;">
            <div style="font-weight: 600; margin-bottom: 4px; color: #1f2937;">{{.ItemName}}</div>
            {{if .Description}}<div style="font-size: 12px; color: #6b7280;">{{str .Description}}</div>{{end}}
          </td>
          <td style="padding: 15px; text-align: center; color: #374151;">{{.Quantity}}</td>
          <td style="padding: 15px; text-align: right; color: #374151;">{{currency .UnitPrice}}</td>
          <td style="padding: 15px; text-align: center; color: #374151;">{{.GSTRate}}%</td>
          <td style="padding: 15px; text-align: right; font-weight: 600; color: #1f2937;">{{currency (add .LineTotal .GSTAmount)}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div style="padding: 30px; display: flex; justify-content: flex-end;">
    <div style="width: 350px;">
      <div style="background: white; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); overflow: hidden;">
        <div style="padding: 20px; border-bottom: 1px solid #e5e7eb;">
          <div style="display: flex; justify-content: space-between; margin-bottom: 10px;">
            <span style="color: #6b7280;">Subtotal:</span>
            <span style="font-weight: 600; color: #1f2937;">{{currency .Invoice.Subtotal}}</span>
          </div>
          <div style="display: flex; justify-content: space-between; margin-bottom: 10px;">
            <span style="color: #6b7280;">Total GST:</span>
            <span style="font-weight: 600; color: #1f2937;">{{currency .Invoice.TotalGST}}</span>
          </div>
          {{if gt .Invoice.Discount 0.0}}
          <div style="display: flex; justify-content: space-between;">
            <span style="color: #6b7280;">Discount:</span>
            <span style="font-weight: 600; color: #dc2626;">-{{currency .Invoice.Discount}}</span>
          </div>
          {{end}}
        </div>
        <div style="padding: 20px; background: #2563eb; color: white;">
          <div style="display: flex; justify-content: space-between; align-items: center;">
            <span style="font-size: 18px; font-weight: bold;">Total Amount:</span>
            <span style="font-size: 24px; font-weight: bold;">{{currency .Invoice.TotalAmount}}</span>
          </div>
        </div>
      </div>
    </div>
  </div>

  {{if str .Invoice.Notes}}
  <div style="padding: 0 30px 30px;">
    <div style="background: #f0f9ff; border-left: 4px solid #2563eb; padding: 20px; border-radius: 0 8px 8px 0;">
      <h4 style="margin: 0 0 10px 0; color: #1f2937; font-size: 16px;">Notes:</h4>
      <p style="margin: 0; color: #374151; line-height: 1.6;">{{str .Invoice.Notes}}</p>
    </div>
  </div>
  {{end}}

  <div style="padding: 30px; text-align: center; background: #f8fafc; border-radius: 0 0 8px 8px;">
    <p style="margin: 0; color: #6b7280; font-size: 14px;">Thank you for your business!</p>
    {{with .Company}}{{if .Email}}<p style="margin: 8px 0 0 0; color: #6b7280; font-size: 12px;">For any queries, please contact us at {{str .Email}}</p>{{end}}{{end}}
  </div>
</div>
`
