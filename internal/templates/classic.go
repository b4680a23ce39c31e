package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// classicRenderer: serif faces, heavy borders. Amount column is tax-inclusive
// (line_total + gst_amount), same as modern.
type classicRenderer struct {
	tpl *template.Template
}

func newClassicRenderer() *classicRenderer {
	return &classicRenderer{tpl: mustParse("classic", classicTemplate)}
}

func (r *classicRenderer) ID() string { return "classic" }

func (r *classicRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, ""))
}

const classicTemplate = `
<div style="max-width: 800px; margin: 0 auto; background: white; font-family: 'Times New Roman', serif; border: 2px solid #1f2937;">
  <div style="padding: 40px; border-bottom: 3px solid #1f2937;">
    <div style="display: flex; justify-content: space-between; align-items: center;">
      <div>
        {{with .Company}}{{if .LogoURL}}<img src="{{str .LogoURL}}" alt="Company Logo" style="max-height: 80px; margin-bottom: 20px;" />{{end}}{{end}}
        <h1 style="margin: 0; font-size: 32px; font-weight: bold; color: #1f2937; letter-spacing: 1px;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
        {{with .Company}}
        {{if .Address}}<p style="margin: 10px 0; color: #4b5563; font-size: 14px;">{{str .Address}}</p>{{end}}
        <div style="margin-top: 15px;">
          {{if .Email}}<p style="margin: 3px 0; color: #4b5563; font-size: 14px;">Email: {{str .Email}}</p>{{end}}
          {{if .Phone}}<p style="margin: 3px 0; color: #4b5563; font-size: 14px;">Phone: {{str .Phone}}</p>{{end}}
          {{if .GSTIN}}<p style="margin: 3px 0; color: #4b5563; font-size: 14px;">GSTIN: {{str .GSTIN}}</p>{{end}}
        </div>
        {{end}}
      </div>
      <div style="text-align: right; border: 3px solid #1f2937; padding: 20px;">
        <h2 style="margin: 0; font-size: 36px; font-weight: bold; color: #1f2937;">INVOICE</h2>
        <p style="margin: 10px 0; font-size: 20px; font-weight: bold; color: #4b5563;">{{.Invoice.InvoiceNumber}}</p>
      </div>
    </div>
  </div>

  <div style="padding: 30px; background: #f9fafb;">
    <div style="display: flex; justify-content: space-between;">
      <div style="width: 48%;">
        <h3 style="margin: 0 0 15px 0; color: #1f2937; font-size: 20px; text-decoration: underline;">BILL TO:</h3>
        <div style="border: 2px solid #d1d5db; padding: 20px; background: white;">
          <p style="margin: 0 0 10px 0; font-weight: bold; font-size: 18px; color: #1f2937;">{{if str .Client.CompanyName}}{{str .Client.CompanyName}}{{else}}{{.Client.Name}}{{end}}</p>
          {{if str .Client.Address}}<p style="margin: 0 0 8px 0; color: #4b5563;">{{str .Client.Address}}</p>{{end}}
          {{if str .Client.Email}}<p style="margin: 0 0 8px 0; color: #4b5563;">{{str .Client.Email}}</p>{{end}}
          {{if str .Client.Phone}}<p style="margin: 0 0 8px 0; color: #4b5563;">{{str .Client.Phone}}</p>{{end}}
          {{if str .Client.GSTIN}}<p style="margin: 0; color: #4b5563;">GSTIN: {{str .Client.GSTIN}}</p>{{end}}
        </div>
      </div>
      <div style="width: 48%;">
        <h3 style="margin: 0 0 15px 0; color: #1f2937; font-size: 20px; text-decoration: underline;">INVOICE DETAILS:</h3>
        <div style="border: 2px solid #d1d5db; padding: 20px; background: white;">
          <p style="margin: 0 0 10px 0; color: #4b5563;"><strong>Invoice Date:</strong> {{date .Invoice.InvoiceDate}}</p>
          {{if str .Invoice.DueDate}}<p style="margin: 0 0 10px 0; color: #4b5563;"><strong>Due Date:</strong> {{date (str .Invoice.DueDate)}}</p>{{end}}
          <p style="margin: 0; color: #4b5563;"><strong>Status:</strong> <span style="text-transform: uppercase; font-weight: bold;">{{.Invoice.Status}}</span></p>
        </div>
      </div>
    </div>
  </div>

  <div style="padding: 30px;">
    <table style="width: 100%; border-collapse: collapse; border: 2px solid #1f2937;">
      <thead>
        <tr style="background: #1f2937; color: white;">
          <th style="padding: 15px; text-align: left; border-right: 1px solid #4b5563; font-size: 16px;">DESCRIPTION</th>
          <th style="padding: 15px; text-align: center; border-right: 1px solid #4b5563; font-size: 16px; width: 80px;">QTY</th>
          <th style="padding: 15px; text-align: right; border-right: 1px solid #4b5563; font-size: 16px; width: 100px;">RATE</th>
          <th style="padding: 15px; text-align: center; border-right: 1px solid #4b5563; font-size: 16px; width: 80px;">GST%</th>
          <th style="padding: 15px; text-align: right; font-size: 16px; width: 120px;">AMOUNT</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #d1d5db;">
          <td style="padding: 15px; border-right: 1px solid #d1d5db; vertical-align: top;">
            <div style="font-weight: bold; margin-bottom: 5px; color: #1f2937; font-size: 16px;">{{.ItemName}}</div>
            {{if .Description}}<div style="font-size: 14px; color: #6b7280; font-style: italic;">{{str .Description}}</div>{{end}}
          </td>
          <td style="padding: 15px; text-align: center; border-right: 1px solid #d1d5db; font-size: 16px;">{{.Quantity}}</td>
          <td style="padding: 15px; text-align: right; border-right: 1px solid #d1d5db; font-size: 16px;">{{currency .UnitPrice}}</td>
          <td style="padding: 15px; text-align: center; border-right: 1px solid #d1d5db; font-size: 16px;">{{.GSTRate}}%</td>
          <td style="padding: 15px; text-align: right; font-weight: bold; font-size: 16px;">{{currency (add .LineTotal .GSTAmount)}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div style="padding: 0 30px 30px; display: flex; justify-content: flex-end;">
    <div style="width: 400px;">
      <table style="width: 100%; border-collapse: collapse; border: 2px solid #1f2937;">
        <tr style="border-bottom: 1px solid #d1d5db;">
          <td style="padding: 12px 20px; text-align: right; font-size: 16px; color: #4b5563;">Subtotal:</td>
          <td style="padding: 12px 20px; text-align: right; font-weight: bold; font-size: 16px;">{{currency .Invoice.Subtotal}}</td>
        </tr>
        <tr style="border-bottom: 1px solid #d1d5db;">
          <td style="padding: 12px 20px; text-align: right; font-size: 16px; color: #4b5563;">Total GST:</td>
          <td style="padding: 12px 20px; text-align: right; font-weight: bold; font-size: 16px;">{{currency .Invoice.TotalGST}}</td>
        </tr>
        {{if gt .Invoice.Discount 0.0}}
        <tr style="border-bottom: 1px solid #d1d5db;">
          <td style="padding: 12px 20px; text-align: right; font-size: 16px; color: #4b5563;">Discount:</td>
          <td style="padding: 12px 20px; text-align: right; font-weight: bold; font-size: 16px; color: #dc2626;">-{{currency .Invoice.Discount}}</td>
        </tr>
        {{end}}
        <tr style="background: #1f2937; color: white;">
          <td style="padding: 20px; text-align: right; font-size: 20px; font-weight: bold;">TOTAL AMOUNT:</td>
          <td style="padding: 20px; text-align: right; font-size: 24px; font-weight: bold;">{{currency .Invoice.TotalAmount}}</td>
        </tr>
      </table>
    </div>
  </div>

  {{if str .Invoice.Notes}}
  <div style="padding: 0 30px 30px;">
    <div style="border: 2px solid #d1d5db; padding: 20px; background: #f9fafb;">
      <h4 style="margin: 0 0 15px 0; color: #1f2937; font-size: 18px; text-decoration: underline;">NOTES:</h4>
      <p style="margin: 0; color: #4b5563; line-height: 1.8; font-size: 16px;">{{str .Invoice.Notes}}</p>
    </div>
  </div>
  {{end}}

  <div style="padding: 30px; text-align: center; border-top: 3px solid #1f2937; background: #f9fafb;">
    <p style="margin: 0; color: #1f2937; font-size: 18px; font-weight: bold;">Thank you for your business!</p>
    {{with .Company}}{{if .Email}}<p style="margin: 10px 0 0 0; color: #4b5563; font-size: 14px;">For any queries, please contact us at {{str .Email}}</p>{{end}}{{end}}
  </div>
</div>
`
