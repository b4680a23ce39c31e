package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// formalLetterheadRenderer: centered letterhead, inlined logo. The Total
// column shows line_total only.
type formalLetterheadRenderer struct {
	tpl     *template.Template
	fetcher LogoFetcher
}

func newFormalLetterheadRenderer(fetcher LogoFetcher) *formalLetterheadRenderer {
	return &formalLetterheadRenderer{
		tpl:     mustParse("formal_letterhead", formalLetterheadTemplate),
		fetcher: fetcher,
	}
}

func (r *formalLetterheadRenderer) ID() string { return "formal_letterhead" }

func (r *formalLetterheadRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newBaseView(data, inlineLogo(r.fetcher, data)))
}

const formalLetterheadTemplate = `
<div style="font-family: 'Times New Roman', serif; max-width: 800px; margin: 0 auto; padding: 20px; background: white;">
  <div style="text-align: center; border-bottom: 3px solid #1f2937; padding-bottom: 20px; margin-bottom: 30px;">
    {{if .Logo}}<img src="{{.Logo}}" alt="Company Logo" style="width: 80px; height: 80px; object-fit: contain; margin-bottom: 15px;">{{end}}
    <h1 style="font-family: 'Alex Brush', cursive; font-size: 36px; margin: 0; color: #1f2937; letter-spacing: 1px;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
    {{with .Company}}
    <div style="margin-top: 10px; color: #4b5563; font-size: 14px; line-height: 1.6;">
      {{if .Address}}<div>{{str .Address}}</div>{{end}}
      <div style="margin-top: 5px;">
        {{if .Phone}}Tel: {{str .Phone}}{{end}}{{if and .Phone .Email}} | {{end}}{{if .Email}}Email: {{str .Email}}{{end}}
      </div>
      {{if .Website}}<div>Website: {{str .Website}}</div>{{end}}
      {{if .GSTIN}}<div style="margin-top: 5px;">GSTIN: {{str .GSTIN}}{{if .PAN}} | PAN: {{str .PAN}}{{end}}</div>{{end}}
    </div>
    {{end}}
  </div>

  <div style="text-align: center; margin-bottom: 30px;">
    <h2 style="font-size: 28px; margin: 0; color: #1f2937; letter-spacing: 2px; border: 2px solid #1f2937; padding: 10px; display: inline-block;">GST INVOICE</h2>
    <p style="margin: 10px 0 0 0; font-size: 18px; color: #6b7280;">Invoice No: {{.Invoice.InvoiceNumber}}</p>
  </div>

  <div style="display: grid; grid-template-columns: 1fr auto; gap: 30px; margin-bottom: 30px;">
    <div>
      <p style="margin: 0; font-size: 16px;"><strong>Date:</strong> {{date .Invoice.InvoiceDate}}</p>
      {{if str .Invoice.DueDate}}<p style="margin: 10px 0 0 0; font-size: 16px;"><strong>Due Date:</strong> {{date (str .Invoice.DueDate)}}</p>{{end}}
    </div>
    <div>
      <span style="background: #1f2937; color: white; padding: 8px 16px; border-radius: 4px; font-size: 14px; text-transform: uppercase;">{{.Invoice.Status}}</span>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 40px; margin-bottom: 40px;">
    <div>
      <h3 style="font-size: 18px; margin: 0 0 15px 0; color: #1f2937; border-bottom: 1px solid #d1d5db; padding-bottom: 5px;">Invoice From:</h3>
      <div style="padding: 15px; border: 1px solid #d1d5db; background: #fafafa;">
        {{with .Company}}
        <p style="margin: 0; font-weight: bold; font-size: 16px;">{{.CompanyName}}</p>
        {{if .Address}}<p style="margin: 8px 0 0 0;">{{str .Address}}</p>{{end}}
        {{if .Email}}<p style="margin: 8px 0 0 0;">Email: {{str .Email}}</p>{{end}}
        {{if .Phone}}<p style="margin: 8px 0 0 0;">Phone: {{str .Phone}}</p>{{end}}
        {{if .GSTIN}}<p style="margin: 8px 0 0 0;"><strong>GSTIN:</strong> {{str .GSTIN}}</p>{{end}}
        {{end}}
      </div>
    </div>
    <div>
      <h3 style="font-size: 18px; margin: 0 0 15px 0; color: #1f2937; border-bottom: 1px solid #d1d5db; padding-bottom: 5px;">Invoice To:</h3>
      <div style="padding: 15px; border: 1px solid #d1d5db; background: #fafafa;">
        <p style="margin: 0; font-weight: bold; font-size: 16px;">{{.Client.Name}}</p>
        {{if str .Client.CompanyName}}<p style="margin: 8px 0 0 0;">{{str .Client.CompanyName}}</p>{{end}}
        {{if str .Client.Address}}<p style="margin: 8px 0 0 0;">{{str .Client.Address}}</p>{{end}}
        {{if str .Client.Email}}<p style="margin: 8px 0 0 0;">Email: {{str .Client.Email}}</p>{{end}}
        {{if str .Client.Phone}}<p style="margin: 8px 0 0 0;">Phone: {{str .Client.Phone}}</p>{{end}}
        {{if str .Client.GSTIN}}<p style="margin: 8px 0 0 0;"><strong>GSTIN:</strong> {{str .Client.GSTIN}}</p>{{end}}
      </div>
    </div>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 30px; border: 2px solid #1f2937;">
    <thead>
      <tr style="background: #1f2937; color: white;">
        <th style="border: 1px solid #1f2937; padding: 15px; text-align: left; font-size: 14px;">Description</th>
        <th style="border: 1px solid #1f2937; padding: 15px; text-align: center; font-size: 14px;">Quantity</th>
        <th style="border: 1px solid #1f2937; padding: 15px; text-align: right; font-size: 14px;">Unit Price</th>
        <th style="border: 1px solid #1f2937; padding: 15px; text-align: right; font-size: 14px;">GST Rate</th>
        <th style="border: 1px solid #1f2937; padding: 15px; text-align: right; font-size: 14px;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr style="background: #f9fafb;">
        <td style="border: 1px solid #d1d5db; padding: 15px;">
          <div style="font-weight: bold; font-size: 16px;">{{.ItemName}}</div>
          {{if .Description}}<div style="font-size: 13px; color: #6b7280; margin-top: 4px;">{{str .Description}}</div>{{end}}
        </td>
        <td style="border: 1px solid #d1d5db; padding: 15px; text-align: center; font-size: 16px;">{{.Quantity}}</td>
        <td style="border: 1px solid #d1d5db; padding: 15px; text-align: right; font-size: 16px;">{{currency .UnitPrice}}</td>
        <td style="border: 1px solid #d1d5db; padding: 15px; text-align: right; font-size: 16px;">{{.GSTRate}}%</td>
        <td style="border: 1px solid #d1d5db; padding: 15px; text-align: right; font-size: 16px; font-weight: bold;">{{currency .LineTotal}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-bottom: 40px;">
    <div style="width: 350px; border: 2px solid #1f2937;">
      <div style="background: #1f2937; color: white; padding: 12px; text-align: center; font-size: 18px; font-weight: bold;">INVOICE SUMMARY</div>
      <div style="padding: 15px;">
        <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; font-size: 16px;">
          <span>Subtotal:</span>
          <span>{{currency .Invoice.Subtotal}}</span>
        </div>
        <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; font-size: 16px;">
          <span>Total GST:</span>
          <span>{{currency .Invoice.TotalGST}}</span>
        </div>
        {{if gt .Invoice.Discount 0.0}}
        <div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; font-size: 16px; color: #dc2626;">
          <span>Discount:</span>
          <span>-{{currency .Invoice.Discount}}</span>
        </div>
        {{end}}
        <div style="display: flex; justify-content: space-between; padding: 15px 0; border-top: 2px solid #1f2937; font-size: 20px; font-weight: bold; background: #f9fafb;">
          <span>TOTAL AMOUNT:</span>
          <span>{{currency .Invoice.TotalAmount}}</span>
        </div>
      </div>
    </div>
  </div>

  {{with .Company}}
  {{if or .BankName .BankAccountNumber}}
  <div style="border: 1px solid #d1d5db; padding: 20px; margin-bottom: 30px; background: #fafafa;">
    <h3 style="font-size: 18px; margin: 0 0 15px 0; color: #1f2937; border-bottom: 1px solid #d1d5db; padding-bottom: 5px;">Bank Details:</h3>
    <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 15px;">
      {{if .BankName}}<div><strong>Bank Name:</strong> {{str .BankName}}</div>{{end}}
      {{if .BankAccountNumber}}<div><strong>Account Number:</strong> {{str .BankAccountNumber}}</div>{{end}}
      {{if .BankIFSC}}<div><strong>IFSC Code:</strong> {{str .BankIFSC}}</div>{{end}}
    </div>
  </div>
  {{end}}
  {{end}}

  {{if str .Invoice.Notes}}
  <div style="border: 1px solid #d1d5db; padding: 20px; margin-bottom: 30px; background: #f9fafb;">
    <h3 style="font-size: 18px; margin: 0 0 15px 0; color: #1f2937;">Terms &amp; Notes:</h3>
    <p style="margin: 0; color: #4b5563; line-height: 1.6; font-size: 14px;">{{str .Invoice.Notes}}</p>
  </div>
  {{end}}

  <div style="text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #d1d5db; color: #6b7280; font-size: 12px;">
    <p style="margin: 0;">Thank you for your business!</p>
    {{with .Company}}
    {{if or .Email .Phone}}
    <p style="margin: 10px 0 0 0;">{{if .Email}}Email: {{str .Email}}{{end}}{{if and .Email .Phone}} | {{end}}{{if .Phone}}Phone: {{str .Phone}}{{end}}</p>
    {{end}}
    {{end}}
  </div>
</div>
`
