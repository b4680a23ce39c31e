package templates

import (
	"html/template"

	"invoice-service/internal/models"
)

// extrapeRenderer: the Extrape letterhead format. Like corporate it carries
// the full statutory trimmings, but prints all three tax rows unconditionally
// and a single aggregate line in the tax summary keyed by the first item's
// HSN/SAC, which is how this format has always looked.
type extrapeRenderer struct {
	tpl     *template.Template
	fetcher LogoFetcher
}

func newExtrapeRenderer(fetcher LogoFetcher) *extrapeRenderer {
	return &extrapeRenderer{
		tpl:     mustParse("extrape_invoice", extrapeTemplate),
		fetcher: fetcher,
	}
}

func (r *extrapeRenderer) ID() string { return "extrape_invoice" }

func (r *extrapeRenderer) Render(data *models.InvoiceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	return execute(r.tpl, newTaxView(data, inlineLogo(r.fetcher, data)))
}

const extrapeTemplate = `
<div style="font-family: 'Roboto', sans-serif; background: white; width: 210mm; min-height: 297mm; margin: 0 auto; display: flex; flex-direction: column;">
  <div style="padding: 15mm; flex-grow: 1;">
    <header style="display: flex; align-items: center; justify-content: space-between; border-bottom: 2px solid #1f2937; padding-bottom: 0.5rem;">
      <div style="flex-shrink: 0;">
        {{if .Logo}}<img src="{{.Logo}}" alt="Company Logo" style="height: 64px;">{{end}}
      </div>
      <div style="flex-grow: 1; text-align: center;">
        <h1 style="font-family: 'Alex Brush'; font-size: 3rem; font-weight: bold; color: #1f2937; margin: 0;">{{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</h1>
        {{with .Company}}
        <p style="font-size: 0.875rem; color: #4b5563; margin: 0;">{{str .Address}}</p>
        <p style="font-size: 0.875rem; color: #4b5563; margin: 0;">Tel-{{str .Phone}} | email: {{str .Email}}</p>
        {{end}}
      </div>
    </header>

    <div style="text-align: center; margin: 1.5rem 0;">
      <h2 style="font-size: 1.25rem; font-weight: bold; letter-spacing: 0.05em; margin: 0;">GST INVOICE</h2>
    </div>

    <div style="display: flex; justify-content: space-between; font-size: 0.75rem; margin-bottom: 1.5rem;">
      <div style="width: 50%; padding-right: 1rem;">
        <div style="display: grid; grid-template-columns: repeat(3, minmax(0, 1fr)); gap: 0.25rem 0.5rem;">
          {{with .Company}}
          <p style="font-weight: bold; margin: 0;">Invoice From</p><p style="grid-column: span 2; margin: 0;">: {{.CompanyName}}</p>
          <p style="font-weight: bold; margin: 0;">Address</p><p style="grid-column: span 2; margin: 0;">: {{str .Address}}</p>
          <p style="font-weight: bold; margin: 0;">GSTIN</p><p style="grid-column: span 2; margin: 0;">: {{str .GSTIN}}</p>
          <p style="font-weight: bold; margin: 0;">PAN</p><p style="grid-column: span 2; margin: 0;">: {{str .PAN}}</p>
          {{end}}
        </div>
      </div>
      <div style="width: 50%; padding-left: 1rem;">
        <div style="display: grid; grid-template-columns: repeat(3, minmax(0, 1fr)); gap: 0.25rem 0.5rem;">
          <p style="font-weight: bold; margin: 0;">Invoice To</p><p style="grid-column: span 2; margin: 0;">: {{.Client.Name}}</p>
          <p style="font-weight: bold; margin: 0;">Address</p><p style="grid-column: span 2; margin: 0;">: {{str .Client.Address}}{{if str .Client.City}}, {{str .Client.City}}{{end}}{{if str .Client.State}}, {{str .Client.State}}{{end}}{{if str .Client.Pin}} - {{str .Client.Pin}}{{end}}</p>
          <p style="font-weight: bold; margin: 0;">Place of Supply</p><p style="grid-column: span 2; margin: 0;">: {{if str .Invoice.PlaceOfSupply}}{{str .Invoice.PlaceOfSupply}}{{else}}{{str .Client.State}}{{end}}</p>
          <p style="font-weight: bold; margin: 0;">GSTIN</p><p style="grid-column: span 2; margin: 0;">: {{str .Client.GSTIN}}</p>
          <p style="font-weight: bold; margin: 0;">Invoice No.</p><p style="grid-column: span 2; margin: 0;">: {{.Invoice.InvoiceNumber}}</p>
          <p style="font-weight: bold; margin: 0;">Date</p><p style="grid-column: span 2; margin: 0;">: {{date .Invoice.InvoiceDate}}</p>
        </div>
      </div>
    </div>

    <table style="width: 100%; font-size: 0.75rem; border-collapse: collapse; border: 1px solid #d1d5db;">
      <thead style="background-color: #f3f4f6;">
        <tr>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: center;">S. NO</th>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: left;">Description of Services</th>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: center;">SAC/HSN</th>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: center;">Quantity</th>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">Rate</th>
          <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Items}}
        <tr>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: center;">{{inc $i}}</td>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db;">{{$item.ItemName}}</td>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: center;">{{str $item.HSNSAC}}</td>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: center;">{{$item.Quantity}}</td>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency $item.UnitPrice}}</td>
          <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency $item.LineTotal}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div style="display: flex; justify-content: flex-end; margin-top: 0.25rem;">
      <div style="width: 40%;">
        <table style="width: 100%; font-size: 0.75rem;">
          <tbody>
            <tr>
              <td style="padding: 0.5rem; font-weight: bold;">Sub Total:</td>
              <td style="padding: 0.5rem; text-align: right;">{{currency .Invoice.Subtotal}}</td>
            </tr>
            <tr>
              <td style="padding: 0.5rem; font-weight: bold;">IGST @ {{.HeadlineRate}}%:</td>
              <td style="padding: 0.5rem; text-align: right;">{{currency .TaxTotals.IGSTAmount}}</td>
            </tr>
            <tr>
              <td style="padding: 0.5rem; font-weight: bold;">SGST @ {{half .HeadlineRate}}%:</td>
              <td style="padding: 0.5rem; text-align: right;">{{currency .TaxTotals.SGSTAmount}}</td>
            </tr>
            <tr>
              <td style="padding: 0.5rem; font-weight: bold;">CGST @ {{half .HeadlineRate}}%:</td>
              <td style="padding: 0.5rem; text-align: right;">{{currency .TaxTotals.CGSTAmount}}</td>
            </tr>
            <tr style="font-weight: bold; background-color: #f3f4f6;">
              <td style="padding: 0.5rem; border-top: 1px solid #d1d5db; border-bottom: 1px solid #d1d5db;">TOTAL AMOUNT PAYABLE:</td>
              <td style="padding: 0.5rem; border-top: 1px solid #d1d5db; border-bottom: 1px solid #d1d5db; text-align: right;">{{currency .Invoice.TotalAmount}}</td>
            </tr>
          </tbody>
        </table>
      </div>
    </div>

    <div style="font-size: 0.75rem; margin-top: 1rem;">
      <p style="margin: 0;"><strong>Amount Chargeable (in words):</strong> {{words .Invoice.TotalAmount}}</p>
      <p style="margin: 0;"><strong>GST Payable under reverse charge:</strong> {{if .Invoice.ReverseCharge}}YES{{else}}NO{{end}}</p>
    </div>

    <div style="font-size: 0.75rem; margin-top: 1rem;">
      <table style="width: 100%; font-size: 0.75rem; border-collapse: collapse; border: 1px solid #d1d5db;">
        <thead style="background-color: #f3f4f6;">
          <tr>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: center;">SAC</th>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">Taxable Value</th>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">CGST ({{half .HeadlineRate}}%)</th>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">SGST ({{half .HeadlineRate}}%)</th>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">IGST ({{.HeadlineRate}}%)</th>
            <th style="padding: 0.5rem; border: 1px solid #d1d5db; font-weight: bold; text-align: right;">Total Tax Amount</th>
          </tr>
        </thead>
        <tbody>
          <tr>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: center;">{{with index .Items 0}}{{str .HSNSAC}}{{end}}</td>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency .Invoice.Subtotal}}</td>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency .TaxTotals.CGSTAmount}}</td>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency .TaxTotals.SGSTAmount}}</td>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency .TaxTotals.IGSTAmount}}</td>
            <td style="padding: 0.5rem; border: 1px solid #d1d5db; text-align: right;">{{currency .Invoice.TotalGST}}</td>
          </tr>
        </tbody>
      </table>
    </div>
  </div>

  <div style="padding: 0 15mm 15mm;">
    {{with .Company}}
    <div style="font-size: 0.75rem; margin-top: 1rem; padding-top: 1rem; border-top: 1px solid #d1d5db;">
      <p style="margin: 0;"><strong>Bank Account Details:</strong></p>
      <div style="display: grid; grid-template-columns: repeat(2, minmax(0, 1fr));">
        <p style="margin: 0;"><strong>Account No:</strong> {{str .BankAccountNumber}}</p>
        <p style="margin: 0;"><strong>Account Name:</strong> {{.CompanyName}}</p>
        <p style="margin: 0;"><strong>Bank &amp; Branch Name:</strong> {{str .BankName}}</p>
        <p style="margin: 0;"><strong>IFSC Code:</strong> {{str .BankIFSC}}</p>
        <p style="margin: 0;"><strong>Account Type:</strong> Current Account</p>
      </div>
    </div>
    {{end}}

    <div style="display: flex; justify-content: flex-end; margin-top: 4rem;">
      <div style="text-align: center; font-size: 0.75rem;">
        <p style="font-weight: bold; margin: 0;">For {{if .Company}}{{.Company.CompanyName}}{{else}}Your Company{{end}}</p>
        <div style="height: 4rem;"></div>
        <p style="border-top: 1px solid #d1d5db; padding-top: 0.25rem; margin: 0;">Director / Authorized Signatory</p>
      </div>
    </div>
  </div>
</div>
`
