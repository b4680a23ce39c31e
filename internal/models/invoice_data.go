package models

import "fmt"

// InvoiceData is the read-only aggregate handed to every template renderer.
// It is assembled fresh per render request and never mutated by the rendering
// pipeline. All optional fields are pointers; renderers that don't use a field
// simply ignore it.
type InvoiceData struct {
	Invoice InvoiceInfo  `json:"invoice"`
	Client  ClientInfo   `json:"client"`
	Company *CompanyInfo `json:"company"`
	Items   []LineItem   `json:"items"`
}

type InvoiceInfo struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"`
	Subtotal      float64 `json:"subtotal"`
	TotalGST      float64 `json:"total_gst"`
	TotalAmount   float64 `json:"total_amount"`
	Discount      float64 `json:"discount"`
	Notes         *string `json:"notes"`
	ReverseCharge bool    `json:"reverse_charge"`
	PlaceOfSupply *string `json:"place_of_supply"`
}

type ClientInfo struct {
	Name        string  `json:"name"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	GSTIN       *string `json:"gstin"`
	State       *string `json:"state"`
	City        *string `json:"city"`
	Pin         *string `json:"pin"`
}

type CompanyInfo struct {
	CompanyName       string  `json:"company_name"`
	Address           *string `json:"address"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	GSTIN             *string `json:"gstin"`
	PAN               *string `json:"pan"`
	LogoURL           *string `json:"logo_url"`
	BankName          *string `json:"bank_name"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankIFSC          *string `json:"bank_ifsc"`
	Website           *string `json:"website"`
	State             *string `json:"state"`
}

type LineItem struct {
	ItemName    string  `json:"item_name"`
	Description *string `json:"description"`
	HSNSAC      *string `json:"hsn_sac"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
	LineTotal   float64 `json:"line_total"`
	GSTAmount   float64 `json:"gst_amount"`
}

// Validate checks the fields without which a rendered document would be
// meaningless. Optional fields are never validated here; renderers must
// tolerate their absence.
func (d *InvoiceData) Validate() error {
	if d.Invoice.InvoiceNumber == "" {
		return fmt.Errorf("%w: invoice number", ErrMissingData)
	}
	if d.Client.Name == "" {
		return fmt.Errorf("%w: client name", ErrMissingData)
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: at least one line item", ErrMissingData)
	}
	for i, item := range d.Items {
		if item.ItemName == "" {
			return fmt.Errorf("%w: item name at position %d", ErrMissingData, i+1)
		}
	}
	return nil
}

// ClientState returns the recipient state used for the tax-jurisdiction
// comparison, empty when unknown.
func (d *InvoiceData) ClientState() string {
	if d.Client.State == nil {
		return ""
	}
	return *d.Client.State
}

// CompanyState returns the supplier state used for the tax-jurisdiction
// comparison, empty when unknown.
func (d *InvoiceData) CompanyState() string {
	if d.Company == nil || d.Company.State == nil {
		return ""
	}
	return *d.Company.State
}
