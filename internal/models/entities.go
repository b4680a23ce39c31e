package models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

type Company struct {
	ID                uuid.UUID `json:"id" db:"id"`
	CompanyName       string    `json:"company_name" db:"company_name"`
	Address           *string   `json:"address" db:"address"`
	Email             *string   `json:"email" db:"email"`
	Phone             *string   `json:"phone" db:"phone"`
	GSTIN             *string   `json:"gstin" db:"gstin"`
	PAN               *string   `json:"pan" db:"pan"`
	LogoURL           *string   `json:"logo_url" db:"logo_url"`
	BankName          *string   `json:"bank_name" db:"bank_name"`
	BankAccountNumber *string   `json:"bank_account_number" db:"bank_account_number"`
	BankIFSC          *string   `json:"bank_ifsc" db:"bank_ifsc"`
	Website           *string   `json:"website" db:"website"`
	State             *string   `json:"state" db:"state"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

type Client struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	CompanyName *string   `json:"company_name" db:"company_name"`
	Email       *string   `json:"email" db:"email"`
	Phone       *string   `json:"phone" db:"phone"`
	Address     *string   `json:"address" db:"address"`
	GSTIN       *string   `json:"gstin" db:"gstin"`
	State       *string   `json:"state" db:"state"`
	City        *string   `json:"city" db:"city"`
	Pin         *string   `json:"pin" db:"pin"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	HSNSAC      *string   `json:"hsn_sac" db:"hsn_sac"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	GSTRate     float64   `json:"gst_rate" db:"gst_rate"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Invoice struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	InvoiceNumber string        `json:"invoice_number" db:"invoice_number"`
	CompanyID     uuid.UUID     `json:"company_id" db:"company_id"`
	ClientID      uuid.UUID     `json:"client_id" db:"client_id"`
	InvoiceDate   time.Time     `json:"invoice_date" db:"invoice_date"`
	DueDate       *time.Time    `json:"due_date" db:"due_date"`
	Status        InvoiceStatus `json:"status" db:"status"`
	Subtotal      float64       `json:"subtotal" db:"subtotal"`
	TotalGST      float64       `json:"total_gst" db:"total_gst"`
	TotalAmount   float64       `json:"total_amount" db:"total_amount"`
	Discount      float64       `json:"discount" db:"discount"`
	Notes         *string       `json:"notes" db:"notes"`
	ReverseCharge bool          `json:"reverse_charge" db:"reverse_charge"`
	PlaceOfSupply *string       `json:"place_of_supply" db:"place_of_supply"`
	TemplateID    *string       `json:"template_id" db:"template_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id" db:"invoice_id"`
	ItemName    string    `json:"item_name" db:"item_name"`
	Description *string   `json:"description" db:"description"`
	HSNSAC      *string   `json:"hsn_sac" db:"hsn_sac"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	GSTRate     float64   `json:"gst_rate" db:"gst_rate"`
	LineTotal   float64   `json:"line_total" db:"line_total"`
	GSTAmount   float64   `json:"gst_amount" db:"gst_amount"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
}
