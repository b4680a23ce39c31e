package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
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

func (r *CreateClientRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.GSTIN != nil && len(*r.GSTIN) != 15 {
		return errors.New("gstin must be 15 characters")
	}
	return nil
}

type CreateCompanyRequest struct {
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

func (r *CreateCompanyRequest) Validate() error {
	if r.CompanyName == "" {
		return errors.New("company_name is required")
	}
	if r.GSTIN != nil && len(*r.GSTIN) != 15 {
		return errors.New("gstin must be 15 characters")
	}
	return nil
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HSNSAC      *string `json:"hsn_sac"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
}

func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.UnitPrice < 0 {
		return errors.New("unit_price must not be negative")
	}
	if r.GSTRate < 0 || r.GSTRate > 100 {
		return errors.New("gst_rate must be between 0 and 100")
	}
	return nil
}

type CreateInvoiceItemRequest struct {
	ItemName    string  `json:"item_name"`
	Description *string `json:"description"`
	HSNSAC      *string `json:"hsn_sac"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
}

func (r *CreateInvoiceItemRequest) Validate() error {
	if r.ItemName == "" {
		return errors.New("item_name is required")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if r.UnitPrice < 0 {
		return errors.New("unit_price must not be negative")
	}
	if r.GSTRate < 0 || r.GSTRate > 100 {
		return errors.New("gst_rate must be between 0 and 100")
	}
	return nil
}

type CreateInvoiceRequest struct {
	InvoiceNumber string                     `json:"invoice_number"`
	CompanyID     uuid.UUID                  `json:"company_id"`
	ClientID      uuid.UUID                  `json:"client_id"`
	InvoiceDate   string                     `json:"invoice_date"`
	DueDate       *string                    `json:"due_date"`
	Status        InvoiceStatus              `json:"status"`
	Discount      float64                    `json:"discount"`
	Notes         *string                    `json:"notes"`
	ReverseCharge bool                       `json:"reverse_charge"`
	PlaceOfSupply *string                    `json:"place_of_supply"`
	TemplateID    *string                    `json:"template_id"`
	Items         []CreateInvoiceItemRequest `json:"items"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if r.InvoiceNumber == "" {
		return errors.New("invoice_number is required")
	}
	if r.CompanyID == uuid.Nil {
		return errors.New("company_id is required")
	}
	if r.ClientID == uuid.Nil {
		return errors.New("client_id is required")
	}
	if _, err := time.Parse("2006-01-02", r.InvoiceDate); err != nil {
		return fmt.Errorf("invoice_date must be YYYY-MM-DD: %w", err)
	}
	if r.DueDate != nil {
		if _, err := time.Parse("2006-01-02", *r.DueDate); err != nil {
			return fmt.Errorf("due_date must be YYYY-MM-DD: %w", err)
		}
	}
	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if r.Discount < 0 {
		return errors.New("discount must not be negative")
	}
	if len(r.Items) == 0 {
		return errors.New("at least one line item is required")
	}
	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status"`
}

func (r *UpdateInvoiceStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}
