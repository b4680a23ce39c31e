package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoice-service/internal/gst"
	"invoice-service/internal/models"
)

type invoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice, items []models.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetItems(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceItem, error)
	List(ctx context.Context, status models.InvoiceStatus) ([]models.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextInvoiceNumber(ctx context.Context, prefix string) (string, error)
}

type clientStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
}

type companyStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// InvoiceService owns invoice lifecycle and the money math. All monetary
// amounts are frozen at creation time: per-line totals and tax splits are
// computed once, rounded to two decimals, and persisted.
type InvoiceService struct {
	invoices  invoiceStore
	clients   clientStore
	companies companyStore
}

func NewInvoiceService(invoices invoiceStore, clients clientStore, companies companyStore) *InvoiceService {
	return &InvoiceService{
		invoices:  invoices,
		clients:   clients,
		companies: companies,
	}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid invoice request: %w", err)
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	subtotal := decimal.Zero
	totalGST := decimal.Zero
	for i, itemReq := range req.Items {
		lineTotal := decimal.NewFromFloat(itemReq.Quantity).
			Mul(decimal.NewFromFloat(itemReq.UnitPrice)).
			Round(2)

		// Frozen tax is the unsplit amount; the CGST/SGST vs IGST split is
		// recomputed at render time and rounds its halves independently.
		tax, err := gst.TaxAmount(lineTotal.InexactFloat64(), itemReq.GSTRate)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		gstAmount := decimal.NewFromFloat(tax)

		items = append(items, models.InvoiceItem{
			ItemName:    itemReq.ItemName,
			Description: itemReq.Description,
			HSNSAC:      itemReq.HSNSAC,
			Quantity:    itemReq.Quantity,
			UnitPrice:   itemReq.UnitPrice,
			GSTRate:     itemReq.GSTRate,
			LineTotal:   lineTotal.InexactFloat64(),
			GSTAmount:   gstAmount.InexactFloat64(),
		})
		subtotal = subtotal.Add(lineTotal)
		totalGST = totalGST.Add(gstAmount)
	}

	discount := decimal.NewFromFloat(req.Discount).Round(2)
	totalAmount := subtotal.Add(totalGST).Sub(discount).Round(2)

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice_date: %w", err)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date: %w", err)
		}
		dueDate = &parsed
	}

	status := req.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}

	invoice := &models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		CompanyID:     req.CompanyID,
		ClientID:      req.ClientID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Status:        status,
		Subtotal:      subtotal.Round(2).InexactFloat64(),
		TotalGST:      totalGST.Round(2).InexactFloat64(),
		TotalAmount:   totalAmount.InexactFloat64(),
		Discount:      discount.InexactFloat64(),
		Notes:         req.Notes,
		ReverseCharge: req.ReverseCharge,
		PlaceOfSupply: req.PlaceOfSupply,
		TemplateID:    req.TemplateID,
	}

	if err := s.invoices.Create(ctx, invoice, items); err != nil {
		return nil, err
	}

	slog.Info("invoice created",
		"invoice_id", invoice.ID,
		"invoice_number", invoice.InvoiceNumber,
		"items", len(items),
		"total_amount", invoice.TotalAmount)

	return invoice, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, []models.InvoiceItem, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.invoices.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return invoice, items, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, status models.InvoiceStatus) ([]models.Invoice, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("invalid status filter %q", status)
	}
	return s.invoices.List(ctx, status)
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateInvoiceStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.invoices.UpdateStatus(ctx, id, req.Status)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.invoices.Delete(ctx, id)
}

// NextInvoiceNumber suggests the next sequential number for the given prefix,
// defaulting the prefix to INV-<current year>.
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		prefix = fmt.Sprintf("INV-%d", time.Now().Year())
	}
	return s.invoices.NextInvoiceNumber(ctx, prefix)
}

// AssembleInvoiceData joins the invoice, its parties and its items into the
// flat aggregate the template renderers consume. Dates are serialized as
// ISO-8601 date strings.
func (s *InvoiceService) AssembleInvoiceData(ctx context.Context, id uuid.UUID) (*models.InvoiceData, *models.Invoice, error) {
	invoice, items, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	client, err := s.clients.GetByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	data := &models.InvoiceData{
		Invoice: models.InvoiceInfo{
			ID:            invoice.ID.String(),
			InvoiceNumber: invoice.InvoiceNumber,
			InvoiceDate:   invoice.InvoiceDate.Format("2006-01-02"),
			Status:        string(invoice.Status),
			Subtotal:      invoice.Subtotal,
			TotalGST:      invoice.TotalGST,
			TotalAmount:   invoice.TotalAmount,
			Discount:      invoice.Discount,
			Notes:         invoice.Notes,
			ReverseCharge: invoice.ReverseCharge,
			PlaceOfSupply: invoice.PlaceOfSupply,
		},
		Client: models.ClientInfo{
			Name:        client.Name,
			CompanyName: client.CompanyName,
			Email:       client.Email,
			Phone:       client.Phone,
			Address:     client.Address,
			GSTIN:       client.GSTIN,
			State:       client.State,
			City:        client.City,
			Pin:         client.Pin,
		},
	}

	if invoice.DueDate != nil {
		due := invoice.DueDate.Format("2006-01-02")
		data.Invoice.DueDate = &due
	}

	// A missing company profile degrades the render, it doesn't block it.
	company, err := s.companies.GetByID(ctx, invoice.CompanyID)
	if err != nil {
		slog.Warn("company profile unavailable, rendering without it",
			"invoice_id", invoice.ID,
			"company_id", invoice.CompanyID,
			"error", err)
	} else {
		data.Company = &models.CompanyInfo{
			CompanyName:       company.CompanyName,
			Address:           company.Address,
			Email:             company.Email,
			Phone:             company.Phone,
			GSTIN:             company.GSTIN,
			PAN:               company.PAN,
			LogoURL:           company.LogoURL,
			BankName:          company.BankName,
			BankAccountNumber: company.BankAccountNumber,
			BankIFSC:          company.BankIFSC,
			Website:           company.Website,
			State:             company.State,
		}
	}

	data.Items = make([]models.LineItem, 0, len(items))
	for _, item := range items {
		data.Items = append(data.Items, models.LineItem{
			ItemName:    item.ItemName,
			Description: item.Description,
			HSNSAC:      item.HSNSAC,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			GSTRate:     item.GSTRate,
			LineTotal:   item.LineTotal,
			GSTAmount:   item.GSTAmount,
		})
	}

	return data, invoice, nil
}
