package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invoice-service/internal/models"
)

type InvoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts the invoice header and all line items in one transaction so
// a partially written invoice can never be observed.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice, items []models.InvoiceItem) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	invoiceQuery := `
		INSERT INTO invoices (
			id, invoice_number, company_id, client_id, invoice_date, due_date,
			status, subtotal, total_gst, total_amount, discount, notes,
			reverse_charge, place_of_supply, template_id, created_at, updated_at
		) VALUES (
			:id, :invoice_number, :company_id, :client_id, :invoice_date, :due_date,
			:status, :subtotal, :total_gst, :total_amount, :discount, :notes,
			:reverse_charge, :place_of_supply, :template_id, :created_at, :updated_at
		)`

	if _, err := tx.NamedExecContext(ctx, invoiceQuery, invoice); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (
			id, invoice_id, item_name, description, hsn_sac, quantity,
			unit_price, gst_rate, line_total, gst_amount, sort_order
		) VALUES (
			:id, :invoice_id, :item_name, :description, :hsn_sac, :quantity,
			:unit_price, :gst_rate, :line_total, :gst_amount, :sort_order
		)`

	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = invoice.ID
		items[i].SortOrder = i
		if _, err := tx.NamedExecContext(ctx, itemQuery, items[i]); err != nil {
			return fmt.Errorf("failed to create invoice item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.GetContext(ctx, &invoice, `SELECT * FROM invoices WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get invoice %s: %w", id, err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) GetItems(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceItem, error) {
	items := []models.InvoiceItem{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY sort_order`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for invoice %s: %w", invoiceID, err)
	}
	return items, nil
}

// List returns invoices newest first, optionally filtered by status.
func (r *InvoiceRepository) List(ctx context.Context, status models.InvoiceStatus) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	if status == "" {
		err := r.db.SelectContext(ctx, &invoices,
			`SELECT * FROM invoices ORDER BY invoice_date DESC, created_at DESC`)
		if err != nil {
			return nil, fmt.Errorf("failed to list invoices: %w", err)
		}
		return invoices, nil
	}

	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE status = $1 ORDER BY invoice_date DESC, created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices by status %s: %w", status, err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", id, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: invoice %s", models.ErrNotFound, id)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete items for invoice %s: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", id, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: invoice %s", models.ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invoice deletion: %w", err)
	}
	return nil
}

// NextInvoiceNumber produces the next sequential number for the given
// fiscal-year prefix, e.g. INV-2025-007.
func (r *InvoiceRepository) NextInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM invoices WHERE invoice_number LIKE $1`, prefix+"-%")
	if err != nil {
		return "", fmt.Errorf("failed to count invoices for prefix %s: %w", prefix, err)
	}
	return fmt.Sprintf("%s-%03d", prefix, count+1), nil
}
