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

// CompanyRepository manages the seller profile. The application works with a
// single company record per installation; GetProfile returns the most
// recently updated one.
type CompanyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	query := `
		INSERT INTO companies (
			id, company_name, address, email, phone, gstin, pan, logo_url,
			bank_name, bank_account_number, bank_ifsc, website, state,
			created_at, updated_at
		) VALUES (
			:id, :company_name, :address, :email, :phone, :gstin, :pan, :logo_url,
			:bank_name, :bank_account_number, :bank_ifsc, :website, :state,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.GetContext(ctx, &company, `SELECT * FROM companies WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get company %s: %w", id, err)
	}
	return &company, nil
}

// GetProfile returns the active seller profile, nil when none is configured
// yet. Invoices render without the company block in that case.
func (r *CompanyRepository) GetProfile(ctx context.Context) (*models.Company, error) {
	var company models.Company
	err := r.db.GetContext(ctx, &company, `SELECT * FROM companies ORDER BY updated_at DESC LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	company.UpdatedAt = time.Now()

	query := `
		UPDATE companies SET
			company_name = :company_name, address = :address, email = :email,
			phone = :phone, gstin = :gstin, pan = :pan, logo_url = :logo_url,
			bank_name = :bank_name, bank_account_number = :bank_account_number,
			bank_ifsc = :bank_ifsc, website = :website, state = :state,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, company)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", company.ID, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: company %s", models.ErrNotFound, company.ID)
	}
	return nil
}
