package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-service/internal/models"
)

type fakeInvoiceStore struct {
	invoices map[uuid.UUID]*models.Invoice
	items    map[uuid.UUID][]models.InvoiceItem
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{
		invoices: make(map[uuid.UUID]*models.Invoice),
		items:    make(map[uuid.UUID][]models.InvoiceItem),
	}
}

func (s *fakeInvoiceStore) Create(_ context.Context, invoice *models.Invoice, items []models.InvoiceItem) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	s.invoices[invoice.ID] = invoice
	s.items[invoice.ID] = items
	return nil
}

func (s *fakeInvoiceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice, ok := s.invoices[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return invoice, nil
}

func (s *fakeInvoiceStore) GetItems(_ context.Context, invoiceID uuid.UUID) ([]models.InvoiceItem, error) {
	return s.items[invoiceID], nil
}

func (s *fakeInvoiceStore) NextInvoiceNumber(_ context.Context, prefix string) (string, error) {
	count := 0
	for _, invoice := range s.invoices {
		if strings.HasPrefix(invoice.InvoiceNumber, prefix+"-") {
			count++
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, count+1), nil
}

func (s *fakeInvoiceStore) List(_ context.Context, status models.InvoiceStatus) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for _, invoice := range s.invoices {
		if status == "" || invoice.Status == status {
			out = append(out, *invoice)
		}
	}
	return out, nil
}

func (s *fakeInvoiceStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.InvoiceStatus) error {
	invoice, ok := s.invoices[id]
	if !ok {
		return models.ErrNotFound
	}
	invoice.Status = status
	return nil
}

func (s *fakeInvoiceStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.invoices[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.invoices, id)
	delete(s.items, id)
	return nil
}

type fakeClientStore struct {
	client *models.Client
	err    error
}

func (s *fakeClientStore) GetByID(_ context.Context, _ uuid.UUID) (*models.Client, error) {
	return s.client, s.err
}

type fakeCompanyStore struct {
	company *models.Company
	err     error
}

func (s *fakeCompanyStore) GetByID(_ context.Context, _ uuid.UUID) (*models.Company, error) {
	return s.company, s.err
}

func testStatePtr(s string) *string { return &s }

func newTestService(companyState, clientState string) (*InvoiceService, *fakeInvoiceStore) {
	store := newFakeInvoiceStore()
	svc := NewInvoiceService(
		store,
		&fakeClientStore{client: &models.Client{
			ID:    uuid.New(),
			Name:  "Acme Traders",
			State: testStatePtr(clientState),
		}},
		&fakeCompanyStore{company: &models.Company{
			ID:          uuid.New(),
			CompanyName: "Horizon Consulting",
			State:       testStatePtr(companyState),
		}},
	)
	return svc, store
}

func baseCreateRequest() *models.CreateInvoiceRequest {
	return &models.CreateInvoiceRequest{
		InvoiceNumber: "INV-2025-001",
		CompanyID:     uuid.New(),
		ClientID:      uuid.New(),
		InvoiceDate:   "2025-04-15",
		Items: []models.CreateInvoiceItemRequest{
			{ItemName: "Consulting", Quantity: 2, UnitPrice: 500, GSTRate: 18},
		},
	}
}

func TestCreateInvoiceFreezesLineAmounts(t *testing.T) {
	svc, store := newTestService("Goa", "Goa")

	invoice, err := svc.CreateInvoice(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)
	assert.InDelta(t, 1000.0, invoice.Subtotal, 0.001)
	assert.InDelta(t, 180.0, invoice.TotalGST, 0.001)
	assert.InDelta(t, 1180.0, invoice.TotalAmount, 0.001)

	items := store.items[invoice.ID]
	require.Len(t, items, 1)
	assert.InDelta(t, 1000.0, items[0].LineTotal, 0.001)
	assert.InDelta(t, 180.0, items[0].GSTAmount, 0.001)
}

func TestCreateInvoiceInterStateSameTotals(t *testing.T) {
	svc, _ := newTestService("Goa", "Karnataka")

	invoice, err := svc.CreateInvoice(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	// The jurisdiction split changes, the totals don't.
	assert.InDelta(t, 180.0, invoice.TotalGST, 0.001)
	assert.InDelta(t, 1180.0, invoice.TotalAmount, 0.001)
}

func TestCreateInvoiceAppliesDiscount(t *testing.T) {
	svc, _ := newTestService("Goa", "Goa")

	req := baseCreateRequest()
	req.Discount = 80

	invoice, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 1100.0, invoice.TotalAmount, 0.001)
}

func TestCreateInvoiceMultipleItems(t *testing.T) {
	svc, store := newTestService("Goa", "Goa")

	req := baseCreateRequest()
	req.Items = []models.CreateInvoiceItemRequest{
		{ItemName: "Design", Quantity: 1, UnitPrice: 333.33, GSTRate: 18},
		{ItemName: "Hosting", Quantity: 3, UnitPrice: 100, GSTRate: 0},
	}

	invoice, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	items := store.items[invoice.ID]
	require.Len(t, items, 2)
	assert.InDelta(t, 333.33, items[0].LineTotal, 0.001)
	assert.InDelta(t, 60.0, items[0].GSTAmount, 0.011)
	assert.InDelta(t, 300.0, items[1].LineTotal, 0.001)
	assert.InDelta(t, 0.0, items[1].GSTAmount, 0.001)
	assert.InDelta(t, 633.33, invoice.Subtotal, 0.001)
}

func TestCreateInvoiceRejectsInvalidRequest(t *testing.T) {
	svc, _ := newTestService("Goa", "Goa")

	req := baseCreateRequest()
	req.Items = nil

	_, err := svc.CreateInvoice(context.Background(), req)
	require.Error(t, err)
}

func TestCreateInvoiceUnknownClient(t *testing.T) {
	store := newFakeInvoiceStore()
	svc := NewInvoiceService(
		store,
		&fakeClientStore{err: models.ErrNotFound},
		&fakeCompanyStore{company: &models.Company{CompanyName: "Horizon"}},
	)

	_, err := svc.CreateInvoice(context.Background(), baseCreateRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestListInvoicesRejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newTestService("Goa", "Goa")

	_, err := svc.ListInvoices(context.Background(), "cancelled")
	require.Error(t, err)
}

func TestAssembleInvoiceData(t *testing.T) {
	svc, _ := newTestService("Goa", "Goa")

	req := baseCreateRequest()
	due := "2025-05-15"
	req.DueDate = &due

	invoice, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	data, stored, err := svc.AssembleInvoiceData(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "INV-2025-001", data.Invoice.InvoiceNumber)
	assert.Equal(t, "2025-04-15", data.Invoice.InvoiceDate)
	require.NotNil(t, data.Invoice.DueDate)
	assert.Equal(t, "2025-05-15", *data.Invoice.DueDate)
	assert.Equal(t, "Acme Traders", data.Client.Name)
	require.NotNil(t, data.Company)
	assert.Equal(t, "Horizon Consulting", data.Company.CompanyName)
	require.Len(t, data.Items, 1)
	assert.InDelta(t, 1000.0, data.Items[0].LineTotal, 0.001)
}

func TestAssembleInvoiceDataMissingCompanyDegrades(t *testing.T) {
	store := newFakeInvoiceStore()
	clients := &fakeClientStore{client: &models.Client{Name: "Acme Traders", State: testStatePtr("Goa")}}
	companies := &fakeCompanyStore{company: &models.Company{CompanyName: "Horizon", State: testStatePtr("Goa")}}
	svc := NewInvoiceService(store, clients, companies)

	invoice, err := svc.CreateInvoice(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	// Profile disappears between creation and render.
	companies.company = nil
	companies.err = models.ErrNotFound

	data, _, err := svc.AssembleInvoiceData(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Nil(t, data.Company)
}

func TestNextInvoiceNumberIncrementsPerPrefix(t *testing.T) {
	svc, _ := newTestService("Goa", "Goa")

	number, err := svc.NextInvoiceNumber(context.Background(), "INV-2025")
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-001", number)

	_, err = svc.CreateInvoice(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	number, err = svc.NextInvoiceNumber(context.Background(), "INV-2025")
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-002", number)
}

func TestCreateInvoiceFreezesUnsplitTax(t *testing.T) {
	svc, store := newTestService("Goa", "Goa")

	// 0.25 @ 18% = 0.045: the unsplit tax rounds to 0.05, while summing the
	// two rounded CGST/SGST halves would give 0.04.
	req := baseCreateRequest()
	req.Items = []models.CreateInvoiceItemRequest{
		{ItemName: "Stamp", Quantity: 1, UnitPrice: 0.25, GSTRate: 18},
	}

	invoice, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	items := store.items[invoice.ID]
	require.Len(t, items, 1)
	assert.InDelta(t, 0.05, items[0].GSTAmount, 0.001)
	assert.InDelta(t, 0.05, invoice.TotalGST, 0.001)
	assert.InDelta(t, 0.30, invoice.TotalAmount, 0.001)
}
