package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-service/internal/models"
	"invoice-service/internal/pdf"
	"invoice-service/internal/templates"
)

type fakeGenerator struct {
	lastHTML string
	err      error
}

func (g *fakeGenerator) Generate(_ context.Context, invoiceNumber, html string) (*pdf.Document, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastHTML = html
	return &pdf.Document{
		Filename: "Invoice-" + invoiceNumber + ".pdf",
		PDF:      []byte("%PDF-fake"),
	}, nil
}

type fakeArchiver struct {
	bucket string
	object string
	err    error
}

func (a *fakeArchiver) UploadBytes(_ context.Context, bucketName, objectName string, _ []byte, _ string) error {
	a.bucket = bucketName
	a.object = objectName
	return a.err
}

func newTestDocumentService(t *testing.T, templateID *string) (*DocumentService, *fakeGenerator, *fakeArchiver) {
	t.Helper()

	svc, _ := newTestService("Goa", "Goa")

	req := baseCreateRequest()
	req.TemplateID = templateID
	_, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	gen := &fakeGenerator{}
	arch := &fakeArchiver{}
	docSvc := NewDocumentService(svc, templates.NewRegistry(nil), gen, arch, "invoice-documents")
	return docSvc, gen, arch
}

func generateForNewInvoice(t *testing.T, docSvc *DocumentService) *pdf.Document {
	t.Helper()

	invoices, err := docSvc.invoiceService.ListInvoices(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	doc, err := docSvc.GenerateInvoicePDF(context.Background(), invoices[0].ID)
	require.NoError(t, err)
	return doc
}

func TestGenerateInvoicePDFFilename(t *testing.T) {
	docSvc, _, _ := newTestDocumentService(t, nil)

	doc := generateForNewInvoice(t, docSvc)
	assert.Equal(t, "Invoice-INV-2025-001.pdf", doc.Filename)
}

func TestGenerateInvoicePDFUsesStoredTemplate(t *testing.T) {
	id := "classic"
	docSvc, gen, _ := newTestDocumentService(t, &id)

	generateForNewInvoice(t, docSvc)
	assert.Contains(t, gen.lastHTML, "Times New Roman", "classic template markup expected")
}

func TestGenerateInvoicePDFUnknownTemplateFallsBack(t *testing.T) {
	id := "hand_carved_marble"
	docSvc, gen, _ := newTestDocumentService(t, &id)

	generateForNewInvoice(t, docSvc)
	assert.Contains(t, gen.lastHTML, "linear-gradient(135deg, #2563eb", "default modern template markup expected")
}

func TestGenerateInvoicePDFArchivesCopy(t *testing.T) {
	docSvc, _, arch := newTestDocumentService(t, nil)

	generateForNewInvoice(t, docSvc)
	assert.Equal(t, "invoice-documents", arch.bucket)
	assert.Equal(t, "Invoice-INV-2025-001.pdf", arch.object)
}

func TestGenerateInvoicePDFArchiveFailureNonFatal(t *testing.T) {
	docSvc, _, arch := newTestDocumentService(t, nil)
	arch.err = errors.New("bucket unavailable")

	doc := generateForNewInvoice(t, docSvc)
	assert.NotEmpty(t, doc.PDF)
}

func TestGenerateInvoicePDFGeneratorFailureAborts(t *testing.T) {
	docSvc, gen, _ := newTestDocumentService(t, nil)
	gen.err = models.ErrRasterization

	invoices, err := docSvc.invoiceService.ListInvoices(context.Background(), "")
	require.NoError(t, err)

	doc, err := docSvc.GenerateInvoicePDF(context.Background(), invoices[0].ID)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, models.ErrRasterization))
}

func TestTemplateCatalogExposed(t *testing.T) {
	docSvc, _, _ := newTestDocumentService(t, nil)
	assert.Len(t, docSvc.TemplateCatalog(), 8)
}
