package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"invoice-service/internal/pdf"
	"invoice-service/internal/templates"
)

type pdfGenerator interface {
	Generate(ctx context.Context, invoiceNumber, html string) (*pdf.Document, error)
}

type documentArchiver interface {
	UploadBytes(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error
}

// DocumentService turns a stored invoice into a downloadable PDF: assemble
// the data, render the selected template, rasterize and paginate, then
// archive a copy in object storage.
type DocumentService struct {
	invoiceService *InvoiceService
	registry       *templates.Registry
	generator      pdfGenerator
	archiver       documentArchiver
	archiveBucket  string
}

func NewDocumentService(invoiceService *InvoiceService, registry *templates.Registry, generator pdfGenerator, archiver documentArchiver, archiveBucket string) *DocumentService {
	return &DocumentService{
		invoiceService: invoiceService,
		registry:       registry,
		generator:      generator,
		archiver:       archiver,
		archiveBucket:  archiveBucket,
	}
}

// GenerateInvoicePDF produces the invoice PDF. The template id stored on the
// invoice picks the renderer; unknown ids fall back to the default template.
// Archival to object storage is best-effort and never fails the request.
func (s *DocumentService) GenerateInvoicePDF(ctx context.Context, invoiceID uuid.UUID) (*pdf.Document, error) {
	data, invoice, err := s.invoiceService.AssembleInvoiceData(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	templateID := templates.DefaultTemplateID
	if invoice.TemplateID != nil && *invoice.TemplateID != "" {
		templateID = *invoice.TemplateID
	}

	renderer := s.registry.Resolve(templateID)
	html, err := renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", invoice.InvoiceNumber, err)
	}

	doc, err := s.generator.Generate(ctx, invoice.InvoiceNumber, html)
	if err != nil {
		return nil, err
	}

	if s.archiver != nil {
		if err := s.archiver.UploadBytes(ctx, s.archiveBucket, doc.Filename, doc.PDF, "application/pdf"); err != nil {
			slog.Warn("failed to archive invoice PDF",
				"invoice_number", invoice.InvoiceNumber,
				"bucket", s.archiveBucket,
				"error", err)
		}
	}

	slog.Info("invoice PDF ready",
		"invoice_number", invoice.InvoiceNumber,
		"template_id", renderer.ID(),
		"filename", doc.Filename,
		"size_bytes", len(doc.PDF))

	return doc, nil
}

// TemplateCatalog lists the available invoice templates.
func (s *DocumentService) TemplateCatalog() []templates.TemplateInfo {
	return s.registry.Catalog()
}
