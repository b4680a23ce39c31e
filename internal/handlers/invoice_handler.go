package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"invoice-service/internal/models"
	"invoice-service/internal/services"
)

type InvoiceHandler struct {
	invoiceService  *services.InvoiceService
	documentService *services.DocumentService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService, documentService *services.DocumentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
	}
}

func (h *InvoiceHandler) Register(app *fiber.App) {
	group := app.Group("invoicing/api/v1")

	group.Get("/templates", h.ListTemplates)

	invoices := group.Group("/invoices")
	invoices.Post("/", h.CreateInvoice)
	invoices.Get("/", h.ListInvoices)
	invoices.Get("/next-number", h.NextInvoiceNumber)
	invoices.Get("/:id", h.GetInvoiceByID)
	invoices.Patch("/:id/status", h.UpdateInvoiceStatus)
	invoices.Delete("/:id", h.DeleteInvoice)
	invoices.Get("/:id/pdf", h.DownloadInvoicePDF)
}

func (h *InvoiceHandler) CreateInvoice(c fiber.Ctx) error {
	var req models.CreateInvoiceRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("CREATION_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(models.CreateSuccessResponse(invoice))
}

func (h *InvoiceHandler) ListInvoices(c fiber.Ctx) error {
	status := models.InvoiceStatus(c.Query("status"))

	invoices, err := h.invoiceService.ListInvoices(c.Context(), status)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(invoices))
}

// NextInvoiceNumber suggests the next sequential invoice number for an
// optional ?prefix= (defaults to INV-<year>).
func (h *InvoiceHandler) NextInvoiceNumber(c fiber.Ctx) error {
	number, err := h.invoiceService.NextInvoiceNumber(c.Context(), c.Query("prefix"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{"invoice_number": number}))
}

func (h *InvoiceHandler) GetInvoiceByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	invoice, items, err := h.invoiceService.GetInvoice(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{
		"invoice": invoice,
		"items":   items,
	}))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	var req models.UpdateInvoiceStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}

	if err := h.invoiceService.UpdateStatus(c.Context(), id, &req); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{"id": id, "status": req.Status}))
}

func (h *InvoiceHandler) DeleteInvoice(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	if err := h.invoiceService.DeleteInvoice(c.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("DELETE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{"deleted": id}))
}

// DownloadInvoicePDF streams the generated document as an attachment.
func (h *InvoiceHandler) DownloadInvoicePDF(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	doc, err := h.documentService.GenerateInvoicePDF(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		case errors.Is(err, models.ErrMissingData):
			return c.Status(http.StatusUnprocessableEntity).JSON(models.CreateErrorResponse("MISSING_DATA", err.Error()))
		default:
			return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("GENERATION_FAILED", err.Error()))
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Status(http.StatusOK).Send(doc.PDF)
}

func (h *InvoiceHandler) ListTemplates(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(h.documentService.TemplateCatalog()))
}
