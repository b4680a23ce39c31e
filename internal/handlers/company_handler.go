package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"invoice-service/internal/models"
	"invoice-service/internal/repository"
)

type CompanyHandler struct {
	companies *repository.CompanyRepository
}

func NewCompanyHandler(companies *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) Register(app *fiber.App) {
	group := app.Group("invoicing/api/v1/company")

	group.Post("/", h.CreateCompany)
	group.Get("/", h.GetProfile)
	group.Put("/:id", h.UpdateCompany)
}

func (h *CompanyHandler) CreateCompany(c fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	company := &models.Company{
		CompanyName:       req.CompanyName,
		Address:           req.Address,
		Email:             req.Email,
		Phone:             req.Phone,
		GSTIN:             req.GSTIN,
		PAN:               req.PAN,
		LogoURL:           req.LogoURL,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
		Website:           req.Website,
		State:             req.State,
	}
	if err := h.companies.Create(c.Context(), company); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("CREATION_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(models.CreateSuccessResponse(company))
}

// GetProfile returns the seller profile invoices are issued under. 404 until
// one has been configured.
func (h *CompanyHandler) GetProfile(c fiber.Ctx) error {
	company, err := h.companies.GetProfile(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}
	if company == nil {
		return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", "no company profile configured"))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(company))
}

func (h *CompanyHandler) UpdateCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	var req models.CreateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	existing, err := h.companies.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	existing.CompanyName = req.CompanyName
	existing.Address = req.Address
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.GSTIN = req.GSTIN
	existing.PAN = req.PAN
	existing.LogoURL = req.LogoURL
	existing.BankName = req.BankName
	existing.BankAccountNumber = req.BankAccountNumber
	existing.BankIFSC = req.BankIFSC
	existing.Website = req.Website
	existing.State = req.State

	if err := h.companies.Update(c.Context(), existing); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(existing))
}
