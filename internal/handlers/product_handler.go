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

type ProductHandler struct {
	products *repository.ProductRepository
}

func NewProductHandler(products *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Register(app *fiber.App) {
	group := app.Group("invoicing/api/v1/products")

	group.Post("/", h.CreateProduct)
	group.Get("/", h.ListProducts)
	group.Get("/:id", h.GetProductByID)
	group.Put("/:id", h.UpdateProduct)
	group.Delete("/:id", h.DeleteProduct)
}

func (h *ProductHandler) CreateProduct(c fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		HSNSAC:      req.HSNSAC,
		UnitPrice:   req.UnitPrice,
		GSTRate:     req.GSTRate,
	}
	if err := h.products.Create(c.Context(), product); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("CREATION_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(models.CreateSuccessResponse(product))
}

func (h *ProductHandler) ListProducts(c fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(products))
}

func (h *ProductHandler) GetProductByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	product, err := h.products.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(product))
}

func (h *ProductHandler) UpdateProduct(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	var req models.CreateProductRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	existing, err := h.products.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.HSNSAC = req.HSNSAC
	existing.UnitPrice = req.UnitPrice
	existing.GSTRate = req.GSTRate

	if err := h.products.Update(c.Context(), existing); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(existing))
}

func (h *ProductHandler) DeleteProduct(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	if err := h.products.Delete(c.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("DELETE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{"deleted": id}))
}
