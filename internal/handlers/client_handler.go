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

type ClientHandler struct {
	clients *repository.ClientRepository
}

func NewClientHandler(clients *repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) Register(app *fiber.App) {
	group := app.Group("invoicing/api/v1/clients")

	group.Post("/", h.CreateClient)
	group.Get("/", h.ListClients)
	group.Get("/:id", h.GetClientByID)
	group.Put("/:id", h.UpdateClient)
	group.Delete("/:id", h.DeleteClient)
}

func (h *ClientHandler) CreateClient(c fiber.Ctx) error {
	var req models.CreateClientRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	client := &models.Client{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		GSTIN:       req.GSTIN,
		State:       req.State,
		City:        req.City,
		Pin:         req.Pin,
	}
	if err := h.clients.Create(c.Context(), client); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("CREATION_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(models.CreateSuccessResponse(client))
}

func (h *ClientHandler) ListClients(c fiber.Ctx) error {
	clients, err := h.clients.List(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(clients))
}

func (h *ClientHandler) GetClientByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	client, err := h.clients.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(client))
}

func (h *ClientHandler) UpdateClient(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	var req models.CreateClientRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	}

	existing, err := h.clients.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("FETCH_FAILED", err.Error()))
	}

	existing.Name = req.Name
	existing.CompanyName = req.CompanyName
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.GSTIN = req.GSTIN
	existing.State = req.State
	existing.City = req.City
	existing.Pin = req.Pin

	if err := h.clients.Update(c.Context(), existing); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(existing))
}

func (h *ClientHandler) DeleteClient(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
	}

	if err := h.clients.Delete(c.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(models.CreateErrorResponse("NOT_FOUND", err.Error()))
		}
		return c.Status(http.StatusInternalServerError).JSON(models.CreateErrorResponse("DELETE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{"deleted": id}))
}
