package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/application/usecase"
	"github.com/koajpc/backoffice-api/internal/domain"
)

// KoajCodeHandler maneja el catálogo de códigos de prenda KOAJ.
type KoajCodeHandler struct {
	uc *usecase.KoajCodeUseCase
}

// NewKoajCodeHandler construye el handler del catálogo.
func NewKoajCodeHandler(uc *usecase.KoajCodeUseCase) *KoajCodeHandler {
	return &KoajCodeHandler{uc: uc}
}

// List godoc
// @Summary      Listar códigos del catálogo
// @Tags         koaj-codes
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "busca en código, categoría y descripción"
// @Param        applies_to  query  string  false  "hombre | mujer | niño | niña | todos"
// @Success      200  {object}  dto.KoajCodeListResponse
// @Router       /api/koaj-codes [get]
func (h *KoajCodeHandler) List(c *fiber.Ctx) error {
	codes, err := h.uc.List(c.Query("search"), c.Query("applies_to"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.KoajCodeListResponse{Success: true, Codes: codes, Total: len(codes)})
}

// Create godoc
// @Summary      Crear código (solo admin)
// @Tags         koaj-codes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKoajCodeRequest  true  "code, category, description, applies_to"
// @Success      201   {object}  dto.KoajCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/koaj-codes [post]
func (h *KoajCodeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKoajCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe en el catálogo"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

// Update godoc
// @Summary      Actualizar código (solo admin)
// @Tags         koaj-codes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del código"
// @Param        body  body  dto.UpdateKoajCodeRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.KoajCodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/koaj-codes/{id} [put]
func (h *KoajCodeHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateKoajCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "otro código ya usa ese valor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(code)
}

// Deactivate godoc
// @Summary      Desactivar código (solo admin)
// @Tags         koaj-codes
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del código"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/koaj-codes/{id} [delete]
func (h *KoajCodeHandler) Deactivate(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Deactivate(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "código desactivado"})
}
