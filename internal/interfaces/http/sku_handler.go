package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/domain/sku"
)

// SKUHandler expone el parser de códigos KOAJ.
type SKUHandler struct{}

// NewSKUHandler construye el handler de SKU.
func NewSKUHandler() *SKUHandler {
	return &SKUHandler{}
}

// ParseName godoc
// @Summary      Parsear nombre de producto ("DESCRIPCIÓN PRECIO / CÓDIGO")
// @Tags         sku
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseNameRequest  true  "nombre completo del producto"
// @Success      200   {object}  sku.ParsedProduct
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sku/parse [post]
func (h *SKUHandler) ParseName(c *fiber.Ctx) error {
	var in dto.ParseNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	return c.JSON(sku.ParseProductName(in.Name))
}

// ParseCode godoc
// @Summary      Parsear un código SKU suelto
// @Tags         sku
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseCodeRequest  true  "código de barras"
// @Success      200   {object}  sku.ParsedSKU
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sku/parse-code [post]
func (h *SKUHandler) ParseCode(c *fiber.Ctx) error {
	var in dto.ParseCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	return c.JSON(sku.ParseCode(in.Code, sku.DeptUnknown))
}

// BarcodeGuide godoc
// @Summary      Guía de lectura de los códigos de barras KOAJ
// @Tags         sku
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  sku.Guide
// @Router       /api/sku/barcode-guide [get]
func (h *SKUHandler) BarcodeGuide(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"guide":   sku.BarcodeGuide(),
	})
}
