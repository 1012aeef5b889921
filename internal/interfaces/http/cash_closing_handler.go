package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/application/usecase"
	"github.com/koajpc/backoffice-api/internal/infrastructure/alegra"
)

// ClosingPDFGenerator renderiza un cierre procesado como PDF.
type ClosingPDFGenerator interface {
	GenerateClosingPDF(ctx context.Context, closing *dto.CashClosingResponse) ([]byte, error)
}

// CashClosingHandler maneja el cierre de caja diario.
type CashClosingHandler struct {
	uc  *usecase.CashClosingUseCase
	pdf ClosingPDFGenerator
}

// NewCashClosingHandler construye el handler del cierre.
func NewCashClosingHandler(uc *usecase.CashClosingUseCase, pdf ClosingPDFGenerator) *CashClosingHandler {
	return &CashClosingHandler{uc: uc, pdf: pdf}
}

// Process godoc
// @Summary      Procesar cierre de caja
// @Description  Calcula totales, base y consignación a partir del conteo y lo
//               cruza con la venta del día en Alegra. Si Alegra no responde,
//               devuelve 502 con el conteo procesado incluido.
// @Tags         cash-closings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashClosingRequest  true  "conteo de monedas/billetes + ajustes"
// @Success      200   {object}  dto.CashClosingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.CashClosingResponse
// @Router       /api/cash-closings [post]
func (h *CashClosingHandler) Process(c *fiber.Ctx) error {
	var in dto.CashClosingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resp, err := h.uc.ProcessClosing(c.Context(), in)
	if err != nil {
		// El conteo válido nunca se pierde: si Alegra falló, la respuesta
		// parcial viaja con el 502.
		if resp != nil {
			return c.Status(fiber.StatusBadGateway).JSON(resp)
		}
		if errors.Is(err, alegra.ErrUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ALEGRA_DOWN", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ProcessPDF godoc
// @Summary      Cierre de caja en PDF
// @Description  Mismo cálculo del cierre, renderizado como documento imprimible.
//               No consulta Alegra.
// @Tags         cash-closings
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CashClosingRequest  true  "conteo de monedas/billetes + ajustes"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-closings/pdf [post]
func (h *CashClosingHandler) ProcessPDF(c *fiber.Ctx) error {
	var in dto.CashClosingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	closing, err := h.uc.ComputeReport(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	bytes, err := h.pdf.GenerateClosingPDF(c.Context(), closing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="cierre_caja_%s.pdf"`, closing.DateRequested))
	return c.Send(bytes)
}
