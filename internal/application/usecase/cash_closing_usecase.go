package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/domain/cash"
	"github.com/koajpc/backoffice-api/pkg/config"
	"github.com/koajpc/backoffice-api/pkg/logger"
	"github.com/koajpc/backoffice-api/pkg/timezone"
)

// CashClosingUseCase orquesta el cierre de caja: procesa el conteo con el
// calculador y lo cruza con el resumen de ventas de Alegra.
type CashClosingUseCase struct {
	calculator *cash.Calculator
	sales      SalesSummaryProvider
	cfg        config.CashConfig
	alegraUser string
	tz         string
	log        *logger.Logger
}

// NewCashClosingUseCase construye el caso de uso del cierre.
func NewCashClosingUseCase(
	cfg config.CashConfig,
	sales SalesSummaryProvider,
	alegraUser, tz string,
	log *logger.Logger,
) *CashClosingUseCase {
	calc := cash.NewCalculator(cash.Config{
		TargetBase:           cfg.TargetBase,
		SmallChangeThreshold: cfg.SmallChangeThreshold,
		CoinDenominations:    cfg.CoinDenominations,
		BillDenominations:    cfg.BillDenominations,
	})
	return &CashClosingUseCase{
		calculator: calc,
		sales:      sales,
		cfg:        cfg,
		alegraUser: alegraUser,
		tz:         tz,
		log:        log,
	}
}

// ProcessClosing ejecuta el cierre completo. Si Alegra no responde, la
// respuesta parcial se devuelve junto con el error para que el handler la
// entregue con 502: el conteo de caja nunca se pierde por una caída del
// proveedor.
func (uc *CashClosingUseCase) ProcessClosing(ctx context.Context, req dto.CashClosingRequest) (*dto.CashClosingResponse, error) {
	resp, err := uc.ComputeReport(req)
	if err != nil {
		return nil, err
	}
	report := resp.CashCount

	summary, err := uc.sales.DailySalesSummary(ctx, req.Date)
	if err != nil {
		uc.log.Warn().Err(err).Str("date", req.Date).
			Msg("alegra no disponible, devolviendo cierre parcial")
		resp.Alegra = dto.AlegraErrorInfo{Error: err.Error()}
		return resp, err
	}
	resp.Alegra = summary

	uc.log.Info().
		Str("date", req.Date).
		Str("total_efectivo", report.Totals.TotalGeneralFormatted).
		Str("base", report.Base.TotalBaseFormatted).
		Str("a_consignar", report.Deposit.FinalDepositFormatted).
		Str("venta_alegra", summary.TotalSale.Formatted).
		Msg("cierre de caja procesado")

	return resp, nil
}

// ComputeReport valida la solicitud y procesa solo el conteo de efectivo,
// sin consultar Alegra. Lo usa el endpoint de PDF.
func (uc *CashClosingUseCase) ComputeReport(req dto.CashClosingRequest) (*dto.CashClosingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", req.Date)
	}
	now, tzUsed := timezone.Now(uc.tz)
	if date.After(now) {
		return nil, fmt.Errorf("la fecha del cierre no puede ser futura: %s", req.Date)
	}
	stamp := timezone.NewStamp(now, tzUsed)

	coins := req.NormalizedCoins(uc.cfg.CoinDenominations)
	bills := req.NormalizedBills(uc.cfg.BillDenominations)

	report, err := uc.calculator.ProcessClosing(coins, bills, req.Excedente, req.GastosOperativos, req.Prestamos)
	if err != nil {
		return nil, err
	}

	return &dto.CashClosingResponse{
		RequestDatetime: stamp.ISO,
		RequestDate:     stamp.Date,
		RequestTime:     stamp.Time,
		RequestTZ:       stamp.Zone,
		DateRequested:   req.Date,
		UsernameUsed:    uc.alegraUser,
		CashCount:       report,
	}, nil
}
