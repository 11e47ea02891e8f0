package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
	"github.com/jonathanEDR/gestorappb/internal/model"
	"github.com/jonathanEDR/gestorappb/internal/repository"
)

type CobroService interface {
	Crear(ctx context.Context, userID string, req dto.CrearCobroRequest) (*dto.CobroResponse, error)
	Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.CobroResponse, error)
	Listar(ctx context.Context, userID string, filter dto.CobroFilter) (*dto.CobroListResponse, error)
	Deuda(ctx context.Context, userID string, ventaID uuid.UUID) (*dto.DeudaResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error
}

type cobroService struct {
	repo      repository.CobroRepository
	ventaRepo repository.VentaRepository
}

func NewCobroService(repo repository.CobroRepository, ventaRepo repository.VentaRepository) CobroService {
	return &cobroService{repo: repo, ventaRepo: ventaRepo}
}

// Crear applies a payment against a venta's outstanding debt. The venta row
// stays locked from the debt check to the accumulator update, so two
// concurrent cobros can never overshoot the total between them.
func (s *cobroService) Crear(ctx context.Context, userID string, req dto.CrearCobroRequest) (*dto.CobroResponse, error) {
	ventaID, err := uuid.Parse(req.VentaID)
	if err != nil {
		return nil, ledger.Validation("venta_id invalido")
	}
	if !req.MontoPagado.IsPositive() {
		return nil, ledger.Validation("El monto pagado debe ser mayor a cero")
	}
	if err := validarDesglose(req); err != nil {
		return nil, err
	}

	var cobro model.Cobro
	txErr := runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventaRepo.FindForUpdateTx(tx, userID, ventaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.NotFound("Venta")
			}
			return err
		}

		pendiente := ledger.Pendiente(venta)
		if !pendiente.IsPositive() {
			return ledger.PaymentExceedsDebt(req.MontoPagado.StringFixed(2), pendiente.StringFixed(2))
		}

		estado := model.CobroParcial
		if req.MontoPagado.GreaterThanOrEqual(pendiente) {
			estado = model.CobroTotal
		}

		if err := ledger.ApplyPayment(venta, req.MontoPagado); err != nil {
			return err
		}
		if err := s.ventaRepo.SaveTx(tx, venta); err != nil {
			return err
		}

		cobro = model.Cobro{
			UserID:            userID,
			ColaboradorID:     venta.ColaboradorID,
			VentaID:           ventaID,
			MontoPagado:       req.MontoPagado,
			EstadoPago:        estado,
			Yape:              req.Yape,
			Efectivo:          req.Efectivo,
			GastosImprevistos: req.GastosImprevistos,
			FechaPago:         parseFecha(req.FechaPago),
		}
		return s.repo.CreateTx(tx, &cobro)
	})
	if txErr != nil {
		return nil, txErr
	}
	return cobroToResponse(&cobro), nil
}

// validarDesglose ensures the per-method breakdown, when any part is sent,
// adds up exactly to the total paid.
func validarDesglose(req dto.CrearCobroRequest) error {
	suma := req.Yape.Add(req.Efectivo).Add(req.GastosImprevistos)
	if suma.IsZero() {
		return nil
	}
	if !suma.Equal(req.MontoPagado) {
		return ledger.Validationf(
			"El desglose por metodo (%s) no coincide con el monto pagado (%s)",
			suma.StringFixed(2), req.MontoPagado.StringFixed(2),
		)
	}
	return nil
}

func (s *cobroService) Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.CobroResponse, error) {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Cobro")
		}
		return nil, err
	}
	return cobroToResponse(c), nil
}

func (s *cobroService) Listar(ctx context.Context, userID string, filter dto.CobroFilter) (*dto.CobroListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	cobros, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CobroResponse, 0, len(cobros))
	for i := range cobros {
		data = append(data, *cobroToResponse(&cobros[i]))
	}
	return &dto.CobroListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *cobroService) Deuda(ctx context.Context, userID string, ventaID uuid.UUID) (*dto.DeudaResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, userID, ventaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Venta")
		}
		return nil, err
	}
	pendiente := ledger.Pendiente(venta)
	if pendiente.IsNegative() {
		pendiente = decimal.Zero
	}
	return &dto.DeudaResponse{
		VentaID:        venta.ID.String(),
		MontoTotal:     venta.MontoTotal,
		TotalPagado:    venta.CantidadPagada,
		DeudaPendiente: pendiente,
		EstadoPago:     venta.EstadoPago,
	}, nil
}

// Eliminar reverses the payment on the venta and removes the cobro in the
// same transaction; the debt ledger never observes a half-applied state.
func (s *cobroService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	cobro, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.NotFound("Cobro")
		}
		return err
	}

	return runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventaRepo.FindForUpdateTx(tx, userID, cobro.VentaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Venta already gone; just drop the cobro.
				return s.repo.DeleteTx(tx, userID, id)
			}
			return err
		}

		ledger.ReversePayment(venta, cobro.MontoPagado)
		if err := s.ventaRepo.SaveTx(tx, venta); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, userID, id)
	})
}

func cobroToResponse(c *model.Cobro) *dto.CobroResponse {
	colaborador := ""
	if c.Colaborador != nil {
		colaborador = c.Colaborador.Nombre
	}
	resp := &dto.CobroResponse{
		ID:                c.ID.String(),
		VentaID:           c.VentaID.String(),
		Colaborador:       colaborador,
		MontoPagado:       c.MontoPagado,
		EstadoPago:        c.EstadoPago,
		Yape:              c.Yape,
		Efectivo:          c.Efectivo,
		GastosImprevistos: c.GastosImprevistos,
		FechaPago:         c.FechaPago.Format(fechaLayout),
	}
	if c.Venta != nil {
		resp.Venta = ventaToResponse(c.Venta)
	}
	return resp
}
