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

type DevolucionService interface {
	Crear(ctx context.Context, userID string, req dto.CrearDevolucionRequest) ([]dto.DevolucionResponse, error)
	Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.DevolucionResponse, error)
	Listar(ctx context.Context, userID string, filter dto.DevolucionFilter) (*dto.DevolucionListResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error
}

type devolucionService struct {
	repo         repository.DevolucionRepository
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
}

func NewDevolucionService(
	repo repository.DevolucionRepository,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
) DevolucionService {
	return &devolucionService{repo: repo, ventaRepo: ventaRepo, productoRepo: productoRepo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// One devolucion row per item. Each item may return at most the units the
// venta sold of that product minus what earlier devoluciones already took;
// the venta row lock makes that bound race-free. Per item the stock moves
// back from vendida to restante and the venta's MontoTotal drops by the
// return credit. The credit is bounded by the pending debt, so CantidadPagada
// never ends above MontoTotal.

func (s *devolucionService) Crear(ctx context.Context, userID string, req dto.CrearDevolucionRequest) ([]dto.DevolucionResponse, error) {
	ventaID, err := uuid.Parse(req.VentaID)
	if err != nil {
		return nil, ledger.Validation("venta_id invalido")
	}

	creadas := make([]model.Devolucion, 0, len(req.Items))
	nombres := make(map[uuid.UUID]string)

	txErr := runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		creadas = creadas[:0]

		venta, err := s.ventaRepo.FindForUpdateTx(tx, userID, ventaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.NotFound("Venta")
			}
			return err
		}

		fecha := parseFecha(req.Fecha)
		for _, item := range req.Items {
			pid, err := uuid.Parse(item.ProductoID)
			if err != nil {
				return ledger.Validation("producto_id invalido")
			}

			// The product must be a line of this venta.
			var detalle *model.DetalleVenta
			for i := range venta.Detalles {
				if venta.Detalles[i].ProductoID == pid {
					detalle = &venta.Detalles[i]
					break
				}
			}
			if detalle == nil {
				return ledger.Validation("El producto no pertenece a la venta")
			}

			p, err := s.productoRepo.FindForUpdateTx(tx, userID, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ledger.NotFound("Producto")
				}
				return err
			}
			nombres[pid] = p.Nombre

			yaDevuelta, err := s.repo.SumCantidadTx(tx, userID, ventaID, pid)
			if err != nil {
				return err
			}
			disponible := detalle.Cantidad - yaDevuelta
			if item.Cantidad > disponible {
				return ledger.ReturnExceedsSold(p.Nombre, disponible)
			}

			monto := detalle.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			if item.Monto != nil {
				if item.Monto.IsNegative() {
					return ledger.Validation("El monto de la devolucion no puede ser negativo")
				}
				monto = *item.Monto
			}

			if err := ledger.ApplyReturn(venta, item.Cantidad, monto); err != nil {
				return err
			}
			ledger.DecreaseSold(p, item.Cantidad)
			if err := s.productoRepo.SaveTx(tx, p); err != nil {
				return err
			}

			d := model.Devolucion{
				UserID:           userID,
				VentaID:          ventaID,
				ProductoID:       pid,
				CantidadDevuelta: item.Cantidad,
				MontoDevolucion:  monto,
				Motivo:           item.Motivo,
				FechaDevolucion:  fecha,
			}
			if err := s.repo.CreateTx(tx, &d); err != nil {
				return err
			}
			creadas = append(creadas, d)
		}

		return s.ventaRepo.SaveTx(tx, venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	out := make([]dto.DevolucionResponse, 0, len(creadas))
	for i := range creadas {
		resp := devolucionToResponse(&creadas[i])
		resp.Producto = nombres[creadas[i].ProductoID]
		out = append(out, *resp)
	}
	return out, nil
}

func (s *devolucionService) Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.DevolucionResponse, error) {
	d, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Devolucion")
		}
		return nil, err
	}
	return devolucionToResponse(d), nil
}

func (s *devolucionService) Listar(ctx context.Context, userID string, filter dto.DevolucionFilter) (*dto.DevolucionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	devoluciones, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.DevolucionResponse, 0, len(devoluciones))
	for i := range devoluciones {
		data = append(data, *devolucionToResponse(&devoluciones[i]))
	}
	return &dto.DevolucionListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Eliminar undoes the devolucion exactly: the returned units go back to
// vendida and the venta recovers the credited amount. The stock check still
// applies, so a reversal that would oversell restock bought in the meantime
// is rejected instead of silently corrupting the counters.
func (s *devolucionService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	d, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.NotFound("Devolucion")
		}
		return err
	}

	return runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventaRepo.FindForUpdateTx(tx, userID, d.VentaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		p, perr := s.productoRepo.FindForUpdateTx(tx, userID, d.ProductoID)
		if perr == nil {
			if err := ledger.IncreaseSold(p, d.CantidadDevuelta); err != nil {
				return err
			}
			if err := s.productoRepo.SaveTx(tx, p); err != nil {
				return err
			}
		} else if !errors.Is(perr, gorm.ErrRecordNotFound) {
			return perr
		}

		if venta != nil && err == nil {
			ledger.ReverseReturn(venta, d.CantidadDevuelta, d.MontoDevolucion)
			if err := s.ventaRepo.SaveTx(tx, venta); err != nil {
				return err
			}
		}

		return s.repo.DeleteTx(tx, userID, id)
	})
}

func devolucionToResponse(d *model.Devolucion) *dto.DevolucionResponse {
	resp := &dto.DevolucionResponse{
		ID:              d.ID.String(),
		VentaID:         d.VentaID.String(),
		ProductoID:      d.ProductoID.String(),
		Cantidad:        d.CantidadDevuelta,
		MontoDevolucion: d.MontoDevolucion,
		Motivo:          d.Motivo,
		FechaDevolucion: d.FechaDevolucion.Format(fechaLayout),
	}
	if d.Producto != nil {
		resp.Producto = d.Producto.Nombre
	}
	if d.Venta != nil && d.Venta.Colaborador != nil {
		resp.Colaborador = d.Venta.Colaborador.Nombre
	}
	return resp
}
