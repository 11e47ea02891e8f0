package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
	"github.com/jonathanEDR/gestorappb/internal/model"
	"github.com/jonathanEDR/gestorappb/internal/repository"
)

type VentaService interface {
	Registrar(ctx context.Context, userID string, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, userID string, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Resumen(ctx context.Context, userID string, filter dto.VentaFilter) (*dto.ResumenVentasResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error

	// EliminarPorColaborador deletes every venta of a collaborator, restoring
	// stock per sale. It returns how many ventas were removed.
	EliminarPorColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int, error)
}

type ventaService struct {
	repo            repository.VentaRepository
	productoRepo    repository.ProductoRepository
	colaboradorRepo repository.ColaboradorRepository
	devolucionRepo  repository.DevolucionRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	colaboradorRepo repository.ColaboradorRepository,
	devolucionRepo repository.DevolucionRepository,
) VentaService {
	return &ventaService{
		repo:            repo,
		productoRepo:    productoRepo,
		colaboradorRepo: colaboradorRepo,
		devolucionRepo:  devolucionRepo,
	}
}

// ── Registrar ─────────────────────────────────────────────────────────────────
// Full ACID transaction:
//   1. Validate colaborador (pre-flight, outside TX)
//   2. BEGIN TX: lock every distinct product in deterministic order
//   3. Check stock for ALL lines before mutating anything; a multi-line sale
//      is rejected whole, never partially applied
//   4. Create venta + detalles, apply optional up-front payment
//   5. Decrement stock per product, COMMIT

func (s *ventaService) Registrar(ctx context.Context, userID string, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	colabID, err := uuid.Parse(req.ColaboradorID)
	if err != nil {
		return nil, ledger.Validation("colaborador_id invalido")
	}
	colaborador, err := s.colaboradorRepo.FindByID(ctx, userID, colabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Colaborador")
		}
		return nil, err
	}

	// Aggregate quantities per product so a sale listing the same product
	// twice is checked against its combined quantity.
	cantidadPorProducto := make(map[uuid.UUID]int)
	orden := make([]uuid.UUID, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		pid, err := uuid.Parse(d.ProductoID)
		if err != nil {
			return nil, ledger.Validation("producto_id invalido")
		}
		if _, visto := cantidadPorProducto[pid]; !visto {
			orden = append(orden, pid)
		}
		cantidadPorProducto[pid] += d.Cantidad
	}
	// Deterministic lock order so two concurrent multi-product sales cannot
	// deadlock each other.
	sort.Slice(orden, func(i, j int) bool { return orden[i].String() < orden[j].String() })

	var venta model.Venta
	productosPorID := make(map[uuid.UUID]*model.Producto, len(orden))

	txErr := runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Lock and check every line before touching any counter.
		for _, pid := range orden {
			p, err := s.productoRepo.FindForUpdateTx(tx, userID, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ledger.NotFound("Producto")
				}
				return err
			}
			if err := ledger.CheckDisponible(p, cantidadPorProducto[pid]); err != nil {
				return err
			}
			productosPorID[pid] = p
		}

		subtotal := decimal.Zero
		detalles := make([]model.DetalleVenta, 0, len(req.Detalles))
		for _, d := range req.Detalles {
			pid, _ := uuid.Parse(d.ProductoID)
			p := productosPorID[pid]
			lineSubtotal := p.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
			subtotal = subtotal.Add(lineSubtotal)
			detalles = append(detalles, model.DetalleVenta{
				ProductoID:     pid,
				Cantidad:       d.Cantidad,
				PrecioUnitario: p.Precio,
				Subtotal:       lineSubtotal,
			})
		}

		venta = model.Venta{
			UserID:        userID,
			ColaboradorID: colabID,
			Subtotal:      subtotal,
			MontoTotal:    subtotal,
			EstadoPago:    model.EstadoPendiente,
			FechaVenta:    parseFecha(req.FechaVenta),
			Detalles:      detalles,
		}
		if req.CantidadPagada.IsPositive() {
			if err := ledger.ApplyPayment(&venta, req.CantidadPagada); err != nil {
				return err
			}
		}

		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, pid := range orden {
			p := productosPorID[pid]
			if err := ledger.IncreaseSold(p, cantidadPorProducto[pid]); err != nil {
				return err
			}
			if err := s.productoRepo.SaveTx(tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := ventaToResponse(&venta)
	resp.Colaborador = colaborador.Nombre
	for i := range venta.Detalles {
		if p, ok := productosPorID[venta.Detalles[i].ProductoID]; ok {
			resp.Detalles[i].Producto = p.Nombre
		}
	}
	return resp, nil
}

func (s *ventaService) Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Venta")
		}
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) Listar(ctx context.Context, userID string, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	ventas, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *ventaService) Resumen(ctx context.Context, userID string, filter dto.VentaFilter) (*dto.ResumenVentasResponse, error) {
	resumen, err := s.repo.Resumen(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenVentasResponse{Resumen: resumen}, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Deleting a venta restores the stock of every line. A venta with recorded
// devoluciones cannot be deleted until those are removed first; otherwise the
// restore would double-count units already returned.

func (s *ventaService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	return runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.eliminarVentaTx(tx, userID, id)
	})
}

// EliminarPorColaborador removes all of a collaborator's ventas in one
// transaction; a single venta with devoluciones aborts the whole batch.
func (s *ventaService) EliminarPorColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int, error) {
	if _, err := s.colaboradorRepo.FindByID(ctx, userID, colaboradorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ledger.NotFound("Colaborador")
		}
		return 0, err
	}

	eliminadas := 0
	txErr := runTxRetry(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		eliminadas = 0
		ventas, err := s.repo.ListByColaboradorTx(tx, userID, colaboradorID)
		if err != nil {
			return err
		}
		for i := range ventas {
			if err := s.eliminarVentaTx(tx, userID, ventas[i].ID); err != nil {
				return err
			}
			eliminadas++
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return eliminadas, nil
}

func (s *ventaService) eliminarVentaTx(tx *gorm.DB, userID string, id uuid.UUID) error {
	venta, err := s.repo.FindForUpdateTx(tx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.NotFound("Venta")
		}
		return err
	}

	n, err := s.devolucionRepo.CountByVentaTx(tx, userID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ledger.SaleHasReturns(int(n))
	}

	for _, d := range venta.Detalles {
		p, err := s.productoRepo.FindForUpdateTx(tx, userID, d.ProductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Product deleted after the sale; nothing to restore.
				continue
			}
			return err
		}
		ledger.DecreaseSold(p, d.Cantidad)
		if err := s.productoRepo.SaveTx(tx, p); err != nil {
			return err
		}
	}

	return s.repo.DeleteTx(tx, userID, id)
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	colaborador := ""
	if v.Colaborador != nil {
		colaborador = v.Colaborador.Nombre
	}
	pendiente := ledger.Pendiente(v)
	if pendiente.IsNegative() {
		pendiente = decimal.Zero
	}
	return &dto.VentaResponse{
		ID:               v.ID.String(),
		ColaboradorID:    v.ColaboradorID.String(),
		Colaborador:      colaborador,
		Detalles:         detalles,
		MontoTotal:       v.MontoTotal,
		CantidadPagada:   v.CantidadPagada,
		DeudaPendiente:   pendiente,
		CantidadDevuelta: v.CantidadDevuelta,
		EstadoPago:       v.EstadoPago,
		FechaVenta:       v.FechaVenta.Format(fechaLayout),
	}
}
