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

type GastoService interface {
	Crear(ctx context.Context, userID string, req dto.CrearGastoRequest) (*dto.GastoResponse, error)
	Listar(ctx context.Context, userID string) ([]dto.GastoResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Crear(ctx context.Context, userID string, req dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	if req.CostoUnidad.IsNegative() {
		return nil, ledger.Validation("El costo por unidad no puede ser negativo")
	}

	g := &model.Gasto{
		UserID:      userID,
		TipoDeGasto: req.TipoDeGasto,
		Area:        req.Area,
		Descripcion: req.Descripcion,
		CostoUnidad: req.CostoUnidad,
		Cantidad:    req.Cantidad,
		MontoTotal:  req.CostoUnidad.Mul(decimal.NewFromInt(int64(req.Cantidad))),
		FechaGasto:  parseFecha(req.Fecha),
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return gastoToResponse(g), nil
}

func (s *gastoService) Listar(ctx context.Context, userID string) ([]dto.GastoResponse, error) {
	gastos, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, *gastoToResponse(&gastos[i]))
	}
	return out, nil
}

func (s *gastoService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.NotFound("Gasto")
	}
	return err
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID.String(),
		TipoDeGasto: g.TipoDeGasto,
		Area:        g.Area,
		Descripcion: g.Descripcion,
		CostoUnidad: g.CostoUnidad,
		Cantidad:    g.Cantidad,
		MontoTotal:  g.MontoTotal,
		FechaGasto:  g.FechaGasto.Format(fechaLayout),
	}
}
