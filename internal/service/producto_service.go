package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
	"github.com/jonathanEDR/gestorappb/internal/model"
	"github.com/jonathanEDR/gestorappb/internal/repository"
)

type ProductoService interface {
	Crear(ctx context.Context, userID string, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, userID string, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, userID string, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if _, err := s.repo.FindByNombre(ctx, userID, req.Nombre); err == nil {
		return nil, ledger.Validationf("Ya existe un producto con el nombre %s", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Producto{
		UserID:           userID,
		Nombre:           req.Nombre,
		Precio:           req.Precio,
		Cantidad:         req.Cantidad,
		CantidadVendida:  0,
		CantidadRestante: req.Cantidad,
		FechaProducto:    parseFecha(req.Fecha),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Producto")
		}
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, userID string, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Actualizar permits renaming, repricing and restocking. Cantidad is the new
// lifetime total; it may never drop below the units already sold, and the
// remaining counter is recomputed from the pair.
func (s *productoService) Actualizar(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Producto")
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != p.Nombre {
		if _, err := s.repo.FindByNombre(ctx, userID, *req.Nombre); err == nil {
			return nil, ledger.Validationf("Ya existe un producto con el nombre %s", *req.Nombre)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, ledger.Validation("El precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Cantidad != nil {
		if *req.Cantidad < p.CantidadVendida {
			return nil, ledger.Validationf(
				"La cantidad total (%d) no puede ser menor a la cantidad ya vendida (%d)",
				*req.Cantidad, p.CantidadVendida,
			)
		}
		p.Cantidad = *req.Cantidad
		p.CantidadRestante = p.Cantidad - p.CantidadVendida
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.NotFound("Producto")
	}
	return err
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID.String(),
		Nombre:           p.Nombre,
		Precio:           p.Precio,
		Cantidad:         p.Cantidad,
		CantidadVendida:  p.CantidadVendida,
		CantidadRestante: p.CantidadRestante,
		FechaProducto:    p.FechaProducto.Format(fechaLayout),
	}
}
