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

type ColaboradorService interface {
	Crear(ctx context.Context, userID string, req dto.CrearColaboradorRequest) (*dto.ColaboradorResponse, error)
	Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.ColaboradorResponse, error)
	Listar(ctx context.Context, userID string) ([]dto.ColaboradorResponse, error)
	Actualizar(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarColaboradorRequest) (*dto.ColaboradorResponse, error)
	Eliminar(ctx context.Context, userID string, id uuid.UUID) error
}

type colaboradorService struct {
	repo         repository.ColaboradorRepository
	ventaRepo    repository.VentaRepository
	cobroRepo    repository.CobroRepository
	personalRepo repository.PersonalRepository
}

func NewColaboradorService(
	repo repository.ColaboradorRepository,
	ventaRepo repository.VentaRepository,
	cobroRepo repository.CobroRepository,
	personalRepo repository.PersonalRepository,
) ColaboradorService {
	return &colaboradorService{
		repo:         repo,
		ventaRepo:    ventaRepo,
		cobroRepo:    cobroRepo,
		personalRepo: personalRepo,
	}
}

func (s *colaboradorService) Crear(ctx context.Context, userID string, req dto.CrearColaboradorRequest) (*dto.ColaboradorResponse, error) {
	if _, err := s.repo.FindByNombre(ctx, userID, req.Nombre); err == nil {
		return nil, ledger.Validationf("Ya existe un colaborador con el nombre %s", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Colaborador{
		UserID:        userID,
		Nombre:        req.Nombre,
		Telefono:      req.Telefono,
		Email:         req.Email,
		Departamento:  req.Departamento,
		Sueldo:        req.Sueldo,
		FechaRegistro: parseFecha(nil),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return colaboradorToResponse(c), nil
}

func (s *colaboradorService) Obtener(ctx context.Context, userID string, id uuid.UUID) (*dto.ColaboradorResponse, error) {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Colaborador")
		}
		return nil, err
	}
	return colaboradorToResponse(c), nil
}

func (s *colaboradorService) Listar(ctx context.Context, userID string) ([]dto.ColaboradorResponse, error) {
	colaboradores, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColaboradorResponse, 0, len(colaboradores))
	for i := range colaboradores {
		out = append(out, *colaboradorToResponse(&colaboradores[i]))
	}
	return out, nil
}

func (s *colaboradorService) Actualizar(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Colaborador")
		}
		return nil, err
	}

	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Departamento != nil {
		c.Departamento = *req.Departamento
	}
	if req.Sueldo != nil {
		if req.Sueldo.IsNegative() {
			return nil, ledger.Validation("El sueldo no puede ser negativo")
		}
		c.Sueldo = *req.Sueldo
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return colaboradorToResponse(c), nil
}

// Eliminar refuses to delete a collaborator while any venta, cobro or
// registro de gestion still references it. The check happens here, once,
// instead of relying on each caller to remember it.
func (s *colaboradorService) Eliminar(ctx context.Context, userID string, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.NotFound("Colaborador")
		}
		return err
	}

	ventas, err := s.ventaRepo.CountByColaborador(ctx, userID, id)
	if err != nil {
		return err
	}
	cobros, err := s.cobroRepo.CountByColaborador(ctx, userID, id)
	if err != nil {
		return err
	}
	gestiones, err := s.personalRepo.CountGestionByColaborador(ctx, userID, id)
	if err != nil {
		return err
	}
	if ventas > 0 || cobros > 0 || gestiones > 0 {
		return ledger.CollaboratorHasSales(c.Nombre)
	}

	return s.repo.Delete(ctx, userID, id)
}

func colaboradorToResponse(c *model.Colaborador) *dto.ColaboradorResponse {
	return &dto.ColaboradorResponse{
		ID:            c.ID.String(),
		Nombre:        c.Nombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Departamento:  c.Departamento,
		Sueldo:        c.Sueldo,
		FechaRegistro: c.FechaRegistro.Format(fechaLayout),
	}
}
