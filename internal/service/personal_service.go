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

type PersonalService interface {
	CrearGestion(ctx context.Context, userID string, req dto.CrearGestionRequest) (*dto.GestionResponse, error)
	ListarGestion(ctx context.Context, userID string) ([]dto.GestionResponse, error)
	EliminarGestion(ctx context.Context, userID string, id uuid.UUID) error

	CrearPago(ctx context.Context, userID string, req dto.CrearPagoRealizadoRequest) (*dto.PagoRealizadoResponse, error)
	ListarPagos(ctx context.Context, userID string) ([]dto.PagoRealizadoResponse, error)
	ListarPagosPorColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]dto.PagoRealizadoResponse, error)
	ActualizarPago(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarPagoRealizadoRequest) (*dto.PagoRealizadoResponse, error)
	EliminarPago(ctx context.Context, userID string, id uuid.UUID) error

	// ResumenPlanilla computes the payroll ledger for one collaborator:
	// generado = sum(monto + faltante - adelanto) over gestion entries,
	// pagado = sum of settlements, pendiente = max(0, generado - pagado).
	ResumenPlanilla(ctx context.Context, userID string, colaboradorID uuid.UUID) (*dto.ResumenPlanillaResponse, error)
}

type personalService struct {
	repo            repository.PersonalRepository
	colaboradorRepo repository.ColaboradorRepository
}

func NewPersonalService(repo repository.PersonalRepository, colaboradorRepo repository.ColaboradorRepository) PersonalService {
	return &personalService{repo: repo, colaboradorRepo: colaboradorRepo}
}

// ── Gestión personal ──────────────────────────────────────────────────────────

func (s *personalService) CrearGestion(ctx context.Context, userID string, req dto.CrearGestionRequest) (*dto.GestionResponse, error) {
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

	fecha := parseFecha(&req.FechaDeGestion)
	dias := req.DiasLaborados
	if dias == 0 {
		dias = 30
	}

	g := &model.GestionPersonal{
		UserID:         userID,
		ColaboradorID:  colabID,
		FechaDeGestion: fecha,
		Descripcion:    req.Descripcion,
		Monto:          req.Monto,
		Faltante:       req.Faltante,
		Adelanto:       req.Adelanto,
		PagoDiario:     req.PagoDiario,
		DiasLaborados:  dias,
	}
	if err := s.repo.CreateGestion(ctx, g); err != nil {
		return nil, err
	}
	g.Colaborador = colaborador
	return gestionToResponse(g), nil
}

func (s *personalService) ListarGestion(ctx context.Context, userID string) ([]dto.GestionResponse, error) {
	registros, err := s.repo.ListGestion(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GestionResponse, 0, len(registros))
	for i := range registros {
		out = append(out, *gestionToResponse(&registros[i]))
	}
	return out, nil
}

func (s *personalService) EliminarGestion(ctx context.Context, userID string, id uuid.UUID) error {
	err := s.repo.DeleteGestion(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.NotFound("Registro de gestion")
	}
	return err
}

// ── Pagos realizados ──────────────────────────────────────────────────────────

func (s *personalService) CrearPago(ctx context.Context, userID string, req dto.CrearPagoRealizadoRequest) (*dto.PagoRealizadoResponse, error) {
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
	if !req.MontoTotal.IsPositive() {
		return nil, ledger.Validation("El monto del pago debe ser mayor a cero")
	}

	// Every referenced gestion entry must exist, belong to the tenant and to
	// the same collaborator.
	registros := make([]model.GestionPersonal, 0, len(req.Registros))
	for _, idStr := range req.Registros {
		gid, err := uuid.Parse(idStr)
		if err != nil {
			return nil, ledger.Validation("registro invalido")
		}
		g, err := s.repo.FindGestionByID(ctx, userID, gid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ledger.NotFound("Registro de gestion")
			}
			return nil, err
		}
		if g.ColaboradorID != colabID {
			return nil, ledger.Validation("El registro de gestion pertenece a otro colaborador")
		}
		registros = append(registros, *g)
	}

	fechaPago := parseFecha(req.FechaPago)
	metodo := req.MetodoPago
	if metodo == "" {
		metodo = model.MetodoEfectivo
	}
	estado := req.Estado
	if estado == "" {
		estado = "pagado"
	}

	p := &model.PagoRealizado{
		UserID:        userID,
		ColaboradorID: colabID,
		FechaPago:     fechaPago,
		MontoTotal:    req.MontoTotal,
		MetodoPago:    metodo,
		Observaciones: req.Observaciones,
		Estado:        estado,
		Registros:     registros,
	}
	if req.PeriodoInicio != nil {
		t := parseFecha(req.PeriodoInicio)
		p.PeriodoInicio = &t
	}
	if req.PeriodoFin != nil {
		t := parseFecha(req.PeriodoFin)
		p.PeriodoFin = &t
	}

	if err := s.repo.CreatePago(ctx, p); err != nil {
		return nil, err
	}
	p.Colaborador = colaborador
	return pagoToResponse(p), nil
}

func (s *personalService) ListarPagos(ctx context.Context, userID string) ([]dto.PagoRealizadoResponse, error) {
	pagos, err := s.repo.ListPagos(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoRealizadoResponse, 0, len(pagos))
	for i := range pagos {
		out = append(out, *pagoToResponse(&pagos[i]))
	}
	return out, nil
}

func (s *personalService) ListarPagosPorColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]dto.PagoRealizadoResponse, error) {
	pagos, err := s.repo.ListPagosByColaborador(ctx, userID, colaboradorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoRealizadoResponse, 0, len(pagos))
	for i := range pagos {
		out = append(out, *pagoToResponse(&pagos[i]))
	}
	return out, nil
}

func (s *personalService) ActualizarPago(ctx context.Context, userID string, id uuid.UUID, req dto.ActualizarPagoRealizadoRequest) (*dto.PagoRealizadoResponse, error) {
	p, err := s.repo.FindPagoByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Pago")
		}
		return nil, err
	}

	if req.MontoTotal != nil {
		if !req.MontoTotal.IsPositive() {
			return nil, ledger.Validation("El monto del pago debe ser mayor a cero")
		}
		p.MontoTotal = *req.MontoTotal
	}
	if req.MetodoPago != nil {
		p.MetodoPago = *req.MetodoPago
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if req.Observaciones != nil {
		p.Observaciones = *req.Observaciones
	}

	if err := s.repo.UpdatePago(ctx, p); err != nil {
		return nil, err
	}
	return pagoToResponse(p), nil
}

func (s *personalService) EliminarPago(ctx context.Context, userID string, id uuid.UUID) error {
	err := s.repo.DeletePago(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.NotFound("Pago")
	}
	return err
}

func (s *personalService) ResumenPlanilla(ctx context.Context, userID string, colaboradorID uuid.UUID) (*dto.ResumenPlanillaResponse, error) {
	colaborador, err := s.colaboradorRepo.FindByID(ctx, userID, colaboradorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NotFound("Colaborador")
		}
		return nil, err
	}

	registros, err := s.repo.ListGestionByColaborador(ctx, userID, colaboradorID)
	if err != nil {
		return nil, err
	}
	generado := decimal.Zero
	for i := range registros {
		generado = generado.Add(registros[i].Monto).
			Add(registros[i].Faltante).
			Sub(registros[i].Adelanto)
	}

	pagado, err := s.repo.SumPagosByColaborador(ctx, userID, colaboradorID)
	if err != nil {
		return nil, err
	}

	pendiente := generado.Sub(pagado)
	if pendiente.IsNegative() {
		pendiente = decimal.Zero
	}

	return &dto.ResumenPlanillaResponse{
		ColaboradorID: colaboradorID.String(),
		Colaborador:   colaborador.Nombre,
		TotalGenerado: generado,
		TotalPagado:   pagado,
		PendientePago: pendiente,
	}, nil
}

func gestionToResponse(g *model.GestionPersonal) *dto.GestionResponse {
	nombre, departamento := "", ""
	if g.Colaborador != nil {
		nombre = g.Colaborador.Nombre
		departamento = g.Colaborador.Departamento
	}
	return &dto.GestionResponse{
		ID:             g.ID.String(),
		ColaboradorID:  g.ColaboradorID.String(),
		Colaborador:    nombre,
		Departamento:   departamento,
		FechaDeGestion: g.FechaDeGestion.Format(fechaLayout),
		Descripcion:    g.Descripcion,
		Monto:          g.Monto,
		Faltante:       g.Faltante,
		Adelanto:       g.Adelanto,
		PagoDiario:     g.PagoDiario,
		DiasLaborados:  g.DiasLaborados,
	}
}

func pagoToResponse(p *model.PagoRealizado) *dto.PagoRealizadoResponse {
	nombre := ""
	if p.Colaborador != nil {
		nombre = p.Colaborador.Nombre
	}
	resp := &dto.PagoRealizadoResponse{
		ID:            p.ID.String(),
		ColaboradorID: p.ColaboradorID.String(),
		Colaborador:   nombre,
		MontoTotal:    p.MontoTotal,
		MetodoPago:    p.MetodoPago,
		FechaPago:     p.FechaPago.Format(fechaLayout),
		Observaciones: p.Observaciones,
		Estado:        p.Estado,
	}
	if p.PeriodoInicio != nil {
		resp.PeriodoInicio = p.PeriodoInicio.Format(fechaLayout)
	}
	if p.PeriodoFin != nil {
		resp.PeriodoFin = p.PeriodoFin.Format(fechaLayout)
	}
	return resp
}
