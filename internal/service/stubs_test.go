package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/model"
	"github.com/jonathanEDR/gestorappb/internal/repository"
)

// In-memory repository stubs. DB() returns nil so runTx executes the
// closure directly, without a real transaction.

// ── Producto ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(p *model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.add(p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) FindByNombre(_ context.Context, userID, nombre string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.UserID == userID && strings.EqualFold(p.Nombre, nombre) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, userID string, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) FindForUpdateTx(_ *gorm.DB, userID string, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), userID, id)
}

func (r *stubProductoRepo) SaveTx(_ *gorm.DB, p *model.Producto) error {
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Colaborador ───────────────────────────────────────────────────────────────

type stubColaboradorRepo struct {
	colaboradores map[uuid.UUID]*model.Colaborador
}

func newStubColaboradorRepo() *stubColaboradorRepo {
	return &stubColaboradorRepo{colaboradores: make(map[uuid.UUID]*model.Colaborador)}
}

func (r *stubColaboradorRepo) add(c *model.Colaborador) *model.Colaborador {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.colaboradores[c.ID] = c
	return c
}

func (r *stubColaboradorRepo) Create(_ context.Context, c *model.Colaborador) error {
	r.add(c)
	return nil
}

func (r *stubColaboradorRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Colaborador, error) {
	c, ok := r.colaboradores[id]
	if !ok || c.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubColaboradorRepo) FindByNombre(_ context.Context, userID, nombre string) (*model.Colaborador, error) {
	for _, c := range r.colaboradores {
		if c.UserID == userID && strings.EqualFold(c.Nombre, nombre) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubColaboradorRepo) List(_ context.Context, userID string) ([]model.Colaborador, error) {
	var out []model.Colaborador
	for _, c := range r.colaboradores {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubColaboradorRepo) Update(_ context.Context, c *model.Colaborador) error {
	r.colaboradores[c.ID] = c
	return nil
}

func (r *stubColaboradorRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	c, ok := r.colaboradores[id]
	if !ok || c.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.colaboradores, id)
	return nil
}

var _ repository.ColaboradorRepository = (*stubColaboradorRepo)(nil)

// ── Venta ─────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Detalles {
		if v.Detalles[i].ID == uuid.Nil {
			v.Detalles[i].ID = uuid.New()
		}
		v.Detalles[i].VentaID = v.ID
	}
	cp := *v
	r.ventas[v.ID] = &cp
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok || v.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *stubVentaRepo) FindForUpdateTx(_ *gorm.DB, userID string, id uuid.UUID) (*model.Venta, error) {
	return r.FindByID(context.Background(), userID, id)
}

func (r *stubVentaRepo) SaveTx(_ *gorm.DB, v *model.Venta) error {
	existing, ok := r.ventas[v.ID]
	if ok {
		// Detalles are immutable; keep the stored ones.
		v.Detalles = existing.Detalles
	}
	cp := *v
	r.ventas[v.ID] = &cp
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, userID string, id uuid.UUID) error {
	v, ok := r.ventas[id]
	if !ok || v.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) List(_ context.Context, userID string, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListByColaboradorTx(_ *gorm.DB, userID string, colaboradorID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.UserID == userID && v.ColaboradorID == colaboradorID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) CountByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.ventas {
		if v.UserID == userID && v.ColaboradorID == colaboradorID {
			n++
		}
	}
	return n, nil
}

func (r *stubVentaRepo) Resumen(_ context.Context, userID string, _ dto.VentaFilter) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{}, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Cobro ─────────────────────────────────────────────────────────────────────

type stubCobroRepo struct {
	cobros map[uuid.UUID]*model.Cobro
}

func newStubCobroRepo() *stubCobroRepo {
	return &stubCobroRepo{cobros: make(map[uuid.UUID]*model.Cobro)}
}

func (r *stubCobroRepo) CreateTx(_ *gorm.DB, c *model.Cobro) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.cobros[c.ID] = &cp
	return nil
}

func (r *stubCobroRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Cobro, error) {
	c, ok := r.cobros[id]
	if !ok || c.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCobroRepo) List(_ context.Context, userID string, _ dto.CobroFilter) ([]model.Cobro, int64, error) {
	var out []model.Cobro
	for _, c := range r.cobros {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCobroRepo) DeleteTx(_ *gorm.DB, userID string, id uuid.UUID) error {
	c, ok := r.cobros[id]
	if !ok || c.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.cobros, id)
	return nil
}

func (r *stubCobroRepo) CountByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.cobros {
		if c.UserID == userID && c.ColaboradorID == colaboradorID {
			n++
		}
	}
	return n, nil
}

func (r *stubCobroRepo) DB() *gorm.DB { return nil }

var _ repository.CobroRepository = (*stubCobroRepo)(nil)

// ── Devolucion ────────────────────────────────────────────────────────────────

type stubDevolucionRepo struct {
	devoluciones map[uuid.UUID]*model.Devolucion
}

func newStubDevolucionRepo() *stubDevolucionRepo {
	return &stubDevolucionRepo{devoluciones: make(map[uuid.UUID]*model.Devolucion)}
}

func (r *stubDevolucionRepo) CreateTx(_ *gorm.DB, d *model.Devolucion) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.devoluciones[d.ID] = &cp
	return nil
}

func (r *stubDevolucionRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Devolucion, error) {
	d, ok := r.devoluciones[id]
	if !ok || d.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubDevolucionRepo) List(_ context.Context, userID string, _ dto.DevolucionFilter) ([]model.Devolucion, int64, error) {
	var out []model.Devolucion
	for _, d := range r.devoluciones {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubDevolucionRepo) DeleteTx(_ *gorm.DB, userID string, id uuid.UUID) error {
	d, ok := r.devoluciones[id]
	if !ok || d.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.devoluciones, id)
	return nil
}

func (r *stubDevolucionRepo) CountByVentaTx(_ *gorm.DB, userID string, ventaID uuid.UUID) (int64, error) {
	var n int64
	for _, d := range r.devoluciones {
		if d.UserID == userID && d.VentaID == ventaID {
			n++
		}
	}
	return n, nil
}

func (r *stubDevolucionRepo) SumCantidadTx(_ *gorm.DB, userID string, ventaID, productoID uuid.UUID) (int, error) {
	total := 0
	for _, d := range r.devoluciones {
		if d.UserID == userID && d.VentaID == ventaID && d.ProductoID == productoID {
			total += d.CantidadDevuelta
		}
	}
	return total, nil
}

func (r *stubDevolucionRepo) DB() *gorm.DB { return nil }

var _ repository.DevolucionRepository = (*stubDevolucionRepo)(nil)

// ── Gasto ─────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos map[uuid.UUID]*model.Gasto
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{gastos: make(map[uuid.UUID]*model.Gasto)}
}

func (r *stubGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	cp := *g
	r.gastos[g.ID] = &cp
	return nil
}

func (r *stubGastoRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Gasto, error) {
	g, ok := r.gastos[id]
	if !ok || g.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *stubGastoRepo) List(_ context.Context, userID string) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) Update(_ context.Context, g *model.Gasto) error {
	cp := *g
	r.gastos[g.ID] = &cp
	return nil
}

func (r *stubGastoRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	g, ok := r.gastos[id]
	if !ok || g.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.gastos, id)
	return nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Personal ──────────────────────────────────────────────────────────────────

type stubPersonalRepo struct {
	gestiones map[uuid.UUID]*model.GestionPersonal
	pagos     map[uuid.UUID]*model.PagoRealizado
}

func newStubPersonalRepo() *stubPersonalRepo {
	return &stubPersonalRepo{
		gestiones: make(map[uuid.UUID]*model.GestionPersonal),
		pagos:     make(map[uuid.UUID]*model.PagoRealizado),
	}
}

func (r *stubPersonalRepo) CreateGestion(_ context.Context, g *model.GestionPersonal) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	cp := *g
	r.gestiones[g.ID] = &cp
	return nil
}

func (r *stubPersonalRepo) FindGestionByID(_ context.Context, userID string, id uuid.UUID) (*model.GestionPersonal, error) {
	g, ok := r.gestiones[id]
	if !ok || g.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *stubPersonalRepo) ListGestion(_ context.Context, userID string) ([]model.GestionPersonal, error) {
	var out []model.GestionPersonal
	for _, g := range r.gestiones {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubPersonalRepo) ListGestionByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) ([]model.GestionPersonal, error) {
	var out []model.GestionPersonal
	for _, g := range r.gestiones {
		if g.UserID == userID && g.ColaboradorID == colaboradorID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubPersonalRepo) DeleteGestion(_ context.Context, userID string, id uuid.UUID) error {
	g, ok := r.gestiones[id]
	if !ok || g.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.gestiones, id)
	return nil
}

func (r *stubPersonalRepo) CountGestionByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.gestiones {
		if g.UserID == userID && g.ColaboradorID == colaboradorID {
			n++
		}
	}
	return n, nil
}

func (r *stubPersonalRepo) CreatePago(_ context.Context, p *model.PagoRealizado) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.pagos[p.ID] = &cp
	return nil
}

func (r *stubPersonalRepo) FindPagoByID(_ context.Context, userID string, id uuid.UUID) (*model.PagoRealizado, error) {
	p, ok := r.pagos[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPersonalRepo) ListPagos(_ context.Context, userID string) ([]model.PagoRealizado, error) {
	var out []model.PagoRealizado
	for _, p := range r.pagos {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPersonalRepo) ListPagosByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) ([]model.PagoRealizado, error) {
	var out []model.PagoRealizado
	for _, p := range r.pagos {
		if p.UserID == userID && p.ColaboradorID == colaboradorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPersonalRepo) UpdatePago(_ context.Context, p *model.PagoRealizado) error {
	cp := *p
	r.pagos[p.ID] = &cp
	return nil
}

func (r *stubPersonalRepo) DeletePago(_ context.Context, userID string, id uuid.UUID) error {
	p, ok := r.pagos[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.pagos, id)
	return nil
}

func (r *stubPersonalRepo) SumPagosByColaborador(_ context.Context, userID string, colaboradorID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagos {
		if p.UserID == userID && p.ColaboradorID == colaboradorID {
			total = total.Add(p.MontoTotal)
		}
	}
	return total, nil
}

var _ repository.PersonalRepository = (*stubPersonalRepo)(nil)
