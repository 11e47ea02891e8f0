package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/model"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Venta, error)
	FindForUpdateTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Venta, error)
	SaveTx(tx *gorm.DB, v *model.Venta) error
	DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error
	List(ctx context.Context, userID string, filter dto.VentaFilter) ([]model.Venta, int64, error)
	ListByColaboradorTx(tx *gorm.DB, userID string, colaboradorID uuid.UUID) ([]model.Venta, error)
	CountByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error)

	// Resumen aggregates MontoTotal per collaborator name over the filter's
	// date window.
	Resumen(ctx context.Context, userID string, filter dto.VentaFilter) (map[string]decimal.Decimal, error)

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Preload("Detalles.Producto").
		Where("id = ? AND user_id = ?", id, userID).
		First(&v).Error
	return &v, err
}

// FindForUpdateTx locks the venta row (not its relations) so concurrent
// cobros/devoluciones against the same sale serialize. Detalles are loaded
// without the lock; they are immutable after creation.
func (r *ventaRepo) FindForUpdateTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&v).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("venta_id = ?", v.ID).Find(&v.Detalles).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) SaveTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Omit("Detalles", "Colaborador").Save(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error {
	if err := tx.Where("venta_id = ?", id).Delete(&model.DetalleVenta{}).Error; err != nil {
		return err
	}
	res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Venta{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ventaRepo) List(ctx context.Context, userID string, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{}).Where("user_id = ?", userID)
	if filter.Estado != "" {
		q = q.Where("estado_pago = ?", filter.Estado)
	}
	if desde, hasta, ok := resolverRango(filter); ok {
		q = q.Where("fecha_venta >= ? AND fecha_venta <= ?", desde, hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Colaborador").Preload("Detalles.Producto").
		Order("fecha_venta DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

// ListByColaboradorTx reads through the live transaction so the cascade
// deletion sees a snapshot consistent with the rows it is about to lock.
func (r *ventaRepo) ListByColaboradorTx(tx *gorm.DB, userID string, colaboradorID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := tx.
		Preload("Detalles").
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) CountByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Count(&n).Error
	return n, err
}

func (r *ventaRepo) Resumen(ctx context.Context, userID string, filter dto.VentaFilter) (map[string]decimal.Decimal, error) {
	type fila struct {
		Nombre string
		Total  decimal.Decimal
	}
	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("colaboradores.nombre AS nombre, COALESCE(SUM(ventas.monto_total), 0) AS total").
		Joins("JOIN colaboradores ON colaboradores.id = ventas.colaborador_id").
		Where("ventas.user_id = ?", userID).
		Group("colaboradores.nombre")
	if desde, hasta, ok := resolverRango(filter); ok {
		q = q.Where("ventas.fecha_venta >= ? AND ventas.fecha_venta <= ?", desde, hasta)
	}

	var filas []fila
	if err := q.Scan(&filas).Error; err != nil {
		return nil, err
	}
	resumen := make(map[string]decimal.Decimal, len(filas))
	for _, f := range filas {
		resumen[f.Nombre] = f.Total
	}
	return resumen, nil
}

// resolverRango turns the filter's rango / explicit dates into a UTC window.
// Rango wins over explicit dates; "historical" means no window at all.
func resolverRango(filter dto.VentaFilter) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	switch filter.Rango {
	case "historical":
		return time.Time{}, time.Time{}, false
	case "day":
		desde := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return desde, desde.AddDate(0, 0, 1).Add(-time.Nanosecond), true
	case "week":
		desde := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -int(now.Weekday()))
		return desde, desde.AddDate(0, 0, 7).Add(-time.Nanosecond), true
	case "month":
		desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return desde, desde.AddDate(0, 1, 0).Add(-time.Nanosecond), true
	case "year":
		desde := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return desde, desde.AddDate(1, 0, 0).Add(-time.Nanosecond), true
	}

	if filter.StartDate != "" && filter.EndDate != "" {
		desde, err1 := time.Parse("2006-01-02", filter.StartDate)
		hasta, err2 := time.Parse("2006-01-02", filter.EndDate)
		if err1 == nil && err2 == nil {
			return desde, hasta.AddDate(0, 0, 1).Add(-time.Nanosecond), true
		}
	}
	return time.Time{}, time.Time{}, false
}
