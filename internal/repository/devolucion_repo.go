package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/model"
)

type DevolucionRepository interface {
	CreateTx(tx *gorm.DB, d *model.Devolucion) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Devolucion, error)
	List(ctx context.Context, userID string, filter dto.DevolucionFilter) ([]model.Devolucion, int64, error)
	DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error

	// CountByVentaTx guards sale deletion; it runs inside the deletion tx so
	// a concurrent return creation cannot slip between check and delete.
	CountByVentaTx(tx *gorm.DB, userID string, ventaID uuid.UUID) (int64, error)

	// SumCantidadTx totals units already returned for a (venta, producto)
	// pair across all devoluciones.
	SumCantidadTx(tx *gorm.DB, userID string, ventaID, productoID uuid.UUID) (int, error)

	DB() *gorm.DB
}

type devolucionRepo struct{ db *gorm.DB }

func NewDevolucionRepository(db *gorm.DB) DevolucionRepository { return &devolucionRepo{db: db} }

func (r *devolucionRepo) DB() *gorm.DB { return r.db }

func (r *devolucionRepo) CreateTx(tx *gorm.DB, d *model.Devolucion) error {
	return tx.Create(d).Error
}

func (r *devolucionRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Devolucion, error) {
	var d model.Devolucion
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Venta.Colaborador").
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	return &d, err
}

func (r *devolucionRepo) List(ctx context.Context, userID string, filter dto.DevolucionFilter) ([]model.Devolucion, int64, error) {
	var devoluciones []model.Devolucion
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Devolucion{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Producto").Preload("Venta.Colaborador").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&devoluciones).Error
	return devoluciones, total, err
}

func (r *devolucionRepo) DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error {
	res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Devolucion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *devolucionRepo) CountByVentaTx(tx *gorm.DB, userID string, ventaID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.Devolucion{}).
		Where("user_id = ? AND venta_id = ?", userID, ventaID).
		Count(&n).Error
	return n, err
}

func (r *devolucionRepo) SumCantidadTx(tx *gorm.DB, userID string, ventaID, productoID uuid.UUID) (int, error) {
	var total int
	err := tx.Model(&model.Devolucion{}).
		Where("user_id = ? AND venta_id = ? AND producto_id = ?", userID, ventaID, productoID).
		Select("COALESCE(SUM(cantidad_devuelta), 0)").
		Scan(&total).Error
	return total, err
}
