package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/model"
)

type CobroRepository interface {
	CreateTx(tx *gorm.DB, c *model.Cobro) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Cobro, error)
	List(ctx context.Context, userID string, filter dto.CobroFilter) ([]model.Cobro, int64, error)
	DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error
	CountByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type cobroRepo struct{ db *gorm.DB }

func NewCobroRepository(db *gorm.DB) CobroRepository { return &cobroRepo{db: db} }

func (r *cobroRepo) DB() *gorm.DB { return r.db }

func (r *cobroRepo) CreateTx(tx *gorm.DB, c *model.Cobro) error {
	return tx.Create(c).Error
}

func (r *cobroRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Cobro, error) {
	var c model.Cobro
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Preload("Venta").
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error
	return &c, err
}

func (r *cobroRepo) List(ctx context.Context, userID string, filter dto.CobroFilter) ([]model.Cobro, int64, error) {
	var cobros []model.Cobro
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cobro{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Colaborador").
		Order("fecha_pago DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&cobros).Error
	return cobros, total, err
}

func (r *cobroRepo) DeleteTx(tx *gorm.DB, userID string, id uuid.UUID) error {
	res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Cobro{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cobroRepo) CountByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cobro{}).
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Count(&n).Error
	return n, err
}
