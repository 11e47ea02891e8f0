package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/model"
)

type ColaboradorRepository interface {
	Create(ctx context.Context, c *model.Colaborador) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Colaborador, error)
	FindByNombre(ctx context.Context, userID, nombre string) (*model.Colaborador, error)
	List(ctx context.Context, userID string) ([]model.Colaborador, error)
	Update(ctx context.Context, c *model.Colaborador) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type colaboradorRepo struct{ db *gorm.DB }

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository { return &colaboradorRepo{db: db} }

func (r *colaboradorRepo) Create(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colaboradorRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c).Error
	return &c, err
}

func (r *colaboradorRepo) FindByNombre(ctx context.Context, userID, nombre string) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).Where("user_id = ? AND LOWER(nombre) = LOWER(?)", userID, nombre).First(&c).Error
	return &c, err
}

func (r *colaboradorRepo) List(ctx context.Context, userID string) ([]model.Colaborador, error) {
	var colaboradores []model.Colaborador
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("nombre ASC").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *colaboradorRepo) Update(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colaboradorRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Colaborador{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
