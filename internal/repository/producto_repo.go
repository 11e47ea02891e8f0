package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/model"
)

// ProductoRepository is the owner-scoped data access contract for products.
// Every method takes the tenant userID; a wrong-owner id behaves like a
// missing record. Services depend on this interface, not on GORM.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Producto, error)
	FindByNombre(ctx context.Context, userID, nombre string) (*model.Producto, error)
	List(ctx context.Context, userID string, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// Transactional variants — callers must pass the live tx. FindForUpdateTx
	// takes a row lock so concurrent sales of the same product serialize.
	FindForUpdateTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Producto, error)
	SaveTx(tx *gorm.DB, p *model.Producto) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	return &p, err
}

func (r *productoRepo) FindByNombre(ctx context.Context, userID, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("user_id = ? AND LOWER(nombre) = LOWER(?)", userID, nombre).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, userID string, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{}).Where("user_id = ?", userID)
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Producto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) FindForUpdateTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	return &p, err
}

func (r *productoRepo) SaveTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Save(p).Error
}
