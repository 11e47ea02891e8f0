package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/model"
)

// PersonalRepository covers both halves of the payroll ledger: gestion
// entries (owed) and pagos realizados (settled).
type PersonalRepository interface {
	CreateGestion(ctx context.Context, g *model.GestionPersonal) error
	FindGestionByID(ctx context.Context, userID string, id uuid.UUID) (*model.GestionPersonal, error)
	ListGestion(ctx context.Context, userID string) ([]model.GestionPersonal, error)
	ListGestionByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]model.GestionPersonal, error)
	DeleteGestion(ctx context.Context, userID string, id uuid.UUID) error
	CountGestionByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error)

	CreatePago(ctx context.Context, p *model.PagoRealizado) error
	FindPagoByID(ctx context.Context, userID string, id uuid.UUID) (*model.PagoRealizado, error)
	ListPagos(ctx context.Context, userID string) ([]model.PagoRealizado, error)
	ListPagosByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]model.PagoRealizado, error)
	UpdatePago(ctx context.Context, p *model.PagoRealizado) error
	DeletePago(ctx context.Context, userID string, id uuid.UUID) error
	SumPagosByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (decimal.Decimal, error)
}

type personalRepo struct{ db *gorm.DB }

func NewPersonalRepository(db *gorm.DB) PersonalRepository { return &personalRepo{db: db} }

func (r *personalRepo) CreateGestion(ctx context.Context, g *model.GestionPersonal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *personalRepo) FindGestionByID(ctx context.Context, userID string, id uuid.UUID) (*model.GestionPersonal, error) {
	var g model.GestionPersonal
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&g).Error
	return &g, err
}

func (r *personalRepo) ListGestion(ctx context.Context, userID string) ([]model.GestionPersonal, error) {
	var registros []model.GestionPersonal
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Where("user_id = ?", userID).
		Order("fecha_de_gestion DESC").
		Find(&registros).Error
	return registros, err
}

func (r *personalRepo) ListGestionByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]model.GestionPersonal, error) {
	var registros []model.GestionPersonal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Order("fecha_de_gestion DESC").
		Find(&registros).Error
	return registros, err
}

func (r *personalRepo) DeleteGestion(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.GestionPersonal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personalRepo) CountGestionByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.GestionPersonal{}).
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Count(&n).Error
	return n, err
}

func (r *personalRepo) CreatePago(ctx context.Context, p *model.PagoRealizado) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personalRepo) FindPagoByID(ctx context.Context, userID string, id uuid.UUID) (*model.PagoRealizado, error) {
	var p model.PagoRealizado
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	return &p, err
}

func (r *personalRepo) ListPagos(ctx context.Context, userID string) ([]model.PagoRealizado, error) {
	var pagos []model.PagoRealizado
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Where("user_id = ?", userID).
		Order("fecha_pago DESC").
		Find(&pagos).Error
	return pagos, err
}

func (r *personalRepo) ListPagosByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) ([]model.PagoRealizado, error) {
	var pagos []model.PagoRealizado
	err := r.db.WithContext(ctx).
		Preload("Colaborador").
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Order("fecha_pago DESC").
		Find(&pagos).Error
	return pagos, err
}

func (r *personalRepo) UpdatePago(ctx context.Context, p *model.PagoRealizado) error {
	return r.db.WithContext(ctx).Omit("Colaborador", "Registros").Save(p).Error
}

func (r *personalRepo) DeletePago(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.PagoRealizado{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personalRepo) SumPagosByColaborador(ctx context.Context, userID string, colaboradorID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.PagoRealizado{}).
		Where("user_id = ? AND colaborador_id = ?", userID, colaboradorID).
		Select("COALESCE(SUM(monto_total), 0)").
		Scan(&total).Error
	return total, err
}
