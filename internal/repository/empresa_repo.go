package repository

import (
	"context"

	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmpresaRepository is the data access contract for companies. Every query
// is scoped to the owning usuario.
type EmpresaRepository interface {
	Create(ctx context.Context, e *model.Empresa) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Empresa, error)
	ExistsByCNPJ(ctx context.Context, usuarioID uuid.UUID, cnpj string) (bool, error)
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Empresa, error)
	Update(ctx context.Context, e *model.Empresa) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error)
	Count(ctx context.Context, usuarioID uuid.UUID) (int64, error)
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Create(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&e).Error
	return &e, err
}

func (r *empresaRepo) ExistsByCNPJ(ctx context.Context, usuarioID uuid.UUID, cnpj string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Empresa{}).
		Where("cnpj = ? AND usuario_id = ?", cnpj, usuarioID).
		Count(&count).Error
	return count > 0, err
}

func (r *empresaRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Empresa, error) {
	var empresas []model.Empresa
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&empresas).Error
	return empresas, err
}

func (r *empresaRepo) Update(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Delete(&model.Empresa{})
	return res.RowsAffected, res.Error
}

func (r *empresaRepo) Count(ctx context.Context, usuarioID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Empresa{}).
		Where("usuario_id = ?", usuarioID).
		Count(&count).Error
	return count, err
}
