package repository

import (
	"context"

	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository is the data access contract for catalog products.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error)
	Count(ctx context.Context, usuarioID uuid.UUID) (int64, error)
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&p).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, error) {
	q := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID)
	if filter.EmpresaID != "" {
		q = q.Where("empresa_id = ?", filter.EmpresaID)
	}
	var produtos []model.Produto
	err := q.Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Delete(&model.Produto{})
	return res.RowsAffected, res.Error
}

func (r *produtoRepo) Count(ctx context.Context, usuarioID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("usuario_id = ?", usuarioID).
		Count(&count).Error
	return count, err
}
