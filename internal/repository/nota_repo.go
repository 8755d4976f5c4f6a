package repository

import (
	"context"

	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotaRepository is the data access contract for fiscal invoices.
// Notas are append-only: Create and Delete are the only writes.
type NotaRepository interface {
	// Create persists the nota together with its itens in a single
	// transaction — no partially written nota is ever observable.
	Create(ctx context.Context, n *model.NotaFiscal) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.NotaFiscal, error)
	// List returns notas ordered by data_emissao descending, itens included.
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.NotaFiscal, error)
	Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error)
	Count(ctx context.Context, usuarioID uuid.UUID) (int64, error)
	ExistsByEmpresa(ctx context.Context, empresaID uuid.UUID) (bool, error)
	ExistsByProduto(ctx context.Context, produtoID uuid.UUID) (bool, error)
}

type notaRepo struct{ db *gorm.DB }

func NewNotaRepository(db *gorm.DB) NotaRepository { return &notaRepo{db: db} }

func (r *notaRepo) Create(ctx context.Context, n *model.NotaFiscal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(n).Error
	})
}

func (r *notaRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.NotaFiscal, error) {
	var n model.NotaFiscal
	err := r.db.WithContext(ctx).
		Preload("Itens").
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&n).Error
	return &n, err
}

func (r *notaRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.NotaFiscal, error) {
	var notas []model.NotaFiscal
	err := r.db.WithContext(ctx).
		Preload("Itens").
		Where("usuario_id = ?", usuarioID).
		Order("data_emissao DESC").
		Find(&notas).Error
	return notas, err
}

func (r *notaRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&model.NotaFiscal{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Where("nota_id = ?", id).Delete(&model.ItemNota{}).Error
	})
	return affected, err
}

func (r *notaRepo) Count(ctx context.Context, usuarioID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NotaFiscal{}).
		Where("usuario_id = ?", usuarioID).
		Count(&count).Error
	return count, err
}

func (r *notaRepo) ExistsByEmpresa(ctx context.Context, empresaID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NotaFiscal{}).
		Where("empresa_id = ?", empresaID).
		Count(&count).Error
	return count > 0, err
}

func (r *notaRepo) ExistsByProduto(ctx context.Context, produtoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ItemNota{}).
		Where("produto_id = ?", produtoID).
		Count(&count).Error
	return count > 0, err
}
