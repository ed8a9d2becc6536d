package repository

import (
	"context"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendaRepository interface {
	Create(ctx context.Context, v *model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	Update(ctx context.Context, v *model.Venda) error
	ListAll(ctx context.Context) ([]model.Venda, error)
	ListByData(ctx context.Context, data string) ([]model.Venda, error)
	ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.Venda, error)
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) Create(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendaRepo) Update(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// ListAll returns every venda with its caixa preloaded for the joined listing.
func (r *vendaRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Caixa").
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) ListByData(ctx context.Context, data string) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Where("DATE(data_venda) = ?", data).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.Venda, error) {
	var vendas []model.Venda
	err := tx.Where("caixa_abertura_id = ?", caixaID).Find(&vendas).Error
	return vendas, err
}
