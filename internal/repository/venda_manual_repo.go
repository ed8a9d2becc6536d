package repository

import (
	"context"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendaManualRepository interface {
	Create(ctx context.Context, vm *model.VendaManual) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VendaManual, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.VendaManual, error)
	ListByData(ctx context.Context, data string) ([]model.VendaManual, error)
	ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.VendaManual, error)
}

type vendaManualRepo struct{ db *gorm.DB }

func NewVendaManualRepository(db *gorm.DB) VendaManualRepository { return &vendaManualRepo{db: db} }

func (r *vendaManualRepo) Create(ctx context.Context, vm *model.VendaManual) error {
	return r.db.WithContext(ctx).Create(vm).Error
}

func (r *vendaManualRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VendaManual, error) {
	var vm model.VendaManual
	if err := r.db.WithContext(ctx).First(&vm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vm, nil
}

func (r *vendaManualRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VendaManual{}, "id = ?", id).Error
}

func (r *vendaManualRepo) ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.VendaManual, error) {
	var vendas []model.VendaManual
	err := r.db.WithContext(ctx).
		Where("caixa_abertura_id = ?", caixaID).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaManualRepo) ListByData(ctx context.Context, data string) ([]model.VendaManual, error) {
	var vendas []model.VendaManual
	err := r.db.WithContext(ctx).
		Where("DATE(data_venda) = ?", data).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaManualRepo) ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.VendaManual, error) {
	var vendas []model.VendaManual
	err := tx.Where("caixa_abertura_id = ?", caixaID).Find(&vendas).Error
	return vendas, err
}
