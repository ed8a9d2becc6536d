package repository

import (
	"context"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RetiradaRepository interface {
	Create(ctx context.Context, rt *model.Retirada) error
	ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.Retirada, error)
	ListByData(ctx context.Context, data string) ([]model.Retirada, error)
	ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.Retirada, error)
}

type retiradaRepo struct{ db *gorm.DB }

func NewRetiradaRepository(db *gorm.DB) RetiradaRepository { return &retiradaRepo{db: db} }

func (r *retiradaRepo) Create(ctx context.Context, rt *model.Retirada) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *retiradaRepo) ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.Retirada, error) {
	var retiradas []model.Retirada
	err := r.db.WithContext(ctx).
		Where("caixa_abertura_id = ?", caixaID).
		Order("data_retirada DESC").
		Find(&retiradas).Error
	return retiradas, err
}

func (r *retiradaRepo) ListByData(ctx context.Context, data string) ([]model.Retirada, error) {
	var retiradas []model.Retirada
	err := r.db.WithContext(ctx).
		Where("DATE(data_retirada) = ?", data).
		Order("data_retirada DESC").
		Find(&retiradas).Error
	return retiradas, err
}

func (r *retiradaRepo) ListByCaixaTx(tx *gorm.DB, caixaID uuid.UUID) ([]model.Retirada, error) {
	var retiradas []model.Retirada
	err := tx.Where("caixa_abertura_id = ?", caixaID).Find(&retiradas).Error
	return retiradas, err
}
