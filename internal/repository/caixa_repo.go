package repository

import (
	"context"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CaixaRepository interface {
	Create(ctx context.Context, c *model.Caixa) error
	FindAberto(ctx context.Context) (*model.Caixa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	ListByData(ctx context.Context, data string) ([]model.Caixa, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Caixa, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	CreateFechamentoTx(tx *gorm.DB, f *model.FechamentoCaixa) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) DB() *gorm.DB { return r.db }

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// FindAberto returns the most recently opened caixa still "aberto", or
// gorm.ErrRecordNotFound when every caixa is closed.
func (r *caixaRepo) FindAberto(ctx context.Context) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).
		Where("status = ?", model.CaixaAberto).
		Order("data_abertura DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) ListByData(ctx context.Context, data string) ([]model.Caixa, error) {
	var caixas []model.Caixa
	err := r.db.WithContext(ctx).
		Where("DATE(data_abertura) = ?", data).
		Order("data_abertura DESC").
		Find(&caixas).Error
	return caixas, err
}

// FindByIDForUpdateTx fetches the caixa with a SELECT ... FOR UPDATE row lock
// so concurrent fechamentos serialize on the status check.
func (r *caixaRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Caixa{}).Where("id = ?", id).Update("status", status).Error
}

func (r *caixaRepo) CreateFechamentoTx(tx *gorm.DB, f *model.FechamentoCaixa) error {
	return tx.Create(f).Error
}
