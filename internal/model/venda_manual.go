package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendaManual is a sale typed in at the register, outside the webhook flow.
type VendaManual struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DataVenda       time.Time       `gorm:"not null;index" json:"data_venda"`
	TipoPagamento   string          `gorm:"type:varchar(30);not null" json:"tipo_pagamento"`
	Valor           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`
	Descricao       *string         `json:"descricao"`
	CaixaAberturaID uuid.UUID       `gorm:"type:uuid;not null;index" json:"caixa_abertura_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (VendaManual) TableName() string { return "vendas_manuais" }
