package dto

import "github.com/shopspring/decimal"

type RegistrarVendaManualRequest struct {
	TipoPagamento   string          `json:"tipo_pagamento"    validate:"required"`
	Valor           decimal.Decimal `json:"valor"             validate:"required"`
	Descricao       *string         `json:"descricao"`
	CaixaAberturaID string          `json:"caixa_abertura_id" validate:"required,uuid"`
}
