package dto

import "github.com/shopspring/decimal"

type RegistrarRetiradaRequest struct {
	Valor           decimal.Decimal `json:"valor"             validate:"required"`
	Observacao      *string         `json:"observacao"`
	CaixaAberturaID string          `json:"caixa_abertura_id" validate:"required,uuid"`
}
