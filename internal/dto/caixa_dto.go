package dto

import (
	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	ValorInicial decimal.Decimal `json:"valor_inicial" validate:"min=0"`
	Observacao   *string         `json:"observacao"`
}

type FecharCaixaRequest struct {
	CaixaAberturaID string  `json:"caixa_abertura_id" validate:"required,uuid"`
	Observacoes     *string `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// StatusCaixaResponse keeps the key names the register frontend expects.
type StatusCaixaResponse struct {
	CaixaAberto bool         `json:"caixaAberto"`
	CaixaAtual  *model.Caixa `json:"caixaAtual"`
}

// ResumoCaixa is the reconciliation breakdown returned when a caixa closes.
type ResumoCaixa struct {
	TotalVendasSistema decimal.Decimal `json:"total_vendas_sistema"`
	TotalVendasManuais decimal.Decimal `json:"total_vendas_manuais"`
	TotalVendas        decimal.Decimal `json:"total_vendas"`
	DinheiroSistema    decimal.Decimal `json:"dinheiro_sistema"`
	DinheiroManuais    decimal.Decimal `json:"dinheiro_manuais"`
	TotalDinheiro      decimal.Decimal `json:"total_dinheiro"`
	TotalRetiradas     decimal.Decimal `json:"total_retiradas"`
	SaldoFinal         decimal.Decimal `json:"saldo_final"`
}

type FecharCaixaResponse struct {
	Fechamento model.FechamentoCaixa `json:"fechamento"`
	Resumo     ResumoCaixa           `json:"resumo"`
}
