package dto

import (
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// WebhookPedidoRequest is the payload the ordering platform posts. Everything
// except valor_total and produtos is optional and normalized with defaults.
type WebhookPedidoRequest struct {
	NomeCliente     string              `json:"nome_cliente"`
	TelefoneCliente string              `json:"telefone_cliente"`
	TipoPedido      string              `json:"tipo_pedido"`
	Endereco        *string             `json:"endereco"`
	DataPedido      *time.Time          `json:"data_pedido"`
	TipoPagamento   string              `json:"tipo_pagamento"`
	ValorTotal      decimal.Decimal     `json:"valor_total"   validate:"required"`
	Produtos        []ItemPedidoRequest `json:"produtos"      validate:"required,min=1,dive"`
}

type ItemPedidoRequest struct {
	NomeProduto  string          `json:"nome_produto"`
	Quantidade   int             `json:"quantidade"`
	Valor        decimal.Decimal `json:"valor"`
	Adicionais   []string        `json:"adicionais"`
	Complementos []string        `json:"complementos"`
}

type AtualizarPagamentoRequest struct {
	TipoPagamento string `json:"tipo_pagamento" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type WebhookVendaResponse struct {
	VendaID string `json:"venda_id"`
}

// VendaComCaixa is a venda joined with the opening info of its caixa.
type VendaComCaixa struct {
	model.Venda
	CaixaDataAbertura time.Time       `json:"caixa_data_abertura"`
	CaixaValorInicial decimal.Decimal `json:"caixa_valor_inicial"`
}

// MovimentoDiaResponse merges webhook and manual sales of one calendar day.
// Origem: "sistema" | "manual". Pedido is only set for webhook sales and
// Descricao only for manual ones.
type MovimentoDiaResponse struct {
	ID            string          `json:"id"`
	Origem        string          `json:"origem"`
	DataVenda     time.Time       `json:"data_venda"`
	TipoPagamento string          `json:"tipo_pagamento"`
	Valor         decimal.Decimal `json:"valor"`
	Descricao     *string         `json:"descricao,omitempty"`
	Pedido        datatypes.JSON  `json:"pedido,omitempty"`
}
