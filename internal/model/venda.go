package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payment types for Venda and VendaManual.
const (
	PagamentoDinheiro = "dinheiro"
	PagamentoCartao   = "cartao"
	PagamentoPendente = "pendente"
)

// Order types accepted from the webhook.
const (
	PedidoEntrega  = "entrega"
	PedidoRetirada = "retirada"
	PedidoOutro    = "outro"
)

// Venda is a sale ingested through the order webhook. The normalized order
// lives in Pedido as jsonb; ValorTotal and TipoPagamento are lifted out of it
// so reconciliation and listings never have to parse the payload.
type Venda struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DataVenda       time.Time       `gorm:"not null;index" json:"data_venda"`
	Pedido          datatypes.JSON  `gorm:"type:jsonb;not null" json:"pedido"`
	TipoPagamento   string          `gorm:"type:varchar(30);not null;default:'pendente'" json:"tipo_pagamento"`
	ValorTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor_total"`
	CaixaAberturaID uuid.UUID       `gorm:"type:uuid;not null;index" json:"caixa_abertura_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Caixa *Caixa `gorm:"foreignKey:CaixaAberturaID" json:"-"`
}

// Pedido is the normalized shape stored in Venda.Pedido.
type Pedido struct {
	NomeCliente     string          `json:"nome_cliente"`
	TelefoneCliente string          `json:"telefone_cliente"`
	TipoPedido      string          `json:"tipo_pedido"`
	Endereco        string          `json:"endereco"`
	DataPedido      time.Time       `json:"data_pedido"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	Produtos        []ItemPedido    `json:"produtos"`
}

// ItemPedido is one line of a Pedido.
type ItemPedido struct {
	NomeProduto  string          `json:"nome_produto"`
	Quantidade   int             `json:"quantidade"`
	Valor        decimal.Decimal `json:"valor"`
	Adicionais   []string        `json:"adicionais"`
	Complementos []string        `json:"complementos"`
}
