package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status values for Caixa.
const (
	CaixaAberto  = "aberto"
	CaixaFechado = "fechado"
)

// Caixa represents one cash register session ("caixa_abertura").
// Status: "aberto" | "fechado". At most one row may be "aberto" at a time;
// the service checks before inserting and a partial unique index backstops it.
type Caixa struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DataAbertura time.Time       `gorm:"not null;index" json:"data_abertura"`
	ValorInicial decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor_inicial"`
	Observacao   *string         `json:"observacao"`
	Status       string          `gorm:"type:varchar(20);not null;default:'aberto'" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Vendas        []Venda          `gorm:"foreignKey:CaixaAberturaID;constraint:OnDelete:CASCADE" json:"-"`
	VendasManuais []VendaManual    `gorm:"foreignKey:CaixaAberturaID;constraint:OnDelete:CASCADE" json:"-"`
	Retiradas     []Retirada       `gorm:"foreignKey:CaixaAberturaID;constraint:OnDelete:CASCADE" json:"-"`
	Fechamento    *FechamentoCaixa `gorm:"foreignKey:CaixaAberturaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Caixa) TableName() string { return "caixa_abertura" }

// FechamentoCaixa is the closing summary ("caixa_fechamento") written exactly
// once when a caixa closes, as the output of the reconciliation.
type FechamentoCaixa struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DataFechamento  time.Time       `gorm:"not null" json:"data_fechamento"`
	ValorInicial    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor_inicial"`
	TotalVendas     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_vendas"`
	TotalRetiradas  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_retiradas"`
	SaldoFinal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"saldo_final"`
	Observacoes     *string         `json:"observacoes"`
	CaixaAberturaID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"caixa_abertura_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (FechamentoCaixa) TableName() string { return "caixa_fechamento" }
