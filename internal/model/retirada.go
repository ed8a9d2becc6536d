package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Retirada is cash taken out of an open caixa.
type Retirada struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DataRetirada    time.Time       `gorm:"not null;index" json:"data_retirada"`
	Valor           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`
	Observacao      *string         `json:"observacao"`
	CaixaAberturaID uuid.UUID       `gorm:"type:uuid;not null;index" json:"caixa_abertura_id"`
	CreatedAt       time.Time       `json:"created_at"`
}
