package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Produto is a taxable catalog entry. Each product carries its own unit
// price and the four tax rates applied to its line total. Issued invoices
// freeze a copy of these fields, so updating a Produto never changes an
// already-emitted nota.
type Produto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID uuid.UUID `gorm:"type:uuid;index;not null"`
	EmpresaID uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome      string    `gorm:"not null"`
	Codigo    string    `gorm:"index;not null"`
	Categoria string    `gorm:"not null"`
	// ValorUnitario is non-negative; validated at the boundary.
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Aliquotas are percentage rates in [0,100], independently configurable.
	AliquotaICMS   decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_icms"`
	AliquotaPIS    decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_pis"`
	AliquotaCOFINS decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_cofins"`
	AliquotaIPI    decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_ipi"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Produto) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Produto) TableName() string { return "produtos" }
