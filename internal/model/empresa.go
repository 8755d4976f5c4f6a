package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valid regime_tributario labels. The regime is stored as company metadata
// and is never consulted by the tax calculation.
const (
	RegimeSimplesNacional = "Simples Nacional"
	RegimeLucroPresumido  = "Lucro Presumido"
	RegimeLucroReal       = "Lucro Real"
)

// Empresa is an issuing company. Invoices snapshot the company name at
// emission time, so later edits never rewrite issued documents.
type Empresa struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome             string    `gorm:"not null"`
	CNPJ             string    `gorm:"type:varchar(18);index;not null;column:cnpj"`
	Rua              string    `gorm:"not null"`
	Numero           string    `gorm:"not null"`
	Bairro           string    `gorm:"not null"`
	Cidade           string    `gorm:"not null"`
	Estado           string    `gorm:"type:varchar(2);not null"`
	CEP              string    `gorm:"type:varchar(9);not null;column:cep"`
	RegimeTributario string    `gorm:"type:varchar(30);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e *Empresa) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Empresa) TableName() string { return "empresas" }
