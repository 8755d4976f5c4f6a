package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NotaFiscal is an issued fiscal invoice. It is immutable after creation:
// the only write permitted afterwards is whole-record deletion. Totals are
// computed once at emission and stored.
type NotaFiscal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID uuid.UUID `gorm:"type:uuid;index;not null"`
	EmpresaID uuid.UUID `gorm:"type:uuid;index;not null"`
	// EmpresaNome is snapshotted at emission; renaming the empresa later
	// does not rewrite issued documents.
	EmpresaNome string `gorm:"not null"`
	NumeroNF    string `gorm:"not null;column:numero_nf"`
	DataEmissao time.Time `gorm:"index;not null"`

	Itens []ItemNota `gorm:"foreignKey:NotaID;constraint:OnDelete:CASCADE"`

	// Invoice-level totals: exact sums of the per-item amounts below.
	TotalValor  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalICMS   decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_icms"`
	TotalPIS    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_pis"`
	TotalCOFINS decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_cofins"`
	TotalIPI    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_ipi"`

	CreatedAt time.Time
}

// ItemNota is a line of a NotaFiscal. Price, rates and the product name are
// frozen copies taken from the Produto at emission time.
type ItemNota struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NotaID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoNome string          `gorm:"not null"`
	Quantidade  decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	// Snapshots from the Produto.
	ValorUnitario  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AliquotaICMS   decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_icms"`
	AliquotaPIS    decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_pis"`
	AliquotaCOFINS decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_cofins"`
	AliquotaIPI    decimal.Decimal `gorm:"type:decimal(5,2);not null;column:aliquota_ipi"`

	// Computed amounts, rounded per line before summation.
	TotalItem  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ICMSItem   decimal.Decimal `gorm:"type:decimal(14,2);not null;column:icms_item"`
	PISItem    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:pis_item"`
	COFINSItem decimal.Decimal `gorm:"type:decimal(14,2);not null;column:cofins_item"`
	IPIItem    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:ipi_item"`
}

func (n *NotaFiscal) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (i *ItemNota) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (NotaFiscal) TableName() string { return "notas_fiscais" }
func (ItemNota) TableName() string   { return "itens_nota" }
