package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario stores account holders. Every empresa/produto/nota row is scoped
// to the usuario that created it.
// Role: "admin" | "usuario"
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	SenhaHash string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'usuario'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *Usuario) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (Usuario) TableName() string { return "usuarios" }
