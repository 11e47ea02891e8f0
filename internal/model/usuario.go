package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is the account that owns every tenant-scoped entity. Its UUID
// (stringified) is the owner key (UserID) on products, sales, etc.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
