package model

import (
	"time"
)

// AccountModel mirrors the 'users' table. SQLite assigns IDs via AUTOINCREMENT,
// so creation order is monotonic and IDs are never reused.
// The 'password' column holds the hasher output, never a plaintext password.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;unique;not null"`
	PasswordHash string    `gorm:"column:password;type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}
