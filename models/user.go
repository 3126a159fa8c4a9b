package models

import (
	"time"
)

// Account represents a registered user
type Account struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex;not null" json:"user"`
	Password  string    `gorm:"column:password;not null" json:"-"` // bcrypt hash, never returned
	Email     *string   `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:creado;not null;default:CURRENT_TIMESTAMP" json:"creado"`
}

func (Account) TableName() string {
	return "usuarios"
}

// AccountRegister holds data needed for registration
type AccountRegister struct {
	Username string `json:"user"`
	Password string `json:"pass"`
	Email    string `json:"email"`
}

// AccountLogin holds data needed for login
type AccountLogin struct {
	Username string `json:"user"`
	Password string `json:"pass"`
}
