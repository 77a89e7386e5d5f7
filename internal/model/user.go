package model

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primarykey;type:uuid" json:"id"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
