package model

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null;size:255"`
	Email        string    `json:"email" gorm:"unique;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	IsVerified   bool      `json:"is_verified" gorm:"not null;default:false"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}
