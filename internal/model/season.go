package model

import "time"

// Season is addressed by (UserID, Name); the pair is unique.
type Season struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_seasons_user_name"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Name        string    `json:"name" gorm:"not null;size:255;uniqueIndex:idx_seasons_user_name"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
