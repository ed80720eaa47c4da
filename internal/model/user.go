// Package model defines database models
package model

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:16" json:"_id"`
	Username     string    `gorm:"uniqueIndex;size:20;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
