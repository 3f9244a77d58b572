package entities

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:80" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:120" json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"default:student" json:"role"` // admin|engineer|student
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
