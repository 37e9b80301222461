package model

import "time"

// Testimonial represents a quote shown on the site, display-only beyond CRUD
type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Role       string    `json:"role"`
	Quote      string    `gorm:"type:text;not null" json:"quote"`
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
