package model

import "time"

// Project represents a portfolio project entry
type Project struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	ShortDescription string    `gorm:"type:text" json:"short_description"`
	Description      string    `gorm:"type:text" json:"description"`
	Category         string    `gorm:"type:varchar(50);index" json:"category"`
	TechStack        string    `json:"tech_stack"` // comma separated
	Tags             string    `json:"tags"`       // comma separated
	GithubLink       string    `json:"github_link"`
	LiveLink         string    `json:"live_link"`
	ImagePath        string    `json:"image_path"`
	IsFeatured       bool      `gorm:"default:false" json:"is_featured"`
	OrderIndex       int       `gorm:"default:0" json:"order_index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
