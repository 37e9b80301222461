package model

import "time"

// Certificate represents a certification shown on the about page
type Certificate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Issuer        string    `json:"issuer"`
	IssueDate     time.Time `json:"issue_date"`
	CredentialURL string    `json:"credential_url"`
	ImagePath     string    `json:"image_path"`
	OrderIndex    int       `gorm:"default:0" json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
