package model

import "time"

// Experience represents a work experience entry on the about page
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	JobTitle    string     `gorm:"not null" json:"job_title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil while IsCurrent
	Description string     `gorm:"type:text" json:"description"`
	IsCurrent   bool       `gorm:"default:false" json:"is_current"`
	OrderIndex  int        `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
