package model

// Skill represents a skill shown on the site, grouped by category
type Skill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Category   string `gorm:"type:varchar(50);not null;index" json:"category"`
	Level      int    `gorm:"default:0" json:"level"` // 0-100
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}
