package model

import (
	"time"
)

// RevokedToken records a session token invalidated before its natural
// expiry, identified by the token's JTI claim
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JTI       string    `gorm:"uniqueIndex;not null" json:"jti"`
	AdminID   uint      `gorm:"index" json:"admin_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for RevokedToken
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
