package auth

import (
	"context"
	"time"

	"github.com/shawaizdev/portfolio-api/model"
	"gorm.io/gorm"
)

// BlacklistService handles session token revocation
type BlacklistService struct {
	db *gorm.DB
}

// NewBlacklistService creates a new blacklist service
func NewBlacklistService(db *gorm.DB) *BlacklistService {
	return &BlacklistService{db: db}
}

// RevokeToken records a token as revoked until its natural expiry
func (s *BlacklistService) RevokeToken(ctx context.Context, jti string, adminID uint, expiresAt time.Time) error {
	entry := model.RevokedToken{
		JTI:       jti,
		AdminID:   adminID,
		ExpiresAt: expiresAt,
	}

	return s.db.WithContext(ctx).Create(&entry).Error
}

// IsTokenRevoked checks if a token has been revoked. Entries past their
// expiry are ignored since the token itself no longer validates.
func (s *BlacklistService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, time.Now()).
		Count(&count).
		Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
