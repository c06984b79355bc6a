package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// UsableOtp keeps codes that are unconsumed and not yet expired.
type UsableOtp struct {
	Now time.Time
}

func (s UsableOtp) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("consumed = false AND expires_at > ?", s.Now)
}
