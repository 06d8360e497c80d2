package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is a shortened URL. Rows are deactivated, never deleted, so a short
// code is never reused.
type Link struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OriginalURL string     `gorm:"size:2048;not null"`
	ShortCode   string     `gorm:"size:20;uniqueIndex;not null"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	ExpiresAt   *time.Time
	Active      bool    `gorm:"not null"`
	Clicks      []Click `gorm:"foreignKey:LinkID"`
}

// IsExpired reports whether the link's expiry has passed at now.
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// Click is one successful resolution of a Link.
type Click struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LinkID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ClickedAt time.Time `gorm:"not null;index"`
	IPAddress string    `gorm:"size:50"`
	UserAgent string    `gorm:"size:255"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:72;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
