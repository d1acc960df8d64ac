package models

import "time"

// MaxTweetLength is measured in characters, not bytes.
const MaxTweetLength = 140

// Tweet is a short text post owned by exactly one user.
type Tweet struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"size:140;not null"`
	CreatedAt time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
