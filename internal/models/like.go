package models

import "time"

// Like marks a user's approval of a tweet. One row per (user, tweet).
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_tweet"`
	TweetID   uint `gorm:"not null;uniqueIndex:idx_likes_user_tweet;index"`
	CreatedAt time.Time

	User  User  `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tweet Tweet `gorm:"foreignKey:TweetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
