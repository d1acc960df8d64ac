package models

import "time"

// Follow is a directed edge: Follower follows Followee.
// The composite unique index keeps one edge per ordered pair and the check
// constraint keeps self edges out of the table.
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follows_pair"`
	FolloweeID uint `gorm:"not null;uniqueIndex:idx_follows_pair;index;check:chk_follows_no_self,follower_id <> followee_id"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Followee User `gorm:"foreignKey:FolloweeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
