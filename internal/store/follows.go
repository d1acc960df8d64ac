package store

import (
	"context"
	"fmt"

	"tweetline/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowResult reports the edge touched by Follow or Unfollow.
type FollowResult struct {
	Follower models.User
	Followee models.User
	// Created is false when the edge already existed.
	Created bool
}

// FollowRepository maintains the directed follow graph.
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow creates the edge actor -> target if it does not exist yet.
// The insert relies on the unique (follower_id, followee_id) index, so
// concurrent identical requests still leave a single row.
func (r *FollowRepository) Follow(ctx context.Context, actor, target string) (FollowResult, error) {
	db := r.db.WithContext(ctx)

	followee, err := findUser(db, "username = ?", target)
	if err != nil {
		return FollowResult{}, err
	}
	if actor == target {
		return FollowResult{Followee: *followee}, ErrSelfFollow
	}
	follower, err := findUser(db, "username = ?", actor)
	if err != nil {
		return FollowResult{}, err
	}

	edge := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if result.Error != nil {
		return FollowResult{}, fmt.Errorf("create follow: %w", result.Error)
	}

	return FollowResult{
		Follower: *follower,
		Followee: *followee,
		Created:  result.RowsAffected == 1,
	}, nil
}

// Unfollow removes the edge actor -> target.
func (r *FollowRepository) Unfollow(ctx context.Context, actor, target string) (FollowResult, error) {
	db := r.db.WithContext(ctx)

	followee, err := findUser(db, "username = ?", target)
	if err != nil {
		return FollowResult{}, err
	}
	if actor == target {
		return FollowResult{Followee: *followee}, ErrSelfUnfollow
	}
	follower, err := findUser(db, "username = ?", actor)
	if err != nil {
		return FollowResult{}, err
	}

	res := FollowResult{Follower: *follower, Followee: *followee}
	result := db.Where("follower_id = ? AND followee_id = ?", follower.ID, followee.ID).Delete(&models.Follow{})
	if result.Error != nil {
		return res, fmt.Errorf("delete follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return res, ErrNotFollowing
	}
	return res, nil
}

// FollowCount is the number of users username follows.
// Unknown usernames count zero.
func (r *FollowRepository) FollowCount(ctx context.Context, username string) (int64, error) {
	return r.countEdges(ctx, "follows.follower_id", username)
}

// FollowerCount is the number of users following username.
func (r *FollowRepository) FollowerCount(ctx context.Context, username string) (int64, error) {
	return r.countEdges(ctx, "follows.followee_id", username)
}

func (r *FollowRepository) countEdges(ctx context.Context, column, username string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Joins("JOIN users ON users.id = "+column).
		Where("users.username = ?", username).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return n, nil
}

// IsFollowing reports whether actor follows target. Always false for self.
func (r *FollowRepository) IsFollowing(ctx context.Context, actor, target string) (bool, error) {
	if actor == "" || actor == target {
		return false, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Joins("JOIN users AS follower ON follower.id = follows.follower_id").
		Joins("JOIN users AS followee ON followee.id = follows.followee_id").
		Where("follower.username = ? AND followee.username = ?", actor, target).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return n > 0, nil
}

// ListFollowing returns the users username follows, oldest edge first.
func (r *FollowRepository) ListFollowing(ctx context.Context, username string) ([]models.User, error) {
	return r.listEdges(ctx, username, "follows.followee_id", "follows.follower_id")
}

// ListFollowers returns the users following username, oldest edge first.
func (r *FollowRepository) ListFollowers(ctx context.Context, username string) ([]models.User, error) {
	return r.listEdges(ctx, username, "follows.follower_id", "follows.followee_id")
}

func (r *FollowRepository) listEdges(ctx context.Context, username, joinColumn, ownerColumn string) ([]models.User, error) {
	db := r.db.WithContext(ctx)

	owner, err := findUser(db, "username = ?", username)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	err = db.Model(&models.User{}).
		Joins("JOIN follows ON users.id = "+joinColumn).
		Where(ownerColumn+" = ?", owner.ID).
		Order("follows.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	return users, nil
}
