package store

import (
	"context"
	"errors"
	"fmt"

	"tweetline/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeResult is the like state of a tweet after Like or Unlike.
type LikeResult struct {
	TweetID  uint
	AuthorID uint
	Liked    bool
	Count    int64
	// Changed is false when the call found the state already in place.
	Changed bool
}

// LikeRepository stores likes.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Like ensures exactly one like row for (username, tweetID).
func (r *LikeRepository) Like(ctx context.Context, username string, tweetID uint) (LikeResult, error) {
	db := r.db.WithContext(ctx)

	tweet, user, err := r.lookup(db, username, tweetID)
	if err != nil {
		return LikeResult{}, err
	}

	like := models.Like{UserID: user.ID, TweetID: tweet.ID}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		return LikeResult{}, fmt.Errorf("create like: %w", result.Error)
	}

	count, err := countLikes(db, tweet.ID)
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{
		TweetID:  tweet.ID,
		AuthorID: tweet.UserID,
		Liked:    true,
		Count:    count,
		Changed:  result.RowsAffected == 1,
	}, nil
}

// Unlike removes the like row if present. Missing rows are not an error.
func (r *LikeRepository) Unlike(ctx context.Context, username string, tweetID uint) (LikeResult, error) {
	db := r.db.WithContext(ctx)

	tweet, user, err := r.lookup(db, username, tweetID)
	if err != nil {
		return LikeResult{}, err
	}

	result := db.Where("user_id = ? AND tweet_id = ?", user.ID, tweet.ID).Delete(&models.Like{})
	if result.Error != nil {
		return LikeResult{}, fmt.Errorf("delete like: %w", result.Error)
	}

	count, err := countLikes(db, tweet.ID)
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{
		TweetID:  tweet.ID,
		AuthorID: tweet.UserID,
		Liked:    false,
		Count:    count,
		Changed:  result.RowsAffected > 0,
	}, nil
}

func (r *LikeRepository) lookup(db *gorm.DB, username string, tweetID uint) (*models.Tweet, *models.User, error) {
	var tweet models.Tweet
	if err := db.Take(&tweet, tweetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, tweetNotFound(tweetID)
		}
		return nil, nil, fmt.Errorf("find tweet: %w", err)
	}
	user, err := findUser(db, "username = ?", username)
	if err != nil {
		return nil, nil, err
	}
	return &tweet, user, nil
}

func countLikes(db *gorm.DB, tweetID uint) (int64, error) {
	var n int64
	if err := db.Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
