package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tweetline/backend/internal/models"

	"gorm.io/gorm"
)

// TweetView is a tweet decorated for a particular viewer.
type TweetView struct {
	models.Tweet
	LikeCount int64
	Liked     bool
}

// TimelineScope selects which authors appear on the home timeline.
type TimelineScope int

const (
	ScopeAll TimelineScope = iota
	// ScopeFollowing keeps the viewer's own tweets and those of followees.
	ScopeFollowing
)

// TweetRepository stores tweets.
type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// ValidateContent checks the content of a new tweet; returns the trimmed text.
func ValidateContent(content string) (string, error) {
	if !utf8.ValidString(content) {
		return "", fieldError("content", "Enter valid UTF-8 text.", nil)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fieldError("content", "This field is required.", nil)
	}
	if n := utf8.RuneCountInString(content); n > models.MaxTweetLength {
		msg := fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", models.MaxTweetLength, n)
		return "", fieldError("content", msg, nil)
	}
	return content, nil
}

// Create posts a tweet for authorUsername.
func (r *TweetRepository) Create(ctx context.Context, authorUsername, content string) (*models.Tweet, error) {
	content, err := ValidateContent(content)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	author, err := findUser(db, "username = ?", authorUsername)
	if err != nil {
		return nil, err
	}

	tweet := models.Tweet{UserID: author.ID, Content: content}
	if err := db.Create(&tweet).Error; err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	tweet.User = *author
	return &tweet, nil
}

// Delete removes a tweet owned by requesterUsername.
// ErrForbidden is returned when the tweet belongs to someone else.
func (r *TweetRepository) Delete(ctx context.Context, requesterUsername string, id uint) error {
	db := r.db.WithContext(ctx)

	var tweet models.Tweet
	if err := db.Take(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tweetNotFound(id)
		}
		return fmt.Errorf("find tweet: %w", err)
	}

	requester, err := findUser(db, "username = ?", requesterUsername)
	if err != nil {
		return err
	}
	if tweet.UserID != requester.ID {
		return ErrForbidden
	}

	result := db.Where("id = ? AND user_id = ?", id, requester.ID).Delete(&models.Tweet{})
	if result.Error != nil {
		return fmt.Errorf("delete tweet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tweetNotFound(id)
	}
	return nil
}

// Get returns a single tweet decorated for viewerUsername.
func (r *TweetRepository) Get(ctx context.Context, id uint, viewerUsername string) (*TweetView, error) {
	db := r.db.WithContext(ctx)

	var tweet models.Tweet
	if err := db.Preload("User").Take(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tweetNotFound(id)
		}
		return nil, fmt.Errorf("find tweet: %w", err)
	}

	views, err := decorate(db, []models.Tweet{tweet}, viewerID(db, viewerUsername))
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Timeline lists tweets newest first, one page at a time.
func (r *TweetRepository) Timeline(ctx context.Context, viewerUsername string, scope TimelineScope, page, limit int) (Page[TweetView], error) {
	page, limit = NormalizePage(page, limit)
	db := r.db.WithContext(ctx)
	viewer := viewerID(db, viewerUsername)

	query := db.Model(&models.Tweet{})
	if scope == ScopeFollowing {
		followees := db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", viewer)
		query = query.Where("tweets.user_id IN (?) OR tweets.user_id = ?", followees, viewer)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[TweetView]{}, fmt.Errorf("count tweets: %w", err)
	}
	if int64(page-1) >= (total+int64(limit)-1)/int64(limit) {
		return NewPage([]TweetView{}, total, page, limit), nil
	}

	var tweets []models.Tweet
	err := query.Preload("User").
		Order("tweets.created_at DESC").Order("tweets.id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&tweets).Error
	if err != nil {
		return Page[TweetView]{}, fmt.Errorf("list tweets: %w", err)
	}

	views, err := decorate(db, tweets, viewer)
	if err != nil {
		return Page[TweetView]{}, err
	}
	return NewPage(views, total, page, limit), nil
}

// byAuthor lists every tweet of a user newest first.
func byAuthor(db *gorm.DB, authorID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := db.Where("user_id = ?", authorID).
		Order("created_at DESC").Order("id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	return tweets, nil
}

// viewerID resolves an optional viewer; zero means anonymous or unknown.
func viewerID(db *gorm.DB, username string) uint {
	if username == "" {
		return 0
	}
	user, err := findUser(db, "username = ?", username)
	if err != nil {
		return 0
	}
	return user.ID
}

type likeCount struct {
	TweetID uint
	Count   int64
}

// decorate attaches like counts and the viewer's like state.
func decorate(db *gorm.DB, tweets []models.Tweet, viewer uint) ([]TweetView, error) {
	views := make([]TweetView, len(tweets))
	if len(tweets) == 0 {
		return views, nil
	}

	ids := make([]uint, len(tweets))
	for i, t := range tweets {
		ids[i] = t.ID
		views[i] = TweetView{Tweet: t}
	}

	var counts []likeCount
	err := db.Model(&models.Like{}).
		Select("tweet_id, COUNT(*) AS count").
		Where("tweet_id IN ?", ids).
		Group("tweet_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	countByID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByID[c.TweetID] = c.Count
	}

	liked := make(map[uint]bool)
	if viewer != 0 {
		var likedIDs []uint
		err := db.Model(&models.Like{}).
			Where("user_id = ? AND tweet_id IN ?", viewer, ids).
			Pluck("tweet_id", &likedIDs).Error
		if err != nil {
			return nil, fmt.Errorf("load liked tweets: %w", err)
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	for i := range views {
		views[i].LikeCount = countByID[views[i].ID]
		views[i].Liked = liked[views[i].ID]
	}
	return views, nil
}
