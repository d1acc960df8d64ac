package store

import (
	"context"
	"database/sql"

	"tweetline/backend/internal/models"

	"gorm.io/gorm"
)

// Profile is the read model behind a user's profile page.
type Profile struct {
	Owner         models.User
	Tweets        []TweetView
	FollowCount   int64
	FollowerCount int64
	// IsFollowing is whether the viewer follows Owner; false when the viewer is Owner.
	IsFollowing bool
	IsOwner     bool
}

// ProfileService composes profiles from the user, tweet, like and follow tables.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Profile builds the profile of the user with slug as seen by viewerUsername.
// viewerUsername may be empty for anonymous callers. All reads run in one
// read-only transaction so counts and tweets describe the same moment.
func (s *ProfileService) Profile(ctx context.Context, slug, viewerUsername string) (*Profile, error) {
	var profile *Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := findUser(tx, "slug = ?", slug)
		if err != nil {
			return err
		}

		tweets, err := byAuthor(tx, owner.ID)
		if err != nil {
			return err
		}
		views, err := decorate(tx, tweets, viewerID(tx, viewerUsername))
		if err != nil {
			return err
		}

		follows := &FollowRepository{db: tx}
		followCount, err := follows.FollowCount(ctx, owner.Username)
		if err != nil {
			return err
		}
		followerCount, err := follows.FollowerCount(ctx, owner.Username)
		if err != nil {
			return err
		}
		following, err := follows.IsFollowing(ctx, viewerUsername, owner.Username)
		if err != nil {
			return err
		}

		profile = &Profile{
			Owner:         *owner,
			Tweets:        views,
			FollowCount:   followCount,
			FollowerCount: followerCount,
			IsFollowing:   following,
			IsOwner:       viewerUsername == owner.Username,
		}
		return nil
	}, snapshotOptions(s.db))
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// snapshotOptions asks Postgres for a repeatable-read snapshot. SQLite
// transactions already read from a single snapshot.
func snapshotOptions(db *gorm.DB) *sql.TxOptions {
	if db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return nil
}
