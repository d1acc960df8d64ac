package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Profile(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	ctx := context.Background()
	for _, name := range []string{"alice", "bob", "carol"} {
		createUser(t, db, name)
	}
	older := createTweet(t, db, "bob", "older")
	newer := createTweet(t, db, "bob", "newer")
	createTweet(t, db, "alice", "not on bob's page")

	_, err := NewFollowRepository(db).Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = NewFollowRepository(db).Follow(ctx, "bob", "carol")
	require.NoError(t, err)
	_, err = NewLikeRepository(db).Like(ctx, "alice", older.ID)
	require.NoError(t, err)

	t.Run("follower's view", func(t *testing.T) {
		p, err := profiles.Profile(ctx, "bob", "alice")
		require.NoError(t, err)
		assert.Equal(t, "bob", p.Owner.Username)
		assert.True(t, p.IsFollowing)
		assert.False(t, p.IsOwner)
		assert.Equal(t, int64(1), p.FollowCount)
		assert.Equal(t, int64(1), p.FollowerCount)
		require.Len(t, p.Tweets, 2)
		assert.Equal(t, newer.ID, p.Tweets[0].ID)
		assert.Equal(t, older.ID, p.Tweets[1].ID)
		assert.True(t, p.Tweets[1].Liked)
		assert.Equal(t, int64(1), p.Tweets[1].LikeCount)
	})

	t.Run("non-follower's view", func(t *testing.T) {
		p, err := profiles.Profile(ctx, "bob", "carol")
		require.NoError(t, err)
		assert.False(t, p.IsFollowing)
		assert.False(t, p.Tweets[1].Liked)
	})

	t.Run("owner's view", func(t *testing.T) {
		p, err := profiles.Profile(ctx, "bob", "bob")
		require.NoError(t, err)
		assert.True(t, p.IsOwner)
		assert.False(t, p.IsFollowing)
	})

	t.Run("anonymous view", func(t *testing.T) {
		p, err := profiles.Profile(ctx, "bob", "")
		require.NoError(t, err)
		assert.False(t, p.IsFollowing)
		assert.False(t, p.IsOwner)
		assert.Len(t, p.Tweets, 2)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := profiles.Profile(ctx, "nobody", "alice")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
