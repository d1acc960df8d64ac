package store

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"tweetline/backend/internal/database"
	"tweetline/backend/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "correcthorse42"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := database.Open("sqlite", dsn, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newUsers(db *gorm.DB) *UserRepository {
	return NewUserRepository(db, bcrypt.MinCost)
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := newUsers(db).Create(context.Background(), SignupInput{
		Username:  username,
		Email:     username + "@example.com",
		Password1: testPassword,
		Password2: testPassword,
	})
	require.NoError(t, err)
	return user
}

func createTweet(t *testing.T, db *gorm.DB, username, content string) *models.Tweet {
	t.Helper()
	tweet, err := NewTweetRepository(db).Create(context.Background(), username, content)
	require.NoError(t, err)
	return tweet
}
