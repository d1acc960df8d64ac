package handler

import (
	"net/http"
	"testing"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowScenario(t *testing.T) {
	app := newTestApp(t, "")
	alice := app.signup(t, "alice")
	bob := app.signup(t, "bob")
	carol := app.signup(t, "carol")

	resp := alice.post("/users/bob/follow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/bob/profile", resp.Header.Get("Location"))

	profile := decode[ProfileResponse](t, alice.get("/users/bob/profile"))
	assert.True(t, profile.Connected)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, []auth.Message{{Level: auth.LevelSuccess, Text: "You are now following bob."}}, profile.Messages)

	profile = decode[ProfileResponse](t, alice.get("/users/alice/profile"))
	assert.Equal(t, int64(1), profile.FollowCount)
	assert.Empty(t, profile.Messages, "flashes are shown once")

	profile = decode[ProfileResponse](t, bob.get("/users/bob/profile"))
	assert.False(t, profile.Connected, "never connected to yourself")
	assert.True(t, profile.IsOwner)

	profile = decode[ProfileResponse](t, carol.get("/users/bob/profile"))
	assert.False(t, profile.Connected)

	resp = alice.post("/users/bob/follow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	profile = decode[ProfileResponse](t, alice.get("/users/bob/profile"))
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, []auth.Message{{Level: auth.LevelWarning, Text: "You are already following bob."}}, profile.Messages)
}

func TestFollowUnknownUser(t *testing.T) {
	app := newTestApp(t, "")
	alice := app.signup(t, "alice")

	for _, path := range []string{"/users/dave/follow", "/users/dave/unfollow"} {
		resp := alice.post(path, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		body := decode[ErrorResponse](t, resp)
		assert.Equal(t, "dave does not exist.", body.Error)
	}
}

func TestSelfFollow(t *testing.T) {
	app := newTestApp(t, "")
	alice := app.signup(t, "alice")

	resp := alice.post("/users/alice/follow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/alice/profile", resp.Header.Get("Location"))

	profile := decode[ProfileResponse](t, alice.get("/users/alice/profile"))
	assert.Zero(t, profile.FollowCount)
	assert.Equal(t, []auth.Message{{Level: auth.LevelWarning, Text: "You cannot follow yourself."}}, profile.Messages)

	resp = alice.post("/users/alice/unfollow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/alice/profile", resp.Header.Get("Location"))
	profile = decode[ProfileResponse](t, alice.get("/users/alice/profile"))
	assert.Equal(t, []auth.Message{{Level: auth.LevelWarning, Text: "You cannot unfollow yourself."}}, profile.Messages)
}

func TestUnfollow(t *testing.T) {
	app := newTestApp(t, "")
	alice := app.signup(t, "alice")
	app.signup(t, "bob")

	alice.post("/users/bob/follow", nil)
	resp := alice.post("/users/bob/unfollow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	profile := decode[ProfileResponse](t, alice.get("/users/bob/profile"))
	assert.False(t, profile.Connected)
	assert.Zero(t, profile.FollowerCount)
	assert.Contains(t, profile.Messages, auth.Message{Level: auth.LevelSuccess, Text: "You have unfollowed bob."})

	resp = alice.post("/users/bob/unfollow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	profile = decode[ProfileResponse](t, alice.get("/users/bob/profile"))
	assert.Equal(t, []auth.Message{{Level: auth.LevelWarning, Text: "You are not following bob."}}, profile.Messages)
}

func TestUnfollowMissingSilent(t *testing.T) {
	app := newTestApp(t, config.UnfollowMissingSilent)
	alice := app.signup(t, "alice")
	app.signup(t, "bob")

	resp := alice.post("/users/bob/unfollow", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/bob/profile", resp.Header.Get("Location"))

	profile := decode[ProfileResponse](t, alice.get("/users/bob/profile"))
	assert.Empty(t, profile.Messages)
}

func TestFollowingAndFollowersLists(t *testing.T) {
	app := newTestApp(t, "")
	alice := app.signup(t, "alice")
	app.signup(t, "bob")
	app.signup(t, "carol")

	alice.post("/users/carol/follow", nil)
	alice.post("/users/bob/follow", nil)

	list := decode[UserListResponse](t, alice.get("/users/alice/following"))
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Users, 2)
	assert.Equal(t, "carol", list.Users[0].Username, "insertion order")
	assert.Equal(t, "bob", list.Users[1].Username)

	list = decode[UserListResponse](t, alice.get("/users/bob/followers"))
	require.Len(t, list.Users, 1)
	assert.Equal(t, "alice", list.Users[0].Username)

	resp := alice.get("/users/nobody/followers")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRelationRoutesRequireLogin(t *testing.T) {
	app := newTestApp(t, "")
	app.signup(t, "bob")

	resp := app.newClient(t).post("/users/bob/follow", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/accounts/login?next=%2Fusers%2Fbob%2Ffollow", resp.Header.Get("Location"))
}
