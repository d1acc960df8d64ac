package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/config"
	"tweetline/backend/internal/database"
	"tweetline/backend/internal/hub"
	"tweetline/backend/internal/monitoring"
	"tweetline/backend/internal/store"
	"tweetline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testPassword = "correcthorse42"
	testSecret   = "0123456789abcdef0123456789abcdef"
)

type testApp struct {
	server  *httptest.Server
	users   *store.UserRepository
	hub     *hub.Hub
	metrics *monitoring.Metrics
}

func newTestApp(t *testing.T, policy string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := database.Open("sqlite", dsn, log)
	require.NoError(t, err)

	cfg := &config.Config{UnfollowMissingPolicy: policy}
	users := store.NewUserRepository(db, bcrypt.MinCost)
	sessions := auth.NewSessions(testSecret, "test_session")
	tokens := jwt.NewManager(testSecret, time.Hour)
	events := hub.NewHub(log)
	metrics := monitoring.New()

	h := New(Deps{
		Users:    users,
		Follows:  store.NewFollowRepository(db),
		Tweets:   store.NewTweetRepository(db),
		Likes:    store.NewLikeRepository(db),
		Profiles: store.NewProfileService(db),
		Sessions: sessions,
		Tokens:   tokens,
		Hub:      events,
		Metrics:  metrics,
		Log:      log,
		Config:   cfg,
	})
	authn := auth.NewAuthenticator(sessions, tokens, users, log)
	server := httptest.NewServer(NewRouter(h, authn, metrics, log))

	t.Cleanup(func() {
		server.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return &testApp{server: server, users: users, hub: events, metrics: metrics}
}

// client is a browser-like caller: it keeps cookies and does not follow redirects.
type client struct {
	t     *testing.T
	base  string
	http  *http.Client
	token string
}

func (a *testApp) newClient(t *testing.T) *client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{
		t:    t,
		base: a.server.URL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *client) do(method, path string, body io.Reader, contentType string) *http.Response {
	c.t.Helper()
	req, err := http.NewRequest(method, c.base+path, body)
	require.NoError(c.t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (c *client) get(path string) *http.Response {
	return c.do(http.MethodGet, path, nil, "")
}

func (c *client) post(path string, form url.Values) *http.Response {
	return c.do(http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *client) postJSON(path string, body any) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(c.t, err)
	return c.do(http.MethodPost, path, strings.NewReader(string(data)), "application/json")
}

func (c *client) delete(path string) *http.Response {
	return c.do(http.MethodDelete, path, nil, "")
}

// signup creates an account and leaves the client logged in.
func (a *testApp) signup(t *testing.T, username string) *client {
	t.Helper()
	c := a.newClient(t)
	resp := c.post("/accounts/signup", url.Values{
		"username":  {username},
		"email":     {username + "@example.com"},
		"password1": {testPassword},
		"password2": {testPassword},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode, "signup %s", username)
	require.Equal(t, HomePath, resp.Header.Get("Location"))
	return c
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// postTweet posts content and returns the new tweet's id, read back from the timeline.
func postTweet(t *testing.T, c *client, content string) uint {
	t.Helper()
	resp := c.post("/tweets", url.Values{"content": {content}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	page := decode[TimelineResponse](t, c.get("/?limit=1"))
	require.NotEmpty(t, page.Data)
	require.Equal(t, content, page.Data[0].Content)
	return page.Data[0].ID
}
