package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tweetline/backend/internal/models"
	"tweetline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeUsers map[uint]*models.User

func (f fakeUsers) ByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fixture struct {
	router   *gin.Engine
	sessions *Sessions
	tokens   *jwt.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := fakeUsers{
		1: {ID: 1, Username: "alice", Role: models.RoleUser},
		2: {ID: 2, Username: "root", Role: models.RoleAdmin},
	}
	f := &fixture{
		sessions: NewSessions(testSecret, "test_session"),
		tokens:   jwt.NewManager(testSecret, time.Hour),
	}
	a := NewAuthenticator(f.sessions, f.tokens, users, log)

	r := gin.New()
	r.Use(a.LoadUser())
	r.POST("/login/:id", func(c *gin.Context) {
		id := uint(1)
		if c.Param("id") == "2" {
			id = 2
		}
		require.NoError(t, f.sessions.Login(c, id))
		require.NoError(t, f.sessions.Flash(c, LevelSuccess, "welcome"))
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		require.NoError(t, f.sessions.Logout(c))
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		messages, err := f.sessions.Messages(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"user": Username(c), "messages": messages})
	})
	r.GET("/private", RequireLogin(), func(c *gin.Context) { c.String(http.StatusOK, Username(c)) })
	r.GET("/api/v1/private", RequireLogin(), func(c *gin.Context) { c.String(http.StatusOK, Username(c)) })
	r.GET("/admin", RequireLogin(), AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	f.router = r
	return f
}

func (f *fixture) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// latest merges the cookies a response set over the ones a client holds,
// the way a browser jar does.
func latest(held []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, c := range append(held, w.Result().Cookies()...) {
		if _, ok := byName[c.Name]; !ok {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		if c := byName[name]; c.MaxAge >= 0 {
			out = append(out, c)
		}
	}
	return out
}

func TestRequireLogin_Anonymous(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/private?x=1", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login?next=%2Fprivate%3Fx%3D1", w.Header().Get("Location"))

	w = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodPost, "/login/1", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, w.Result().Cookies(), 1, "one session cookie per response")
	cookies := latest(nil, w)

	w = f.do(httptest.NewRequest(http.MethodGet, "/private", nil), cookies...)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	w = f.do(httptest.NewRequest(http.MethodGet, "/whoami", nil), cookies...)
	assert.JSONEq(t, `{"user":"alice","messages":[{"level":"success","text":"welcome"}]}`, w.Body.String())
	cookies = latest(cookies, w)

	// popped flashes are gone from the rewritten cookie
	w = f.do(httptest.NewRequest(http.MethodGet, "/whoami", nil), cookies...)
	assert.JSONEq(t, `{"user":"alice","messages":[]}`, w.Body.String())
	cookies = latest(cookies, w)

	w = f.do(httptest.NewRequest(http.MethodPost, "/logout", nil), cookies...)
	cookies = latest(cookies, w)
	w = f.do(httptest.NewRequest(http.MethodGet, "/private", nil), cookies...)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestSessionSaveKeepsOtherCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewSessions(testSecret, "test_session")
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		http.SetCookie(c.Writer, &http.Cookie{Name: "other", Value: "1"})
		require.NoError(t, s.Login(c, 1))
		require.NoError(t, s.Flash(c, LevelInfo, "hi"))
		require.NoError(t, s.Flash(c, LevelInfo, "again"))
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	names := []string{}
	for _, c := range w.Result().Cookies() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"other", "test_session"}, names)
}

func TestBearerToken(t *testing.T) {
	f := newFixture(t)

	token, err := f.tokens.GenerateToken(1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w = f.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	unknown, err := f.tokens.GenerateToken(99)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/private", nil)
	req.Header.Set("Authorization", "Bearer "+unknown)
	w = f.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddleware(t *testing.T) {
	f := newFixture(t)

	alice, err := f.tokens.GenerateToken(1)
	require.NoError(t, err)
	root, err := f.tokens.GenerateToken(2)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+alice)
	assert.Equal(t, http.StatusForbidden, f.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+root)
	assert.Equal(t, http.StatusOK, f.do(req).Code)
}
