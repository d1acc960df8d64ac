package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// Flash levels, in the order they are rendered.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

var flashLevels = []string{LevelSuccess, LevelInfo, LevelWarning, LevelError}

const sessionUserKey = "user_id"

// Message is one flash message queued for the next rendered page.
type Message struct {
	Level string `json:"level" example:"warning"`
	Text  string `json:"text" example:"You cannot follow yourself."`
}

// Sessions stores the logged-in user and flash messages in a signed cookie.
type Sessions struct {
	store *sessions.CookieStore
	name  string
}

// NewSessions creates a cookie backed session store.
func NewSessions(secret, name string) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 14,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store, name: name}
}

// get returns the request's session. A cookie that fails to decode yields
// a fresh session, which replaces it on the next save.
func (s *Sessions) get(c *gin.Context) *sessions.Session {
	session, _ := s.store.Get(c.Request, s.name)
	return session
}

// save writes the session cookie, replacing one already set earlier in the
// same response.
func (s *Sessions) save(c *gin.Context, session *sessions.Session) error {
	header := c.Writer.Header()
	var kept []string
	for _, line := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(line, s.name+"=") {
			kept = append(kept, line)
		}
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Login binds userID to the session.
func (s *Sessions) Login(c *gin.Context, userID uint) error {
	session := s.get(c)
	session.Values[sessionUserKey] = userID
	return s.save(c, session)
}

// Logout drops the user from the session but keeps pending flashes.
func (s *Sessions) Logout(c *gin.Context) error {
	session := s.get(c)
	delete(session.Values, sessionUserKey)
	return s.save(c, session)
}

// UserID returns the user bound to the session, if any.
func (s *Sessions) UserID(c *gin.Context) (uint, bool) {
	id, ok := s.get(c).Values[sessionUserKey].(uint)
	return id, ok && id != 0
}

// Flash queues a message and writes the session cookie.
func (s *Sessions) Flash(c *gin.Context, level, text string) error {
	session := s.get(c)
	session.AddFlash(text, level)
	return s.save(c, session)
}

// Messages pops every queued flash message.
func (s *Sessions) Messages(c *gin.Context) ([]Message, error) {
	session := s.get(c)
	messages := []Message{}
	for _, level := range flashLevels {
		for _, f := range session.Flashes(level) {
			if text, ok := f.(string); ok {
				messages = append(messages, Message{Level: level, Text: text})
			}
		}
	}
	if len(messages) == 0 {
		return messages, nil
	}
	return messages, s.save(c, session)
}
