package handler

import (
	"io"
	"time"

	"tweetline/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// keepAliveInterval spaces the comment lines that keep idle streams open.
const keepAliveInterval = 25 * time.Second

// StreamEvents godoc
// @Summary      Stream notifications
// @Description  Server-sent events for the caller: "follow" when someone follows them, "like" when one of their tweets is liked.
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	client := h.hub.Subscribe(user.ID)
	defer h.hub.Unsubscribe(user.ID, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case frame, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent(frame.Type, string(frame.Data))
			return true
		case <-ticker.C:
			_, _ = io.WriteString(w, ": keep-alive\n\n")
			return true
		}
	})
}
