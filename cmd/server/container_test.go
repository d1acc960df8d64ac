package main

import (
	"bufio"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"tweetline/backend/internal/config"
	"tweetline/backend/internal/hub"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerShutdownClosesStreams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	events := hub.NewHub(log)

	router := gin.New()
	router.GET("/events", func(c *gin.Context) {
		client := events.Subscribe(1)
		defer events.Unsubscribe(1, client)
		c.Writer.WriteHeaderNow()
		c.Writer.Flush()
		for range client {
		}
	})

	server := ProvideServer(&config.Config{Port: "0"}, router, events)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, events.Subscribers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))

	_, err = io.ReadAll(bufio.NewReader(resp.Body))
	assert.NoError(t, err)
}
