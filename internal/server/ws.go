package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are delegated to the managed platform's auth in front
	// of the dashboard.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWS streams each new sensor reading to a dashboard client as JSON.
func (s *Server) handleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Drain the client side only to learn about closes.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	readings := s.hub.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-readings:
			if err := conn.WriteJSON(r); err != nil {
				return
			}
		}
	}
}
