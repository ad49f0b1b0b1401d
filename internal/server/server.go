// Package server is the HTTP surface: the CRUD proxy for operations the
// browser-side access policy does not allow, the bot webhook, and the
// dashboard websocket.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hydromon/internal/hub"
	"hydromon/internal/identity"
	"hydromon/internal/store"
)

// BotAPI is the outbound chat-bot surface the handlers need.
type BotAPI interface {
	Send(ctx context.Context, text string) error
	ReplyTo(ctx context.Context, chatID int64, text string) error
	SetWebhook(ctx context.Context, url string) error
	WebhookInfo(ctx context.Context) (json.RawMessage, error)
}

// Identity is the identity-service admin surface the user handlers need.
type Identity interface {
	CreateUser(ctx context.Context, email, password string) (*identity.User, error)
	UpdateUser(ctx context.Context, id, email, password string) error
	DeleteUser(ctx context.Context, id string) error
}

type Server struct {
	store    *store.Store
	identity Identity
	bot      BotAPI
	hub      *hub.Hub
	log      *zap.Logger
	engine   *gin.Engine
}

func New(st *store.Store, id Identity, b BotAPI, h *hub.Hub, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	// The dashboard is served from the managed platform's hosting.
	engine.Use(cors.Default())

	s := &Server{
		store:    st,
		identity: id,
		bot:      b,
		hub:      h,
		log:      log,
		engine:   engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/ws", s.handleWS)
	s.engine.POST("/webhook", s.handleBotUpdate)

	api := s.engine.Group("/api")
	{
		api.POST("/users", s.createUser)
		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.PUT("/users/:id", s.updateUser)
		api.DELETE("/users/:id", s.deleteUser)

		api.POST("/plants", s.createPlant)
		api.GET("/plants", s.listPlants)
		api.GET("/plants/:id", s.getPlant)
		api.PUT("/plants/:id", s.updatePlant)
		api.DELETE("/plants/:id", s.deletePlant)

		api.DELETE("/sensor-data", s.deleteReadings)
		api.GET("/sensor-data/latest", s.latestReading)

		api.POST("/multiplant", s.resolveMultiplant)
		api.GET("/system-config", s.getSystemConfig)
		api.PUT("/system-config", s.setSystemConfig)

		api.POST("/set-webhook", s.setWebhook)
		api.GET("/bot-status", s.botStatus)
	}
}

func (s *Server) Handler() http.Handler { return s.engine }
