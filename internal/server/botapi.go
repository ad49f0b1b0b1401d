package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hydromon/internal/bot"
	"hydromon/internal/model"
)

const genericBotError = "There was an error, please try again later."

func (s *Server) setWebhook(c *gin.Context) {
	var in model.WebhookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := s.bot.SetWebhook(c.Request.Context(), in.URL); err != nil {
		fail(c, http.StatusInternalServerError, "failed to set webhook", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": in.URL})
}

func (s *Server) botStatus(c *gin.Context) {
	info, err := s.bot.WebhookInfo(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to query bot status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhook_info": info})
}

// handleBotUpdate answers inbound bot commands. The endpoint always returns
// 200 so the bot platform does not redeliver updates.
func (s *Server) handleBotUpdate(c *gin.Context) {
	var update bot.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.log.Warn("discarding malformed bot update", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}
	if update.Message == nil || update.Message.Text == "" {
		c.Status(http.StatusOK)
		return
	}

	fields := strings.Fields(update.Message.Text)
	if len(fields) == 0 {
		c.Status(http.StatusOK)
		return
	}

	chatID := update.Message.Chat.ID
	command := fields[0]
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}

	var reply string
	switch command {
	case "/start", "/help":
		reply = "Hydroponic monitor bot. Commands:\n/status - latest reading and active plant"
	case "/status":
		reply = s.statusReply(c)
	default:
		reply = "Unknown command. Send /help for the command list."
	}

	if err := s.bot.ReplyTo(c.Request.Context(), chatID, reply); err != nil {
		s.log.Error("failed to reply to bot command",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
	c.Status(http.StatusOK)
}

func (s *Server) statusReply(c *gin.Context) string {
	reading, err := s.store.LatestReading(c.Request.Context())
	if err != nil {
		s.log.Error("bot status: failed to load latest reading", zap.Error(err))
		return genericBotError
	}

	plant, found, err := s.store.ActiveProfileName(c.Request.Context())
	if err != nil {
		s.log.Error("bot status: failed to resolve active profile", zap.Error(err))
		return genericBotError
	}
	if !found {
		plant = "Unknown Plant"
	}

	return fmt.Sprintf(
		"Active plant: %s\npH: %.2f\nEC: %.2f\nWater temperature: %.1f°C\nMeasured at: %s",
		plant,
		reading.PH,
		reading.EC,
		reading.WaterTemperature,
		reading.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}
