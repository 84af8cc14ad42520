package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"relaybot/internal/adapters/telegram"
	"relaybot/internal/config"
)

// WebhookPath is where Telegram POSTs updates.
const WebhookPath = "/telegram/webhook"

func SetupRouter(cfg *config.Config, disp *telegram.Dispatcher) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	r.POST(WebhookPath, func(c *gin.Context) {
		var upd telegram.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			log.Warn().Err(err).Str("module", "adapters.http").Msg("undecodable update")
			c.String(http.StatusBadRequest, "bad update")
			return
		}
		disp.HandleUpdate(c.Request.Context(), &upd)
		// Telegram retries non-200 answers; core errors already became
		// user-facing replies, so the webhook always acknowledges.
		c.String(http.StatusOK, "ok")
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is running.")
	})

	log.Info().Str("module", "adapters.http").Str("webhook", WebhookPath).Msg("router setup")
	return r
}
