package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"movie-bot-backend/telegram"
)

// WebhookController receives update deliveries from Telegram in webhook
// mode.
type WebhookController struct {
	bot     *BotController
	baseCtx context.Context
	log     zerolog.Logger
}

// NewWebhookController wires the update router behind the webhook
// endpoint. baseCtx outlives individual requests; update processing hangs
// off it so a reply is not cut short when the webhook request closes.
func NewWebhookController(baseCtx context.Context, bot *BotController, log zerolog.Logger) *WebhookController {
	return &WebhookController{
		bot:     bot,
		baseCtx: baseCtx,
		log:     log.With().Str("component", "webhook").Logger(),
	}
}

// HandleUpdate acknowledges the delivery immediately and processes the
// update in the background. Telegram retries any delivery that does not
// get a prompt 200, so slow handlers must never block the response.
func (c *WebhookController) HandleUpdate(ctx *gin.Context) {
	var upd telegram.Update
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		c.log.Warn().Err(err).Msg("Rejected malformed update payload")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
		return
	}

	go c.bot.HandleUpdate(c.baseCtx, upd)
	ctx.Status(http.StatusOK)
}

// Healthz answers liveness probes from the hosting platform.
func (c *WebhookController) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
