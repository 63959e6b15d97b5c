package routes

import (
	"net/http"

	"stripe_books_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	PathWebhooks = "/webhooks"
	PathPing     = "/ping"
)

func addReconciliationRoutes(r *gin.Engine, rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	// Stripe endpoints configured against the bare host keep working.
	r.POST("/", webhookHandler.HandleStripeWebhook)

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", webhookHandler.HandleStripeWebhook)
	}
}

// addAuthorizationRoutes mounts the consent flow at the paths registered as the
// Zoho client's redirect URI.
func addAuthorizationRoutes(r *gin.Engine, oauthHandler *handlers.OAuthHandler) {
	r.GET("/get-access-token", oauthHandler.StartAuthorization)
	r.GET("/callback", oauthHandler.Callback)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOpsRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
