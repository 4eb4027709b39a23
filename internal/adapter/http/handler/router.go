package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/adapter/http/middleware"
	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/internal/service"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	InstanceName string
	Wallets      []domain.WalletDescriptor
	PrimaryKey   string
	LinkID       string
	UpstreamHost string
	AdminToken   string // empty = admin routes disabled

	Seen      ports.SeenLedger
	Balances  ports.BalanceStore
	Donations ports.DonationStore
	Client    ports.WalletClient
	VoteGuard ports.VoteGuard // nil = duplicate-vote protection disabled
	Sanitizer *service.Sanitizer
	Responder CommandResponder
	Reader    WalletReader

	HealthCheckers []ports.HealthChecker
	Gatherer       prometheus.Gatherer
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	statusHandler := NewStatusHandler(deps.InstanceName, deps.Wallets, deps.Seen, deps.Balances, deps.Donations, deps.Logger)
	r.GET("/status", statusHandler.GetStatus)

	donationHandler := NewDonationHandler(deps.Donations, deps.Client, deps.VoteGuard, deps.PrimaryKey, deps.LinkID, deps.UpstreamHost, deps.Logger)
	r.GET("/donations/updates", donationHandler.Updates)

	api := r.Group("/api")
	{
		api.GET("/donations", donationHandler.ListDonations)
		api.POST("/donations/:id/vote", donationHandler.Vote)
	}

	if deps.Responder != nil {
		primary := domain.WalletDescriptor{}
		if len(deps.Wallets) > 0 {
			primary = deps.Wallets[0]
		}
		webhookHandler := NewWebhookHandler(deps.Responder, deps.Reader, primary, deps.Logger)
		r.POST("/webhook", webhookHandler.HandleUpdate)
	}

	if deps.AdminToken != "" {
		adminHandler := NewAdminHandler(deps.Sanitizer, deps.Donations, deps.AdminToken, deps.Logger)
		admin := api.Group("/admin", adminHandler.Authorize)
		{
			admin.GET("/forbidden-words", adminHandler.ListForbiddenWords)
			admin.POST("/forbidden-words", adminHandler.AddForbiddenWords)
		}
	}

	return r
}
