package routes

import (
	"context"
	"fmt"
	"log"

	_ "stripe_books_bridge/docs"
	"stripe_books_bridge/internal/adapter/http/handlers"
	"stripe_books_bridge/internal/adapter/persistence/repository"
	"stripe_books_bridge/internal/infrastructure/accounting"
	"stripe_books_bridge/internal/infrastructure/cache"
	"stripe_books_bridge/internal/infrastructure/config"
	"stripe_books_bridge/internal/infrastructure/database"
	"stripe_books_bridge/internal/infrastructure/payments"
	"stripe_books_bridge/internal/usecase"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	webhookHandler, oauthHandler, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	router := NewRouter(cfg, webhookHandler, oauthHandler)
	log.Printf("[bridge] listening port=%s zone=%s app_env=%s secrets=%s", cfg.Port, cfg.Zoho.Zone, cfg.AppEnv, cfg.Secrets.Backend)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts every route. The consent flow is only reachable in dev.
func NewRouter(cfg config.Config, webhookHandler *handlers.WebhookHandler, oauthHandler *handlers.OAuthHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addOpsRoutes(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReconciliationRoutes(router, v1, webhookHandler)

	if cfg.DevMode() {
		addAuthorizationRoutes(router, oauthHandler)
	}
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (*handlers.WebhookHandler, *handlers.OAuthHandler, error) {
	secrets, err := newSecretStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	tokenCache, err := newTokenCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	zohoOAuth := accounting.NewZohoOAuth("", cfg.Zoho.RedirectURI, nil)
	books := accounting.NewZohoBooksClient(accounting.BooksBaseURL(cfg.Zoho.Zone), nil)

	resolver := usecase.NewReferenceResolverUseCase(books, usecase.ReferenceSettings{
		TaxName:          cfg.Zoho.TaxName,
		ClearingItemName: cfg.Zoho.ClearingItemName,
		DepositTo:        cfg.Zoho.DepositTo,
	})
	ledger := usecase.NewLedgerWriterUseCase(books, usecase.LedgerSettings{
		PaymentMode:  cfg.Zoho.PaymentMode,
		TaxInclusive: cfg.Zoho.TaxInclusive,
	})

	reconciliation := usecase.NewReconciliationUseCase(
		secrets,
		payments.NewStripeEventVerifier(0),
		usecase.NewCachedTokenProvider(zohoOAuth, tokenCache),
		payments.NewStripeAccountProfile(nil),
		resolver,
		ledger,
		usecase.ReconciliationSettings{
			Zone:            cfg.Zoho.Zone,
			DefaultCurrency: cfg.Zoho.DefaultCurrency,
			Location:        cfg.Location,
		},
	)
	authorization := usecase.NewAuthorizationUseCase(secrets, zohoOAuth, cfg.Zoho.Zone, cfg.DevMode())

	return handlers.NewWebhookHandler(reconciliation), handlers.NewOAuthHandler(authorization), nil
}

func newSecretStore(ctx context.Context, cfg config.Config) (interfaces.ISecretStore, error) {
	switch cfg.Secrets.Backend {
	case config.SecretsBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWS.Region,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamodb secret store: %w", err)
		}
		return repository.NewSecretDynamoRepository(ddb, cfg.Secrets.Table), nil
	default:
		return repository.NewEnvSecretRepository(), nil
	}
}

func newTokenCache(ctx context.Context, cfg config.Config) (interfaces.ITokenCache, error) {
	if cfg.TokenCache.RedisAddr == "" {
		return cache.NewMemoryTokenCache(), nil
	}
	rdb, err := cache.Connect(ctx, cfg.TokenCache.RedisAddr)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisTokenCache(rdb), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
