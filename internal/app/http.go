package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/admin"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/config"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/middleware"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/proxy"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra := setupInfra(cfg)

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewStore(infra.KV, cfg.SessionKey)
	validator := session.NewValidator(session.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	sessionManager := session.NewManager(validator, sessionStore, cfg.SessionDuration)

	watcher := session.NewWatcher(sessionManager, cfg.SessionPollInterval)
	watcher.Start()

	guard := middleware.NewGuard(infra.KV, cfg.RoleKey, cfg.LoginFlagKey)

	relay := proxy.NewRelay()
	weatherHandler := proxy.NewWeatherHandler(relay, cfg.WeatherForecastURL, cfg.GeocodeURL)
	chatHandler := proxy.NewChatHandler(relay, cfg.ChatGatewayURL, cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatHistoryLimit)

	adminHandler := admin.NewHandler(sessionManager)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// ----------------------------
	// Public Routes
	// ----------------------------

	adminHandler.RegisterRoutes(router)

	router.POST("/authz/check", guard.Check())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/landing", func(c *gin.Context) {
		c.JSON(200, gin.H{"page": "landing"})
	})

	// ----------------------------
	// Proxy Routes
	// ----------------------------

	api := router.Group("/api")

	api.POST("/weather/forecast", weatherHandler.Forecast)
	api.POST("/weather/geocode", weatherHandler.Geocode)
	api.POST("/chat", chatHandler.Chat)

	// ----------------------------
	// Guarded App Routes
	// ----------------------------

	guarded := router.Group("/")
	guarded.Use(guard.Require())

	page := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.JSON(200, gin.H{"page": name})
		}
	}

	guarded.GET("/dashboard", page("dashboard"))
	guarded.GET("/marketplace", page("marketplace"))
	guarded.GET("/weather", page("weather"))
	guarded.GET("/my-farm", page("my-farm"))
	guarded.GET("/community", page("community"))
	guarded.GET("/youth", page("youth"))
	guarded.GET("/youth/*section", page("youth"))
	guarded.GET("/investor", page("investor"))
	guarded.GET("/investor/*section", page("investor"))

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		watcher.Stop()
		return infra.close()
	}, nil
}
