package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vipnexus/funil-backend/docs"
	"github.com/vipnexus/funil-backend/internal/events"
	httphandlers "github.com/vipnexus/funil-backend/internal/handlers/http"
	"github.com/vipnexus/funil-backend/internal/handlers/middleware"
	"github.com/vipnexus/funil-backend/internal/infrastructure/config"
	"github.com/vipnexus/funil-backend/internal/infrastructure/i18n"
	"github.com/vipnexus/funil-backend/internal/infrastructure/logging"
	"github.com/vipnexus/funil-backend/internal/infrastructure/persistence/postgres"
	"github.com/vipnexus/funil-backend/internal/infrastructure/token"
	"github.com/vipnexus/funil-backend/internal/services"
)

//	@title			Funil de Vendas API
//	@version		1.0
//	@description	API de captura e triagem de leads do funil de vendas.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Token JWT no formato: Bearer {token}

func main() {
	// Carregar variáveis do .env antes do viper (opcional)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting funil backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados (inclui migrações)
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	leadRepo := postgres.NewLeadRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub de eventos para o dashboard em tempo real
	hub := events.NewHub(logger)

	// Inicializar services
	tokenManager := token.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authService := services.NewAuthService(adminRepo, tokenManager, logger)
	leadService := services.NewLeadService(leadRepo, uow, hub, logger)

	// Garantir que exista ao menos um administrador
	if err := authService.SeedAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Nome); err != nil {
		logger.Error("failed to seed admin", "error", err)
		log.Fatal(err)
	}

	// Inicializar handlers
	leadHandler := httphandlers.NewLeadHandler(leadService)
	authHandler := httphandlers.NewAuthHandler(authService)
	wsHandler := httphandlers.NewWSHandler(hub, logger)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "funil-backend",
			"status":  "ok",
			"env":     cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Leads
		leads := api.Group("/leads")
		{
			leads.POST("", leadHandler.CreateLead) // público (landing page)
			leads.GET("", authMiddleware.RequireAdmin(), leadHandler.ListLeads)
			leads.GET("/:id", authMiddleware.RequireAdmin(), leadHandler.GetLead)
			leads.PATCH("/:id", authMiddleware.RequireAdmin(), leadHandler.UpdateLead)
		}

		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.GET("/me", authMiddleware.RequireAdmin(), authHandler.Me)
		}

		// Stats
		api.GET("/stats", authMiddleware.RequireAdmin(), leadHandler.GetStats)

		// Stream de leads para o dashboard
		api.GET("/ws/leads", authMiddleware.RequireAdmin(), wsHandler.LeadStream)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
func corsConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}

	return corsCfg
}
