package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/auth"
	"streamly-backend/pkg/config"
	"streamly-backend/pkg/database"
	"streamly-backend/pkg/handlers"
	"streamly-backend/pkg/logging"
	"streamly-backend/pkg/middleware"
	"streamly-backend/pkg/s3"
	"streamly-backend/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Debug)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	stores := store.NewGormStores(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)
	presigner, err := s3.NewPresigner(cfg)
	if err != nil {
		log.Fatalf("failed to build S3 presigner: %v", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg)))

	authH := handlers.NewAuthHandler(stores.Users, tokens, logger)
	videoH := handlers.NewVideoHandler(stores.Videos, logger)
	uploadH := handlers.NewUploadHandler(stores.Videos, presigner, logger)
	commentH := handlers.NewCommentHandler(stores.Comments, stores.Videos, logger)
	recommendH := handlers.NewRecommendHandler(stores.Videos, logger)
	subH := handlers.NewSubscriptionHandler(stores.Users, logger)
	webhookH := handlers.NewWebhookHandler(cfg.StripeWebhookSecret, logger)

	requireUser := middleware.RequireUser(tokens, stores.Users)

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Streamly Backend is running"})
	})
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.GET("/videos", videoH.List)
	r.POST("/videos", requireUser, videoH.Create)
	r.GET("/videos/:id", videoH.Get)
	r.POST("/uploads/presign", requireUser, uploadH.Presign)
	r.POST("/uploads/complete", requireUser, uploadH.Complete)
	r.POST("/comments", requireUser, commentH.Create)
	r.GET("/comments/video/:id", commentH.ListForVideo)
	r.GET("/recommend/for_video/:id", recommendH.ForVideo)
	r.POST("/subscriptions/become_premium", requireUser, subH.BecomePremium)
	r.POST("/subscriptions/revoke_premium", requireUser, subH.RevokePremium)
	r.POST("/webhooks/stripe", webhookH.Stripe)

	logger.Info("starting server", "app", cfg.AppName, "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	origins := cfg.AllowedOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
