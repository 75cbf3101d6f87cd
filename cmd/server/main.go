package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"quiz-admin-backend/internal/config"
	"quiz-admin-backend/internal/database"
	"quiz-admin-backend/internal/handlers"
	"quiz-admin-backend/internal/middleware"
	"quiz-admin-backend/internal/realtime"
	"quiz-admin-backend/internal/services"
	"quiz-admin-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// best-effort: .env is optional, real env vars win
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)
	database.SeedOperator(db, cfg, log)

	hub := ws.NewHub(log)

	var events realtime.Bus
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		events = realtime.NewRedisBus(rdb, log)

		relay := realtime.NewRelay(rdb, hub, log)
		relay.Start()
		defer relay.Stop()
	} else {
		log.Info("REDIS_ADDR not set, using in-process event delivery")
		events = realtime.NewLocalBus(hub)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.OperatorEmail, log)
	rosterService := services.NewRosterService(db)
	configService := services.NewConfigService(db)
	liveService := services.NewLiveService(db, events)
	chatService := services.NewChatService(db, events)

	authTimeout := 5 * time.Second
	if sec, err := strconv.Atoi(cfg.AuthTimeout); err == nil && sec > 0 {
		authTimeout = time.Duration(sec) * time.Second
	}

	authHandler := handlers.NewAuthHandler(authService, authTimeout)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	configHandler := handlers.NewConfigHandler(configService)
	liveHandler := handlers.NewLiveHandler(liveService)
	chatHandler := handlers.NewChatHandler(chatService)
	wsHandler := handlers.NewWSHandler(hub, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Player-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/ws/live/:id", wsHandler.LiveSocket)
	r.GET("/ws/chat/:id", wsHandler.ChatSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
			auth.POST("/logout", middleware.JWTAuth(authService), authHandler.Logout)
		}

		admin := api.Group("")
		admin.Use(middleware.JWTAuth(authService), middleware.AdminAuth(authService))
		{
			admin.GET("/users", rosterHandler.ListUsers)
			admin.PUT("/users/:id/flags", rosterHandler.SaveFlags)

			admin.GET("/config/timeleft", configHandler.GetTimeLeft)
			admin.PUT("/config/timeleft", configHandler.SetTimeLeft)

			admin.GET("/live/:id", liveHandler.GetState)
			admin.POST("/live/:id/lock", liveHandler.Lock)
			admin.GET("/live/:id/chat", chatHandler.ListMessages)
			admin.POST("/live/:id/chat", chatHandler.Send)
		}

		player := api.Group("/player")
		player.Use(middleware.PlayerAuth(cfg.PlayerAPIKey))
		{
			player.PUT("/live/:id", liveHandler.UpdateState)
			player.DELETE("/live/:id", liveHandler.EndSession)
			player.POST("/live/:id/chat", chatHandler.PlayerSend)
		}
	}

	log.Infof("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
