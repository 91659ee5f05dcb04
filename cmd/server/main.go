package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nevix187/AmongUsIRL/internal/common/clock"
	"github.com/nevix187/AmongUsIRL/internal/common/uuid"
	"github.com/nevix187/AmongUsIRL/internal/gamecode"
	"github.com/nevix187/AmongUsIRL/internal/handlers/httpapi"
	"github.com/nevix187/AmongUsIRL/internal/repositories/game"
	"github.com/nevix187/AmongUsIRL/internal/roles"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
	"github.com/nevix187/AmongUsIRL/internal/services/monitor"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	// Initialize Redis client
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		log.Fatalf("Invalid REDIS_DB: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}
	defer gameRepo.Close()

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		AdminPassword: getEnv("ADMIN_PASSWORD", "1871"),
		GameRepo:      gameRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		CodeGenerator: gamecode.New(&gamecode.Config{}),
		RoleAssignor:  roles.New(&roles.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize messaging service
	messagingSvc, err := messagingService.New(&messagingService.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize the game monitor
	gameMonitor, err := monitor.New(&monitor.Config{
		GameService: gameSvc,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create game monitor: %v", err)
	}
	if err := gameMonitor.Start(ctx); err != nil {
		log.Fatalf("Failed to start game monitor: %v", err)
	}

	// Initialize the HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}
	if err := handler.Start(ctx); err != nil {
		log.Fatalf("Failed to start update push: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: handler.Routes(),
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}
	gameMonitor.Stop()

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
