package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gonotes/internal/api"
	"gonotes/internal/auth"
	"gonotes/internal/config"
	"gonotes/internal/database"
	"gonotes/internal/mail"
	"gonotes/internal/store"
	"gonotes/internal/token"
)

func init() {
	// Load environment variables from .env file.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	if err := database.EnsureIndexes(ctx, client, cfg.Mongo.Database); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	mailer, err := mail.NewSMTP(cfg.SMTP.Server, cfg.SMTP.User, cfg.SMTP.Password)
	if err != nil {
		logger.Fatal("mailer error", zap.Error(err))
	}
	tokens, err := token.NewJWT(cfg.Token.Secret)
	if err != nil {
		logger.Fatal("token manager error", zap.Error(err))
	}

	users := store.NewUsers(database.UserCollection(client, cfg.Mongo.Database))
	notes := store.NewNotes(database.NoteCollection(client, cfg.Mongo.Database))
	svc := auth.NewService(users, tokens, mailer, logger)

	srv := &http.Server{
		Handler:      api.NewRouter(svc, notes, tokens, logger),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine so shutdown signals can be handled.
	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
