package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"article-service/internal/application/services"
	"article-service/internal/config"
	"article-service/internal/delivery/handler"
	"article-service/internal/delivery/router"
	"article-service/internal/infrastructure"
	"article-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := postgres.NewUserRepository(db)
	articleRepo := postgres.NewArticleRepository(db)

	userService := services.NewUserService(userRepo, jwtService)
	articleService := services.NewArticleService(articleRepo)

	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)

	e := router.New(userHandler, articleHandler, jwtService)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
