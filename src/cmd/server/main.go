package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/crypto"
	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/controller"
	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/middleware"
	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/router"
	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/repository/postgres"
	"github.com/junhyeong9812/simple-bank-back/src/internal/config"
	"github.com/junhyeong9812/simple-bank-back/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	loginService := services.NewLoginService(userRepo, crypto.NewBcryptVerifier())
	userService := services.NewUserService(userRepo)
	accountService := services.NewAccountService(accountRepo)

	mux := router.New(
		controller.NewUserController(loginService, userService),
		controller.NewAccountController(accountService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
