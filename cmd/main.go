package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"near-crowdfund/internal/adapter/gate"
	httpadapter "near-crowdfund/internal/adapter/http"
	"near-crowdfund/internal/adapter/nearrpc"
	"near-crowdfund/internal/adapter/pinata"
	"near-crowdfund/internal/adapter/usecase"
	"near-crowdfund/internal/config"
)

// main is the entry point of the crowdfunding gateway. It loads
// configuration, initializes the ledger session, pinning client and access
// gate, wires them into the campaign use case, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("timezone error", slog.Any("error", err))
		os.Exit(1)
	}

	ledger := nearrpc.NewSession(cfg.Ledger)
	pinner := pinata.NewPinner(cfg.Pinner)
	accessGate := gate.NewAllowlist(cfg.Gate.AllowedAccounts)

	svc := usecase.NewCampaignUseCase(ledger, pinner, logger, loc)
	limiter := rate.NewLimiter(rate.Limit(cfg.HTTP.WriteRPS), cfg.HTTP.WriteBurst)

	handler := httpadapter.NewHandler(svc, accessGate, svc.Refresh(), limiter, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("gateway listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("contract", cfg.Ledger.ContractID))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
