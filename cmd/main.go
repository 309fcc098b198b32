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

	"github.com/ethereum/go-ethereum/ethclient"

	"crowdfund/internal/adapter/chain"
	"crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	wsadapter "crowdfund/internal/adapter/websocket"
	"crowdfund/internal/config"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// main is the entry point of the crowdfund service. It loads configuration,
// optionally runs database migrations, connects to the chain provider and
// the receipt journal, starts the campaign synchronizer and stream hub, then
// serves HTTP. On a termination signal it shuts the server down gracefully.
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
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The receipt journal is optional; a nil journal disables it.
	var journal port.ReceiptJournal
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Warn("database unavailable, receipt journal disabled", slog.Any("error", err))
	} else {
		defer pool.Close()
		journal = postgres.NewReceiptJournal(pool)
	}

	// A nil Backend (not a typed nil client) marks the provider unavailable.
	var backend chain.Backend
	if cfg.Chain.RPCURL != "" {
		client, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
		if err != nil {
			logger.Error("chain provider connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		backend = client
	} else {
		logger.Warn("CHAIN_RPC_URL not set, provider unavailable")
	}

	wallet, err := chain.NewWallet(backend, cfg.Chain.PrivateKey)
	if err != nil {
		logger.Error("wallet error", slog.Any("error", err))
		return
	}
	contract, err := chain.NewContract(cfg.Chain.Contract, backend)
	if err != nil {
		logger.Error("contract binding error", slog.Any("error", err))
		return
	}

	reader := usecase.NewCampaignReader(contract, wallet, logger, cfg.Chain.FetchConcurrency)
	synchronizer := usecase.NewSynchronizer(reader, logger, cfg.Chain.RefreshInterval)
	dispatcher := usecase.NewActionDispatcher(contract, wallet, journal, synchronizer, logger)
	svc := usecase.NewCampaignService(wallet, contract, synchronizer, dispatcher, journal, cfg.Chain.ExpectedChain(), logger)

	hub := wsadapter.NewHub(logger)
	synchronizer.OnSnapshot(func(s usecase.Snapshot) {
		msg, err := httpadapter.SnapshotMessage(s.Records, s.Generation, s.FetchedAt, time.Now())
		if err != nil {
			logger.Error("encode snapshot error", slog.Any("error", err))
			return
		}
		hub.Broadcast(msg)
	})
	go hub.Run(ctx)
	go synchronizer.Run(ctx)
	synchronizer.Invalidate()

	handler := httpadapter.NewHandler(svc, hub, cfg.Auth.Secret, cfg.Chain.ActionTimeout, cfg.HTTP.AllowedOrigins, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("contract", cfg.Chain.Contract.Hex()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
