package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ln-sentinel/config"
	httpHandler "ln-sentinel/internal/adapter/http/handler"
	"ln-sentinel/internal/adapter/notify/telegram"
	fileStorage "ln-sentinel/internal/adapter/storage/file"
	redisStorage "ln-sentinel/internal/adapter/storage/redis"
	"ln-sentinel/internal/adapter/upstream/lnbits"
	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/internal/observability"
	"ln-sentinel/internal/service"
	"ln-sentinel/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("instance", cfg.Monitor.InstanceName).
		Int("port", cfg.Server.Port).
		Msg("Starting LN Sentinel")

	ctx := context.Background()

	if err := os.MkdirAll(cfg.State.Dir, 0o700); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.State.Dir).Msg("Failed to create state directory")
	}

	// Durable file stores
	seen, err := fileStorage.NewSeenLedger(filepath.Join(cfg.State.Dir, "processed_payments.txt"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load seen ledger")
	}
	balances := fileStorage.NewBalanceStore(cfg.State.Dir)
	donations, err := fileStorage.NewDonationLedger(filepath.Join(cfg.State.Dir, "donations.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load donation ledger")
	}
	log.Info().Int("seen_payments", seen.Count()).Msg("State loaded")

	healthCheckers := []ports.HealthChecker{fileStorage.NewHealthCheck(cfg.State.Dir)}

	// Optional Redis vote guard
	var voteGuard ports.VoteGuard
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		voteGuard = redisStorage.NewVoteGuard(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected, duplicate-vote protection enabled")
	} else {
		log.Info().Msg("Redis disabled, duplicate-vote protection off")
	}

	registry := prometheus.NewRegistry()
	metrics := observability.New(registry)

	// Wallets: the primary key plus one descriptor per extra key
	wallets := []domain.WalletDescriptor{
		{Tag: "main", Name: cfg.Monitor.InstanceName, APIKey: cfg.Upstream.APIKey},
	}
	for i, key := range cfg.Upstream.ExtraKeyList() {
		tag := fmt.Sprintf("wallet%d", i+2)
		wallets = append(wallets, domain.WalletDescriptor{Tag: tag, Name: tag, APIKey: key})
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	client := lnbits.NewClient(cfg.Upstream.BaseURL, httpClient, metrics, log)

	sanitizer := service.NewSanitizer(cfg.Sanitizer.WordList())
	classifier := service.NewClassifier(sanitizer, cfg.Donations.LinkID, log)
	poller := service.NewPoller(
		client,
		seen,
		balances,
		donations,
		classifier,
		sanitizer,
		metrics,
		cfg.Monitor.FetchCount,
		cfg.Monitor.BalanceThreshold,
		log,
	)

	notifier := telegram.NewNotifier(cfg.Telegram.APIBase, cfg.Telegram.BotToken, cfg.Telegram.ChatID, httpClient, log)
	publisher := telegram.NewPublisher(notifier, cfg.Monitor.InstanceName, cfg.Donations.PageURL, cfg.Donations.InfoURL)
	commander := telegram.NewCommander(notifier, telegram.CommanderInfo{
		InstanceName:   cfg.Monitor.InstanceName,
		ThresholdSats:  cfg.Monitor.BalanceThreshold,
		PollInterval:   cfg.Monitor.PollInterval,
		DigestInterval: cfg.Monitor.DigestInterval,
		DonationsURL:   cfg.Donations.PageURL,
		InfoURL:        cfg.Donations.InfoURL,
	})

	aggregator := service.NewAggregator(
		poller,
		publisher,
		wallets,
		metrics,
		cfg.Monitor.PollInterval,
		cfg.Monitor.DigestInterval,
		log,
	)

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	go aggregator.Run(schedulerCtx)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		InstanceName:   cfg.Monitor.InstanceName,
		Wallets:        wallets,
		PrimaryKey:     cfg.Upstream.APIKey,
		LinkID:         cfg.Donations.LinkID,
		UpstreamHost:   upstreamHost(cfg.Upstream.BaseURL),
		AdminToken:     cfg.Admin.Token,
		Seen:           seen,
		Balances:       balances,
		Donations:      donations,
		Client:         client,
		VoteGuard:      voteGuard,
		Sanitizer:      sanitizer,
		Responder:      commander,
		Reader:         poller,
		HealthCheckers: healthCheckers,
		Gatherer:       registry,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Stopped")
}

// upstreamHost extracts the bare host for lightning-address rendering.
func upstreamHost(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Hostname()
}
