package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletsync7000/internal/esplora"
	"github.com/goodnatureofminers/walletsync7000/internal/metrics"
	"github.com/goodnatureofminers/walletsync7000/internal/model"
	"github.com/goodnatureofminers/walletsync7000/internal/scanner"
	"github.com/goodnatureofminers/walletsync7000/internal/store/pebblestore"
	"github.com/goodnatureofminers/walletsync7000/internal/wallet"
)

type config struct {
	EsploraURL    string        `long:"esplora-url" env:"WALLETSCAN_ESPLORA_URL" description:"Esplora API base URL" default:"https://blockstream.info/api"`
	Xpub          string        `long:"xpub" env:"WALLETSCAN_XPUB" description:"account extended public key" required:"true"`
	Network       model.Network `long:"network" env:"WALLETSCAN_NETWORK" description:"network name" default:"mainnet"`
	AddressFormat string        `long:"address-format" env:"WALLETSCAN_ADDRESS_FORMAT" description:"derived address format (p2wpkh or p2pkh)" default:"p2wpkh"`
	StopGap       uint32        `long:"stop-gap" env:"WALLETSCAN_STOP_GAP" description:"consecutive unused addresses that end a branch scan" default:"20"`
	BatchSize     uint32        `long:"batch-size" env:"WALLETSCAN_BATCH_SIZE" description:"addresses fetched per batch, defaults to the stop gap"`
	Concurrency   int           `long:"concurrency" env:"WALLETSCAN_CONCURRENCY" description:"parallel explorer requests" default:"4"`
	RPS           int           `long:"rps" env:"WALLETSCAN_RPS" description:"explorer request rate cap, 0 for unlimited"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"WALLETSCAN_HTTP_TIMEOUT" description:"HTTP timeout for explorer requests" default:"30s"`
	Proxy         string        `long:"proxy" env:"WALLETSCAN_PROXY" description:"proxy URI (http, https or socks5)"`
	DBPath        string        `long:"db-path" env:"WALLETSCAN_DB_PATH" description:"path of the wallet database" default:"./walletscan-db"`
	FeeTarget     uint32        `long:"fee-target" env:"WALLETSCAN_FEE_TARGET" description:"confirmation target to report a fee rate for, 0 to skip"`
	Resync        time.Duration `long:"resync" env:"WALLETSCAN_RESYNC" description:"resynchronize continuously at this interval, 0 for a single sync"`
	MetricsAddr   string        `long:"metrics-addr" env:"WALLETSCAN_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("wallet scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client, err := esplora.NewClient(esplora.Config{
		BaseURL:           cfg.EsploraURL,
		Proxy:             cfg.Proxy,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RPS,
	}, metrics.NewExplorerClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init explorer client: %w", err)
	}

	deriver, err := wallet.NewDeriver(cfg.Xpub, cfg.Network, wallet.AddressFormat(cfg.AddressFormat))
	if err != nil {
		return fmt.Errorf("init deriver: %w", err)
	}

	store, err := pebblestore.Open(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("open wallet database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close wallet database", zap.Error(err))
		}
	}()

	scan, err := scanner.New(
		scanner.Config{
			StopGap:     cfg.StopGap,
			Concurrency: cfg.Concurrency,
			BatchSize:   cfg.BatchSize,
		},
		client,
		deriver,
		store,
		scanner.NewVerifier(client, logger),
		metrics.NewScanner(cfg.Network),
		logger,
	)
	if err != nil {
		return err
	}

	if cfg.FeeTarget > 0 {
		reportFeeRate(ctx, client, cfg.FeeTarget, logger)
	}

	if cfg.Resync > 0 {
		return scan.Run(ctx, cfg.Resync)
	}

	summaries, err := scan.Sync(ctx)
	if err != nil {
		return err
	}
	for _, summary := range summaries {
		logger.Info("branch synchronized",
			zap.Stringer("branch", summary.Branch),
			zap.Uint32("scanned", summary.Scanned),
			zap.Uint32("used", summary.Used),
			zap.Int("transactions", summary.Txs))
	}

	balance, err := store.Balance()
	if err != nil {
		return fmt.Errorf("compute balance: %w", err)
	}
	logger.Info("wallet synchronized", zap.Uint64("balance_sats", balance))
	return nil
}

func reportFeeRate(ctx context.Context, client *esplora.Client, target uint32, logger *zap.Logger) {
	estimates, err := client.FeeEstimates(ctx)
	if err != nil {
		logger.Warn("failed to fetch fee estimates", zap.Error(err))
		return
	}
	rate, err := esplora.FeeRateForTarget(estimates, target)
	if err != nil {
		logger.Warn("no fee rate for target", zap.Uint32("target", target), zap.Error(err))
		return
	}
	logger.Info("fee estimate", zap.Uint32("target_blocks", target), zap.Float64("sat_per_vb", rate))
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
