package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/lotterywatch/internal/clock"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/ethereum"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/history"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/ledger"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/reader"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/scheduler"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/service"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/status"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/treasury"
	"github.com/goodnatureofminers/lotterywatch/internal/metrics"
	"github.com/goodnatureofminers/lotterywatch/internal/pkg/ethclient"
	"github.com/goodnatureofminers/lotterywatch/internal/transport"
)

type config struct {
	Contract     string `long:"contract" env:"LOTTERY_CONTRACT" description:"lottery contract address" required:"true"`
	Chain        string `long:"chain" env:"LOTTERY_CHAIN" description:"chain label used in metrics" default:"sepolia"`
	RPCURL       string `long:"rpc-url" env:"LOTTERY_RPC_URL" description:"Ethereum JSON-RPC URL" required:"true"`
	LogsEndpoint string `long:"logs-endpoint" env:"LOTTERY_LOGS_ENDPOINT" description:"log provider endpoint, may contain {api_key}; defaults to rpc-url"`
	APIKey       string `long:"api-key" env:"LOTTERY_API_KEY" description:"log provider API key"`
	RoundID      uint64 `long:"round-id" env:"LOTTERY_ROUND_ID" description:"follow one round; 0 follows the active round" default:"0"`

	DeployBlock uint64        `long:"deploy-block" env:"LOTTERY_DEPLOY_BLOCK" description:"block the contract was deployed at"`
	MaxLogRange uint64        `long:"max-log-range" env:"LOTTERY_MAX_LOG_RANGE" description:"max blocks per log query, 0 for unbounded" default:"10000"`
	RescanDepth uint64        `long:"rescan-depth" env:"LOTTERY_RESCAN_DEPTH" description:"already scanned blocks re-queried on every run" default:"12"`
	Workers     int           `long:"workers" env:"LOTTERY_WORKERS" description:"concurrent log queries" default:"4"`
	MaxRetries  uint64        `long:"max-retries" env:"LOTTERY_MAX_RETRIES" description:"retries per log window" default:"3"`
	RetryDelay  time.Duration `long:"retry-delay" env:"LOTTERY_RETRY_DELAY" description:"initial retry delay" default:"500ms"`
	LogRPS      int           `long:"log-rps" env:"LOTTERY_LOG_RPS" description:"log queries per second, 0 for unlimited" default:"5"`

	RoundStateInterval time.Duration `long:"round-state-interval" env:"LOTTERY_ROUND_STATE_INTERVAL" description:"round state poll interval" default:"10s"`
	StatusTickInterval time.Duration `long:"status-tick-interval" env:"LOTTERY_STATUS_TICK_INTERVAL" description:"status recompute interval" default:"1s"`
	HistoryInterval    time.Duration `long:"history-interval" env:"LOTTERY_HISTORY_INTERVAL" description:"history poll interval" default:"1m"`
	ClosingSoonWindow  time.Duration `long:"closing-soon-window" env:"LOTTERY_CLOSING_SOON_WINDOW" description:"closing soon threshold, 0 flags the whole open window" default:"30m"`
	RetainedBps        uint64        `long:"retained-bps" env:"LOTTERY_RETAINED_BPS" description:"basis points of the pot paid to the winner" default:"9800"`
	FallbackMinEntry   string        `long:"fallback-min-entry" env:"LOTTERY_FALLBACK_MIN_ENTRY" description:"minimum entry in ether before the round loads" default:"0.01"`

	SignerKey string `long:"signer-key" env:"LOTTERY_SIGNER_KEY" description:"hex private key enabling write routes"`
	ChainID   int64  `long:"chain-id" env:"LOTTERY_CHAIN_ID" description:"chain id used for signing" default:"11155111"`

	// WriteToken must be sent as a bearer token on write routes; they sign with the server key.
	WriteToken string `long:"write-token" env:"LOTTERY_WRITE_TOKEN" description:"bearer token required by write routes"`

	Addr     string `long:"addr" env:"LOTTERY_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"LOTTERY_REST_ADDR" description:"rest addr" default:":8001"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := validate(cfg); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger.With(zap.String("contract", cfg.Contract))); err != nil {
		logger.Fatal("lottery watcher failed", zap.Error(err))
	}
}

func validate(cfg config) error {
	if !common.IsHexAddress(cfg.Contract) {
		return fmt.Errorf("contract %q is not an address", cfg.Contract)
	}
	if cfg.RetainedBps > treasury.MaxBasisPoints {
		return fmt.Errorf("retained-bps %d exceeds %d", cfg.RetainedBps, treasury.MaxBasisPoints)
	}
	if cfg.LogsEndpoint != "" {
		if _, err := ethclient.ExpandEndpoint(cfg.LogsEndpoint, cfg.APIKey); err != nil {
			return fmt.Errorf("logs-endpoint: %w", err)
		}
	}
	if cfg.SignerKey != "" && cfg.WriteToken == "" {
		return errors.New("signer-key requires write-token")
	}
	if _, err := status.ParseAmount(cfg.FallbackMinEntry); err != nil {
		return fmt.Errorf("fallback-min-entry: %w", err)
	}
	for name, d := range map[string]time.Duration{
		"round-state-interval": cfg.RoundStateInterval,
		"status-tick-interval": cfg.StatusTickInterval,
		"history-interval":     cfg.HistoryInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	address := common.HexToAddress(cfg.Contract)
	rpcMetrics := metrics.NewRPCClient(cfg.Chain)

	client, closeClient, err := ethclient.Dial(ctx, cfg.RPCURL, rpcMetrics)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer closeClient()

	logClient := client
	if cfg.LogsEndpoint != "" {
		endpoint, err := ethclient.ExpandEndpoint(cfg.LogsEndpoint, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("expand logs endpoint: %w", err)
		}
		var closeLogs func()
		logClient, closeLogs, err = ethclient.Dial(ctx, endpoint, rpcMetrics)
		if err != nil {
			return fmt.Errorf("init logs client: %w", err)
		}
		defer closeLogs()
	}

	var limiter ratelimit.Limiter
	if cfg.LogRPS > 0 {
		limiter = ratelimit.New(cfg.LogRPS)
	}

	rd := reader.New(
		ethereum.NewContract(address, client),
		metrics.NewReader(address.Hex()),
		clock.System{},
		logger,
		cfg.RoundID,
	)
	reconstructor := history.NewReconstructor(
		ethereum.NewLogSource(address, logClient),
		ethereum.NewDecoder(address),
		ledger.New(),
		limiter,
		metrics.NewHistory(address.Hex()),
		logger,
		history.Config{
			DeployBlock: cfg.DeployBlock,
			MaxRange:    cfg.MaxLogRange,
			RescanDepth: cfg.RescanDepth,
			Workers:     cfg.Workers,
			MaxRetries:  cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay,
		},
	)

	var (
		signer     service.Signer
		writeToken string
	)
	if cfg.SignerKey != "" {
		keyed, err := ethereum.NewKeyedSigner(cfg.SignerKey, big.NewInt(cfg.ChainID))
		if err != nil {
			return fmt.Errorf("init signer: %w", err)
		}
		logger.Info("write routes enabled", zap.Stringer("from", keyed.Address()))
		signer = keyed
		writeToken = cfg.WriteToken
	}

	fallback, _ := status.ParseAmount(cfg.FallbackMinEntry)
	healthServer := health.NewServer()
	watcher := service.NewWatcher(
		rd,
		reconstructor,
		scheduler.New(metrics.NewScheduler(), logger),
		ethereum.NewWriter(address, client),
		signer,
		healthServer,
		clock.System{},
		logger,
		service.Config{
			RoundStateInterval: cfg.RoundStateInterval,
			StatusTickInterval: cfg.StatusTickInterval,
			HistoryInterval:    cfg.HistoryInterval,
			Policy: status.Policy{
				ClosingSoonWindow: cfg.ClosingSoonWindow,
				FallbackMinEntry:  fallback,
			},
			RetainedBps: cfg.RetainedBps,
		},
	)
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	grpcServer := newGRPCServer(logger)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("grpc server stopped", zap.Error(serveErr))
		}
	}()
	defer grpcServer.GracefulStop()

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial grpc health: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	if err := transport.NewLotteryHandler(watcher, logger, writeToken).Register(gw); err != nil {
		return fmt.Errorf("register lottery handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	return serveHTTP(ctx, &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}, logger)
}

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcPrometheus.EnableHandlingTimeHistogram()
	return grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
}

func serveHTTP(ctx context.Context, s *http.Server, logger *zap.Logger) error {
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
