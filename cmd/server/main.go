package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grouplink/auth"
	"grouplink/infrastructure/grpc/server"
	"grouplink/infrastructure/storage"
	"grouplink/internal"
	pbaccount "grouplink/proto/account"
	pbconnect "grouplink/proto/connect"
	"grouplink/runtime"
	"grouplink/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpcsdk "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/proto"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		debugPort := 8081
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint))
		database.StartDebugServer(db, debugPort, endpoint, UserMapper)
	}

	defer func() {
		// Defer ensures the database lock is released and buffers are flushed.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Domain services: the sidecar launcher feeds the session service,
	// which feeds the resolver.
	userRepository := storage.NewUserRepository(db)
	launcher := runtime.NewLauncher(logger, config.ChannelBinPath, config.ChannelHost, config.ChannelPort)
	sessionService := services.NewSessionService(logger, launcher.Launch,
		config.InitWatchdogTimeout, launcher.Stats)
	resolverService := services.NewResolverService(logger, sessionService,
		userRepository, services.ResolverConfig{
			ReadyTimeout:        config.ReadyTimeout,
			ReadyPollInterval:   config.ReadyPollInterval,
			MaxAttempts:         config.ResolveMaxAttempts,
			BackoffBase:         config.ResolveBackoffBase,
			BackoffCap:          config.ResolveBackoffCap,
			SyncAttempts:        config.SyncAttempts,
			SyncInterval:        config.SyncInterval,
			ConfidenceThreshold: config.ConfidenceThreshold,
		})

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	// 5. gRPC Server Setup
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcsdk.UnaryLoggingInterceptor(logger),
			auth.AuthInterceptor,
		))
	connectServer := server.NewConnectServer(logger, sessionService, resolverService)
	pbconnect.RegisterConnectServiceServer(s, connectServer)
	healthpb.RegisterHealthServer(s, health.NewServer())

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup (Graceful Shutdown)
	// Active RPCs finish first, then the channel sidecar is torn down.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sessionService.Stop(shutdownCtx); err != nil {
		logger.Warn("Session teardown failed", "err", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// UserMapper renders persisted account records in the debug inspector.
func UserMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var p pbaccount.User
	if err := proto.Unmarshal(val, &p); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = "USER"
	row.Detail = fmt.Sprintf("%s (%s)", p.Email, p.Phone)
	return row
}
