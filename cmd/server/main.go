package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/gridsync/internal/server"
	"github.com/iudanet/gridsync/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// envJWTSecret используется, если -jwt-secret не задан
const envJWTSecret = "GRIDSYNC_JWT_SECRET"

func main() {
	var (
		cfg        server.Config
		logFormat  string
		logLevel   string
		issueToken string
	)

	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.Addr, "addr", server.DefaultAddr, "HTTP listen address")
	flag.StringVar(&cfg.DBPath, "db", server.DefaultDBPath, "Path to SQLite database")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", os.Getenv(envJWTSecret), "JWT signing secret (env "+envJWTSecret+")")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", 24*time.Hour, "Access token lifetime")
	flag.IntVar(&cfg.RateLimit, "rate-limit", server.DefaultRateLimit, "Requests per rate window per user")
	flag.DurationVar(&cfg.RateWindow, "rate-window", server.DefaultRateWindow, "Rate limit window")
	flag.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&issueToken, "issue-token", "", "Print an access token for the given user id and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := newLogger(logFormat, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg.Version = Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, issueToken); err != nil {
		logger.Error("Server failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg server.Config, logger *slog.Logger, issueToken string) error {
	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Failed to close server", "error", err)
		}
	}()

	if issueToken != "" {
		if err := validation.ValidateUserID(issueToken); err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		token, expiresIn, err := srv.Tokens().GenerateAccessToken(issueToken, issueToken)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		fmt.Println(token)
		logger.Info("Access token issued", "user_id", issueToken, "expires_in", expiresIn)
		return nil
	}

	return srv.Run(ctx)
}

func newLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func printVersion() {
	fmt.Printf("GridSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
