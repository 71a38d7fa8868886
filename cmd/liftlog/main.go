package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/liftlog/internal/api"
	"github.com/terraincognita07/liftlog/internal/cli"
	"github.com/terraincognita07/liftlog/internal/config"
	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/logging"
	"github.com/terraincognita07/liftlog/internal/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalOptions struct {
	envFile   string
	dbPath    string
	logFormat string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	options := &globalOptions{}

	root := &cobra.Command{
		Use:           "liftlog",
		Short:         "Personal workout tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&options.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&options.dbPath, "db", "", "SQLite database path (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&options.logFormat, "log-format", "", "json or console (overrides LOG_FORMAT)")
	root.PersistentFlags().StringVar(&options.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(newServeCmd(options))
	root.AddCommand(newSeedCmd(options))
	root.AddCommand(newHashKeyCmd())
	return root
}

// loadConfig reads env and dotenv, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, options *globalOptions, overrides func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(options.envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = options.dbPath
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = options.logFormat
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = options.logLevel
	}
	if overrides != nil {
		overrides(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newServeCmd(options *globalOptions) *cobra.Command {
	var port int
	var routinesFile, staticDir string
	var requireAccess bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, options, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("port") {
					cfg.Port = port
				}
				if flags.Changed("routines") {
					cfg.RoutinesFile = routinesFile
				}
				if flags.Changed("static") {
					cfg.StaticDir = staticDir
				}
				if flags.Changed("require-access") {
					cfg.RequireAccess = requireAccess
				}
			})
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&routinesFile, "routines", "", "predefined routines YAML (overrides ROUTINES_FILE)")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory served at / (overrides STATIC_DIR)")
	cmd.Flags().BoolVar(&requireAccess, "require-access", false, "require an access token for mutating requests (overrides REQUIRE_ACCESS)")
	return cmd
}

func newSeedCmd(options *globalOptions) *cobra.Command {
	var routinesFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the default exercises and optional predefined routines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, options, func(cfg *config.Config) {
				if cmd.Flags().Changed("routines") {
					cfg.RoutinesFile = routinesFile
				}
			})
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return cli.RunSeedCommand(cfg.DBPath, cfg.RoutinesFile, logger, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&routinesFile, "routines", "", "predefined routines YAML (overrides ROUTINES_FILE)")
	return cmd
}

func newHashKeyCmd() *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "hash-key",
		Short: "Print an ACCESS_KEY_HASH value for a typed or generated access key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunHashKeyCommand(cli.HashKeyOptions{
				Generate: generate,
				Stdin:    os.Stdin,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a random access key instead of prompting")
	return cmd
}

func resolveAccessKeyHash(cfg config.Config) ([]byte, error) {
	if cfg.AccessKeyHash != "" {
		return []byte(cfg.AccessKeyHash), nil
	}
	if cfg.AccessKey == "" {
		return nil, nil
	}
	hash, err := services.HashAccessKey(cfg.AccessKey)
	if err != nil {
		return nil, err
	}
	return []byte(hash), nil
}

func runServer(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}()

	if _, err := cli.SeedDatabase(database, cfg.RoutinesFile, logger); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	keyHash, err := resolveAccessKeyHash(cfg)
	if err != nil {
		return err
	}
	if len(keyHash) == 0 {
		logger.Warn("no access key configured, validate_key always answers false")
	}
	if cfg.SecretGenerated {
		logger.Warn("SECRET_KEY not set, access tokens will not survive a restart")
	}

	handler, err := api.NewHandler(database, api.HandlerOptions{
		AccessKeyHash: keyHash,
		SecretKey:     cfg.SecretKey,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler, api.AppConfig{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequireAccess:  cfg.RequireAccess,
		StaticDir:      cfg.StaticDir,
	})

	sigCtx, stopSignals := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("liftlog listening",
		zap.String("addr", cfg.Addr()),
		zap.String("db", cfg.DBPath),
		zap.Bool("require_access", cfg.RequireAccess),
		zap.String("business_zone", services.BusinessLocation.String()),
	)
	if err := app.Listen(cfg.Addr()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
