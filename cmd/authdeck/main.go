package main

//	@title						authdeck API
//	@version					0.1.0
//	@description				Theme and layout configuration API for the authdeck admin panel.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/HerbHall/authdeck/api/swagger"
	"github.com/HerbHall/authdeck/internal/appearance"
	"github.com/HerbHall/authdeck/internal/auth"
	"github.com/HerbHall/authdeck/internal/config"
	"github.com/HerbHall/authdeck/internal/dashboard"
	"github.com/HerbHall/authdeck/internal/event"
	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/server"
	"github.com/HerbHall/authdeck/internal/store"
	"github.com/HerbHall/authdeck/internal/version"
	"github.com/HerbHall/authdeck/internal/ws"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Subcommand dispatch (before flag.Parse).
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Info())
			return
		}
	}

	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Configuration comes before the logger so level and format apply.
	viperCfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(viperCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("authdeck server starting", zap.String("version", version.Short()))

	if f := viperCfg.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	} else {
		logger.Warn("no configuration file found, using defaults",
			zap.String("component", "config"),
		)
	}

	ctx := context.Background()

	prefStore, ready, closePrefs, err := openPrefs(ctx, cfg.Prefs, logger)
	if err != nil {
		logger.Fatal("failed to open preference store", zap.Error(err))
	}
	defer closePrefs()

	bus := event.NewBus(logger.Named("event"))
	hub := ws.NewHub(logger.Named("ws"))

	registry := appearance.NewRegistry(prefStore, bus, logger.Named("appearance"),
		appearance.WithAnimators(hub.Animator),
		appearance.WithTransitionDuration(cfg.Appearance.TransitionDuration),
	)

	var (
		tokens   *auth.TokenService
		authMW   server.Middleware
		resolver appearance.ProfileResolver
	)
	if cfg.Auth.Enabled {
		tokens = auth.NewTokenService([]byte(cfg.Auth.Secret), cfg.Auth.AccessTTL)
		authMW = auth.AuthMiddleware(tokens)
		resolver = auth.ProfileFromRequest(appearance.DefaultProfile)
		logger.Info("bearer authentication enabled", zap.String("component", "auth"))
	} else {
		logger.Warn("authentication disabled, all requests share the default profile",
			zap.String("component", "auth"),
		)
	}

	appearanceHandler := appearance.NewHandler(registry, resolver, logger.Named("appearance"))
	wsHandler := ws.NewHandler(hub, registry, tokens, logger.Named("ws"))

	srv := server.New(cfg.Server.Addr(), logger, ready, server.Options{
		Auth:      authMW,
		Dashboard: dashboard.Handler(),
		DevMode:   cfg.Server.DevMode,
		ReadOnly:  cfg.Server.ReadOnly,
	}, appearanceHandler, wsHandler)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "\n  authdeck %s is ready!\n  Open http://localhost:%d in your browser.\n\n", version.Short(), cfg.Server.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("authdeck server stopped")
}

// openPrefs builds the configured preference backend together with its
// readiness probe and a close function.
func openPrefs(ctx context.Context, cfg config.PrefsConfig, logger *zap.Logger) (prefs.Store, server.ReadinessChecker, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rs := prefs.NewRedisStore(client, prefs.WithKeyPrefix(cfg.Redis.KeyPrefix))

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rs.Ping(pingCtx); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("preference store initialized",
			zap.String("component", "prefs"),
			zap.String("backend", cfg.Backend),
			zap.String("addr", cfg.Redis.Addr),
		)
		return rs, rs.Ping, func() { _ = client.Close() }, nil

	case config.BackendMemory:
		logger.Warn("preferences are kept in memory and lost on restart",
			zap.String("component", "prefs"),
		)
		return prefs.NewMemoryStore(), nil, func() {}, nil

	default:
		db, err := store.New(cfg.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.CheckVersion(ctx, version.Short()); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		ss, err := prefs.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		logger.Info("preference store initialized",
			zap.String("component", "prefs"),
			zap.String("backend", config.BackendSQLite),
			zap.String("path", cfg.Path),
		)
		return ss, db.Ping, func() { _ = db.Close() }, nil
	}
}
