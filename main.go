package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	database "schoolsite_backend/internals/databases"
	authRepo "schoolsite_backend/internals/features/admins/auth/repository"
	"schoolsite_backend/internals/features/admins/auth/scheduler"
	authService "schoolsite_backend/internals/features/admins/auth/service"
	"schoolsite_backend/internals/features/admins/auth/store"
	helper "schoolsite_backend/internals/helpers"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/lifecycle"
	"schoolsite_backend/internals/helpers/notify"
	helperOSS "schoolsite_backend/internals/helpers/oss"
	"schoolsite_backend/internals/middlewares"
	"schoolsite_backend/internals/middlewares/logger"
	routes "schoolsite_backend/internals/route"
	"schoolsite_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := configs.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	// 🔌 DB connect + migrate + warm-up
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("database#connect", zap.Error(err))
	}
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	if err := database.Migrate(migrateCtx, db, log); err != nil {
		cancelMigrate()
		log.Fatal("database#migrate", zap.Error(err))
	}
	cancelMigrate()
	database.WarmUp(db, log)
	if cfg.SeedAdminsFile != "" {
		seeds.RunAllSeeds(context.Background(), db, cfg.SeedAdminsFile, log)
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// 🔐 session store + authority
	sessionStore, sweeper := buildSessionStore(cfg, db)
	if sweeper != nil {
		scheduler.StartSessionCleanupScheduler(bgCtx, sweeper, cfg.Session.IdleTimeout, cfg.Session.CleanupInterval, log.Named("session-cleanup"))
	}
	sessions := authService.NewSessionAuthority(
		authRepo.NewAdminRepository(db),
		sessionStore,
		cfg.SharedSecret,
		cfg.Session.IdleTimeout,
		log.Named("session"),
	)
	cookie := authHelper.NewCookieCodec(cfg.Session.CookieName, cfg.Session.HashKey, cfg.Session.BlockKey, cfg.SharedSecret, cfg.Session.CookieSecure)
	links := authHelper.NewActionLinkSigner(cfg.Signup.LinkSecret, cfg.Signup.LinkTTL)
	if !links.Enabled() {
		log.Warn("SIGNUP_LINK_SECRET kosong: link approve/reject tidak ditandatangani")
	}

	notifier, err := notify.New(notify.Config{
		Driver:          cfg.Notify.Driver,
		OperatorAddress: cfg.Notify.OperatorAddress,
		MailFrom:        cfg.Notify.MailFrom,
		ResendAPIKey:    cfg.Notify.ResendAPIKey,
		TelegramToken:   cfg.Notify.TelegramToken,
		TelegramChatID:  cfg.Notify.TelegramChatID,
	}, log)
	if err != nil {
		log.Fatal("notify#init", zap.Error(err))
	}

	// 🗂 object storage + orphan reaper
	objects, err := buildObjectStore(cfg, log)
	if err != nil {
		log.Fatal("storage#init", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	webp := helperOSS.DefaultWebPOptions()
	webp.Quality = cfg.Storage.WebPQuality
	webp.MaxW = cfg.Storage.WebPMaxWidth
	webp.MaxH = cfg.Storage.WebPMaxHeight
	blobs := helperOSS.NewStorageService(objects, cfg.Storage.Prefix, webp, cfg.Storage.MaxUploadSize)

	orphans := lifecycle.NewGormOrphanLedger(db)
	reaper, err := lifecycle.StartOrphanReaperCron(orphans, blobs, cfg.Storage.ReaperSchedule, cfg.Storage.ReaperMaxAttempts, log)
	if err != nil {
		log.Fatal("orphan-reaper#start", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             int(cfg.Storage.MaxUploadSize) + 1<<20,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(log))
	app.Use(middlewares.RequestID(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware(log.Named("http")))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))
	app.Use(middlewares.GlobalRateLimiter())

	routes.SetupRoutes(app, &routes.Deps{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Validator: helper.NewValidator(),
		Sessions:  sessions,
		Cookie:    cookie,
		Links:     links,
		Notifier:  notifier,
		Blobs:     blobs,
		Orphans:   orphans,
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown: stop HTTP, stop cron/ticker, tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	<-reaper.Stop().Done()
	stopBackground()
	if err := database.Close(db); err != nil {
		log.Warn("database close", zap.Error(err))
	}
}

// buildSessionStore: sweeper nil untuk redis (kedaluwarsa lewat TTL).
func buildSessionStore(cfg *configs.Config, db *gorm.DB) (authService.SessionStore, scheduler.IdleSweeper) {
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return store.NewRedisStore(client, cfg.Session.IdleTimeout), nil
	case "memory":
		s := store.NewMemoryStore()
		return s, s
	default:
		s := store.NewGormStore(db)
		return s, s
	}
}

func buildObjectStore(cfg *configs.Config, log *zap.Logger) (helperOSS.ObjectStore, error) {
	switch cfg.Storage.Driver {
	case "oss":
		return helperOSS.NewOSSService(helperOSS.OSSConfig{
			Endpoint:      cfg.Storage.OSSEndpoint,
			AccessKey:     cfg.Storage.OSSAccessKey,
			SecretKey:     cfg.Storage.OSSSecretKey,
			SecurityToken: cfg.Storage.OSSSecurityToken,
			Bucket:        cfg.Storage.OSSBucket,
			PublicBase:    cfg.Storage.OSSPublicBase,
		}, log)
	case "memory":
		return helperOSS.NewMemoryStore(), nil
	default:
		return helperOSS.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.LocalBaseURL)
	}
}
