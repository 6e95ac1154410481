// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/foodyhq/backend/internal/bootstrap"
	"github.com/foodyhq/backend/internal/config"
	"github.com/foodyhq/backend/internal/handler"
	"github.com/foodyhq/backend/internal/middleware"
	"github.com/foodyhq/backend/internal/repository"
	"github.com/foodyhq/backend/internal/service"
	"github.com/foodyhq/backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Evolve the schema before anything touches the store. A failure here is
	// fatal: the service must not come up against a half-migrated database.
	if cfg.RunMigrations {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("getting database instance: %w", err)
		}
		if err := bootstrap.New(sqlDB, logger).Run(context.Background()); err != nil {
			return fmt.Errorf("evolving schema: %w", err)
		}
	} else {
		logger.Info("schema bootstrap disabled via RUN_MIGRATIONS")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         30 * time.Second,
		CleanupFreq: time.Minute,
	})
	defer cacheService.Close()

	// Initialize services
	identityService := service.NewIdentityService(userRepo, orgRepo, locationRepo, passwordHasher, tokenManager)
	authzService := service.NewAuthzService(userRepo, locationRepo, tokenManager)
	offerService := service.NewOfferService(offerRepo, authzService, cacheService, cfg.PlaceholderImageURL)
	legacyService := service.NewLegacyService(identityService, merchantRepo)

	// Object storage is optional; offer creation falls back to the
	// placeholder image when uploads are not configured.
	var storeClient *storage.Client
	if storage.Config(cfg.Storage).Configured() {
		storeClient, err = storage.NewClient(context.Background(), storage.Config(cfg.Storage), logger)
		if err != nil {
			return fmt.Errorf("setting up object storage: %w", err)
		}
	} else {
		logger.Warn("object storage not configured, uploads disabled")
	}

	// Initialize handlers
	cookies := handler.CookieConfig{Name: cfg.Session.CookieName, MaxAge: cfg.Session.MaxAge}
	authHandler := handler.NewAuthHandler(identityService, cookies)
	offerHandler := handler.NewOfferHandler(offerService)
	legacyHandler := handler.NewLegacyHandler(legacyService, cookies)
	uploadHandler := handler.NewUploadHandler(storeClient)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))

	corsOrigins := cfg.Server.CORSOrigins
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"https://*", "http://*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/public/offers", offerHandler.PublicListHandler)
		r.Get("/merchant/profile", legacyHandler.ProfileHandler)

		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", authHandler.RegisterHandler)
				r.Post("/login", authHandler.LoginHandler)
				r.Post("/logout", authHandler.LogoutHandler)
			})

			// Legacy public shapes
			r.Post("/merchant/register_public", legacyHandler.RegisterPublicHandler)
			r.Post("/merchant/login", legacyHandler.LoginHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authzService, cfg.Session.CookieName))

			r.Get("/auth/me", authHandler.MeHandler)
			r.Get("/merchant/me", legacyHandler.MeHandler)
			r.Post("/merchant/offers", offerHandler.CreateHandler)
			r.Post("/upload", uploadHandler.UploadHandler)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
