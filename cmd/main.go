package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"dailyhome/internal/handlers"
	"dailyhome/internal/logger"
	"dailyhome/internal/middlewares"
	"dailyhome/internal/repositories"
	"dailyhome/internal/services"
	"dailyhome/internal/sessions"
	"dailyhome/internal/tokens"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		logLevel,
		sessionSecret, sessionExpSecond,
		loginRateLimit, loginRateWindowSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		logLevel,
		sessionSecret, sessionExpSecond,
		loginRateLimit, loginRateWindowSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, logging, session, and rate-limit configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	logLevel string,
	sessionSecret string, sessionExpSecond int,
	loginRateLimit int, loginRateWindowSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "dailyhome")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Session config. A missing secret gets a random one so a dev instance
	// starts, at the cost of invalidating sessions on every restart.
	sessionSecret = getEnv("SESSION_SECRET", "")
	if sessionSecret == "" {
		buf := make([]byte, 32)
		if _, err = rand.Read(buf); err != nil {
			return
		}
		sessionSecret = hex.EncodeToString(buf)
		log.Println("SESSION_SECRET is not set, using a random one-off secret; sessions will not survive a restart")
	}
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Login rate limit config
	if loginRateLimit, err = strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "10")); err != nil {
		return
	}
	if loginRateWindowSecond, err = strconv.Atoi(getEnv("LOGIN_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	logLevel string,
	sessionSecret string, sessionExpSecond int,
	loginRateLimit, loginRateWindowSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize session machinery
	sessionTTL := time.Duration(sessionExpSecond) * time.Second
	tok := tokens.New(sessionSecret, sessionTTL)
	sessionStore := sessions.NewStore(rdb, sessionTTL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	diaryReadRepo := repositories.NewDiaryReadRepository(db)
	diaryWriteRepo := repositories.NewDiaryWriteRepository(db)
	todoReadRepo := repositories.NewTodoReadRepository(db)
	todoWriteRepo := repositories.NewTodoWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	boardService := services.NewBoardService(postReadRepo, postWriteRepo, commentReadRepo, commentWriteRepo)
	diaryService := services.NewDiaryService(diaryReadRepo, diaryWriteRepo)
	todoService := services.NewTodoService(todoReadRepo, todoWriteRepo)

	// Initialize templates
	pages, err := handlers.NewPages()
	if err != nil {
		logger.Log.Fatal("failed to parse templates:", err)
	}

	tx := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(sessionStore, tok))

		// Public routes
		r.Get("/", handlers.NewHomeHandler(sessionStore, pages))
		r.Get("/dashboard", handlers.NewDashboardHandler(sessionStore))
		r.With(tx).Post("/register", handlers.NewRegisterHandler(authService, sessionStore))
		r.With(middlewares.LoginRateLimiter(rdb, int64(loginRateLimit), time.Duration(loginRateWindowSecond)*time.Second)).
			Post("/login", handlers.NewLoginHandler(authService, sessionStore))
		r.Get("/logout", handlers.NewLogoutHandler(sessionStore))

		// Routes behind a login
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireLogin(sessionStore))

			r.Get("/board", handlers.NewBoardListHandler(boardService, sessionStore, pages))
			r.Get("/board/write", handlers.NewWritePostFormHandler(sessionStore, pages))
			r.With(tx).Post("/board/write", handlers.NewWritePostHandler(boardService, sessionStore))
			r.Get("/board/view/{id}", handlers.NewViewPostHandler(boardService, sessionStore, pages))
			r.Get("/board/edit/{id}", handlers.NewEditPostFormHandler(boardService, sessionStore, pages))
			r.With(tx).Post("/board/edit/{id}", handlers.NewEditPostHandler(boardService, sessionStore))
			r.With(tx).Post("/board/delete/{id}", handlers.NewDeletePostHandler(boardService, sessionStore))
			r.With(tx).Post("/comment/add/{id}", handlers.NewAddCommentHandler(boardService, sessionStore))

			r.Get("/diary", handlers.NewDiaryCalendarHandler(diaryService, sessionStore, pages))
			r.Get("/diary/{year}/{month}", handlers.NewDiaryCalendarHandler(diaryService, sessionStore, pages))
			r.Get("/diary/entry/{date}", handlers.NewDiaryEntryFormHandler(diaryService, sessionStore, pages))
			r.With(tx).Post("/diary/entry/{date}", handlers.NewDiaryEntryHandler(diaryService, sessionStore))

			r.Get("/todos", handlers.NewTodoListHandler(todoService, sessionStore, pages))
			r.With(tx).Post("/todos/add", handlers.NewAddTodoHandler(todoService, sessionStore))
			r.With(tx).Post("/todos/update_status/{id}/{status}", handlers.NewUpdateTodoStatusHandler(todoService, sessionStore))
			r.With(tx).Post("/todos/delete/{id}", handlers.NewDeleteTodoHandler(todoService, sessionStore))
			r.Get("/todos/reschedule/{id}", handlers.NewRescheduleTodoHandler(todoService, sessionStore, pages))
			r.Get("/todos/reschedule/{id}/{year}/{month}", handlers.NewRescheduleTodoHandler(todoService, sessionStore, pages))
			r.With(tx).Post("/todos/set_due_date/{id}", handlers.NewSetDueDateHandler(todoService, sessionStore))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
