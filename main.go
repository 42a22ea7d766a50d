package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
	"github.com/zainabhax0r-dev/facescan-pro/internal/auth"
	"github.com/zainabhax0r-dev/facescan-pro/internal/enroll"
	"github.com/zainabhax0r-dev/facescan-pro/internal/gallery"
	"github.com/zainabhax0r-dev/facescan-pro/internal/grpcclient"
	"github.com/zainabhax0r-dev/facescan-pro/internal/handlers"
	"github.com/zainabhax0r-dev/facescan-pro/internal/liveness"
	"github.com/zainabhax0r-dev/facescan-pro/internal/logging"
	"github.com/zainabhax0r-dev/facescan-pro/internal/match"
	"github.com/zainabhax0r-dev/facescan-pro/internal/repository"
	"github.com/zainabhax0r-dev/facescan-pro/internal/session"
	"github.com/zainabhax0r-dev/facescan-pro/internal/tasks"
)

const (
	minMatchThreshold = 0.38
	maxMatchThreshold = 0.65
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	db := initDatabase(ctx, logger)
	if err := repository.Migrate(ctx, db); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	redisCtx, redisCancel := context.WithTimeout(ctx, 5*time.Second)
	defer redisCancel()
	redisAddr := getEnv("REDIS_ADDR", "redis:6379")
	redisClient := initRedis(redisCtx, redisAddr, logger)

	detectorAddr := getEnv("DETECTOR_ADDR", "detector:50051")
	detectorClient, conn, err := grpcclient.DialDetector(ctx, detectorAddr, logger)
	if err != nil {
		logger.Fatal("failed to connect to detector", zap.Error(err))
	}
	defer conn.Close()

	matchThreshold := getEnvFloat("MATCH_THRESHOLD", 0.5, logger)
	if matchThreshold < minMatchThreshold || matchThreshold > maxMatchThreshold {
		logger.Fatal("match threshold out of range",
			zap.Float64("threshold", matchThreshold),
			zap.Float64("min", minMatchThreshold),
			zap.Float64("max", maxMatchThreshold))
	}

	loc, err := time.LoadLocation(getEnv("ATTENDANCE_TIMEZONE", "Local"))
	if err != nil {
		logger.Fatal("invalid attendance timezone", zap.Error(err))
	}
	policy := attendance.DayPolicy{
		Location:     loc,
		RolloverHour: getEnvInt("ATTENDANCE_ROLLOVER_HOUR", 0, logger),
	}

	templates := repository.NewTemplateRepository(db, logger)
	attendanceRepo := repository.NewAttendanceRepository(db, logger)
	auditRepo := repository.NewRecognitionLogRepository(db, logger)
	identities := repository.NewIdentityRepository(db, logger)

	cacheTTL := time.Duration(getEnvInt("GALLERY_CACHE_TTL_SECONDS", 300, logger)) * time.Second
	galleryCache := gallery.NewRedisCache(redisClient)
	galleryLoader := gallery.NewLoader(templates, galleryCache, cacheTTL, logger)

	decision := attendance.NewDecision(attendanceRepo, policy)

	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}
	dispatcher := tasks.NewDispatcher(redisOpt, logger)
	defer dispatcher.Close() //nolint:errcheck

	worker := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	tasks.NewHandler(decision, auditRepo, logger).Register(mux)
	if err := worker.Start(mux); err != nil {
		logger.Fatal("task worker failed to start", zap.Error(err))
	}
	defer worker.Shutdown()

	enrollCfg := enroll.DefaultConfig()
	enrollCfg.TargetSamples = getEnvInt("ENROLL_TARGET_SAMPLES", enrollCfg.TargetSamples, logger)
	enrollCfg.MinConfidence = getEnvFloat("ENROLL_MIN_CONFIDENCE", enrollCfg.MinConfidence, logger)

	runnerCfg := session.DefaultConfig()
	if ms := getEnvInt("SESSION_INTERVAL_MS", 0, logger); ms > 0 {
		runnerCfg.Interval = time.Duration(ms) * time.Millisecond
	}

	manager := session.NewManager(session.Dependencies{
		Detector:    detectorClient,
		Evaluator:   liveness.NewEvaluator(liveness.DefaultConfig()),
		EnrollCfg:   enrollCfg,
		MatchCfg:    match.Config{Threshold: matchThreshold},
		Identities:  identities,
		Galleries:   galleryLoader,
		Templates:   templates,
		Invalidator: galleryLoader,
		Recorder:    decision,
		Audit:       auditRepo,
		Dispatch:    dispatcher,
		RunnerCfg:   runnerCfg,
		Logger:      logger,
	})
	defer manager.StopAll()

	r := gin.Default()
	r.MaxMultipartMemory = handlers.MaxUploadSize
	r.Use(cors.Default())

	jwtSecret := getEnv("STATION_JWT_SECRET", "dev-secret")
	jwtAudience := os.Getenv("STATION_JWT_AUDIENCE")
	authMiddleware := auth.StationMiddleware(jwtSecret, jwtAudience)

	handlers.RegisterRoutes(r, manager, attendanceRepo, auditRepo, policy, authMiddleware)

	server := &http.Server{
		Addr:    getEnv("HTTP_ADDR", ":8080"),
		Handler: r,
	}

	logger.Info("attendance API listening", zap.String("addr", server.Addr))
	if err := serveHTTPServer(server, 15*time.Second, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func initDatabase(ctx context.Context, zapLogger *zap.Logger) *gorm.DB {
	dsn := getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=facescan port=5432 sslmode=disable")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to access db handle", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		zapLogger.Fatal("database ping failed", zap.Error(err))
	}

	return db
}

func initRedis(ctx context.Context, addr string, zapLogger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	return client
}

func serveHTTPServer(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, nil, nil)
}

func serveHTTPServerWithListener(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, listener, nil)
}

func serveHTTPServerWithOptions(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener, signalCh <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if listener != nil {
			err = server.Serve(listener)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var (
		sigCh       <-chan os.Signal
		stopSignals func()
	)

	if signalCh != nil {
		sigCh = signalCh
		stopSignals = func() {}
	} else {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		sigCh = ch
		stopSignals = func() {
			signal.Stop(ch)
		}
	}
	defer stopSignals()

	select {
	case err := <-errCh:
		return err
	case sig, ok := <-sigCh:
		if !ok {
			return <-errCh
		}
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int, logger *zap.Logger) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Fatal("invalid integer env var", zap.String("key", key), zap.String("value", value))
	}
	return parsed
}

func getEnvFloat(key string, fallback float64, logger *zap.Logger) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Fatal("invalid float env var", zap.String("key", key), zap.String("value", value))
	}
	return parsed
}
