package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/NellsonAss/dd-scheduling/libs/config"
	"github.com/NellsonAss/dd-scheduling/libs/db"
	"github.com/NellsonAss/dd-scheduling/libs/httpx"
	"github.com/NellsonAss/dd-scheduling/libs/kafkax"
	otelx "github.com/NellsonAss/dd-scheduling/libs/otel"
	"github.com/NellsonAss/dd-scheduling/libs/runtime"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/consumer"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/directory"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/handlers"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/inbox"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/outbox"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/storage"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	service := config.String("SERVICE_NAME", "availability-service")
	port, err := config.Port("PORT", "8086")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := storage.NewRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	inboxRepo := inbox.NewRepository(pool)
	if topic := strings.TrimSpace(config.String("KAFKA_CONSUME_TOPIC", consumer.TopicDayOffApproved)); topic != "" {
		eventConsumer := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "availability-service"),
			Topic:   topic,
		}, consumer.NewDayOffHandler(repo, logger))
		go eventConsumer.Run(ctx)
	}

	directoryProvider, err := directory.NewProvider(config.String("PEOPLE_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("directory provider init failed; names fall back to stored values", "err", err)
		directoryProvider = nil
	}

	availabilityHandler := handlers.NewAvailabilityHandler(repo, directoryProvider, logger)
	ruleHandler := handlers.NewRuleHandler(repo, outboxRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/feasibility/day", availabilityHandler.Day)
	mux.HandleFunc("/api/v1/feasibility/month", availabilityHandler.Month)
	mux.HandleFunc("/api/v1/feasibility/start-times", availabilityHandler.StartTimes)
	mux.HandleFunc("/api/v1/occurrences", availabilityHandler.Occurrences)
	mux.HandleFunc("/api/v1/occurrences/overlaps", availabilityHandler.Overlaps)
	mux.HandleFunc("/api/v1/calendar", availabilityHandler.Calendar)
	mux.HandleFunc("/api/v1/rules", ruleHandler.Rules)
	mux.HandleFunc("/api/v1/rules/archive", ruleHandler.Archive)
	mux.HandleFunc("/api/v1/rules/exceptions", ruleHandler.CreateException)
	mux.HandleFunc("/api/v1/bookings", ruleHandler.CreateBooking)
	mux.HandleFunc("/api/v1/bookings/cancel", ruleHandler.CancelBooking)

	bodyLimit := int64(config.Int("REQUEST_BODY_LIMIT_BYTES", 1<<20))
	requestTimeout := time.Duration(config.Int("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second

	limitPerMinute := config.Int("RATE_LIMIT_PER_MINUTE", 120)
	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       config.Int("REDIS_DB", 0),
		})
		defer func() { _ = rdb.Close() }()

		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, isTruthy(config.String("RATE_LIMIT_FAIL_OPEN", "true")))
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	httpHandler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: parseList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods: parseList(config.String("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders: parseList(config.String("CORS_ALLOWED_HEADERS", "Authorization,Content-Type,X-Request-Id")),
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(bodyLimit),
		httpx.WithTimeout(requestTimeout),
		rateLimitMW,
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "availability")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
