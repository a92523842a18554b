package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/config"
	logpkg "github.com/kailas-cloud/mofassist/internal/logger"
	"github.com/kailas-cloud/mofassist/internal/metrics"
	"github.com/kailas-cloud/mofassist/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/mofassist/internal/transport/chi"
	chatuc "github.com/kailas-cloud/mofassist/internal/usecase/chat"
	forwarduc "github.com/kailas-cloud/mofassist/internal/usecase/forward"
	healthuc "github.com/kailas-cloud/mofassist/internal/usecase/health"
	inverseuc "github.com/kailas-cloud/mofassist/internal/usecase/inverse"
	"github.com/kailas-cloud/mofassist/internal/usecase/prediction"
	"github.com/kailas-cloud/mofassist/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting "+version.Service,
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("cors_origins", cfg.CORS.AllowedOrigins),
	)

	// Register advisor metrics explicitly (no init())
	metrics.RegisterAdvisorMetrics()

	cat := catalog.Default()
	logger.Info("Material catalog loaded", zap.Int("materials", cat.Len()))

	predictor := prediction.New(cfg.Catalog.GeneratedPrefix)

	forwardSvc := forwarduc.New(cat, predictor)
	inverseSvc := inverseuc.New(cat)
	chatSvc := chatuc.New()
	healthSvc := healthuc.New(cat)

	server := chiTransport.NewServer(forwardSvc, inverseSvc, chatSvc, healthSvc, logger)

	r := chiTransport.NewRouter(server,
		jsonRecoverer(logger),
		chiMiddleware.RequestID,
		wideEventMiddleware(logger),
		// Metrics before CORS so answered preflights are counted too.
		metrics.Middleware(),
		chiTransport.CORSMiddleware(chiTransport.CORSOptions{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials != nil && *cfg.CORS.AllowCredentials,
			MaxAgeSec:        cfg.CORS.MaxAgeSec,
		}),
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("origin", r.Header.Get("Origin")),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
