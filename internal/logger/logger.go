package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log - глобальный логгер для всего приложения (синглтон)
var Log *zap.Logger

// Initialize инициализирует глобальный логгер.
// Вызывается один раз при старте приложения.
func Initialize() error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		return err
	}

	Log = logger
	return nil
}

// responseData хранит перехваченные статус и размер HTTP-ответа
type responseData struct {
	status int
	size   int
}

// loggingResponseWriter - обёртка над http.ResponseWriter,
// перехватывающая статус код и размер ответа для логирования
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

// Write перехватывает запись тела ответа и накапливает его размер
func (lw *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := lw.ResponseWriter.Write(b)
	lw.responseData.size += size
	return size, err
}

// WriteHeader перехватывает установку статус кода ответа
func (lw *loggingResponseWriter) WriteHeader(statusCode int) {
	lw.ResponseWriter.WriteHeader(statusCode)
	lw.responseData.status = statusCode
}

// WithLogging - middleware для логирования HTTP запросов и ответов
func WithLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Статус по умолчанию 200 на случай, если WriteHeader не вызывался
		responseData := &responseData{
			status: 200,
			size:   0,
		}

		lw := &loggingResponseWriter{
			ResponseWriter: w,
			responseData:   responseData,
		}

		h.ServeHTTP(lw, r)

		duration := time.Since(start)

		Log.Info("HTTP request processed",
			zap.String("uri", r.RequestURI),
			zap.String("method", r.Method),
			zap.Int("status", responseData.status),
			zap.Duration("duration", duration),
			zap.Int("size", responseData.size),
		)
	})
}
