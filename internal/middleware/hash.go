package middleware

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/crypto"
	"github.com/Mihklz/libcatalog/internal/logger"
)

// WithHashValidation создает middleware для проверки подписи тела запроса.
// Если ключ не задан, проверка пропускается.
func WithHashValidation(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Log.Error("Failed to read request body", zap.Error(err))
				http.Error(w, "Failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body.Close()

			// Восстанавливаем тело запроса для последующих обработчиков
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			// Проверяем подпись только если клиент её прислал
			receivedHash := r.Header.Get("HashSHA256")
			if receivedHash != "" {
				if !crypto.ValidateHMAC(body, key, receivedHash) {
					logger.Log.Warn("Hash validation failed",
						zap.String("received_hash", receivedHash),
						zap.String("method", r.Method),
						zap.String("url", r.URL.Path),
					)
					http.Error(w, "Hash validation failed", http.StatusBadRequest)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
