package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
	"github.com/Mihklz/libcatalog/internal/service"
)

// checkJSONRequest проверяет HTTP метод и Content-Type запроса.
func checkJSONRequest(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		logger.Log.Info("Invalid method for JSON API",
			zap.String("method", r.Method),
			zap.String("expected", http.MethodPost),
		)
		http.Error(w, "only POST method allowed", http.StatusMethodNotAllowed)
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "application/json" {
		logger.Log.Info("Invalid content type",
			zap.String("content_type", contentType),
			zap.String("expected", "application/json"),
		)
		http.Error(w, "content type must be application/json", http.StatusBadRequest)
		return false
	}

	return true
}

// NewAddEntryHandler создаёт обработчик для POST /entries.
// Принимает одну запись каталога в формате JSON.
func NewAddEntryHandler(catalogService *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checkJSONRequest(w, r) {
			return
		}

		var entry model.Entry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			logger.Log.Info("Failed to decode JSON", zap.Error(err))
			http.Error(w, "invalid JSON format", http.StatusBadRequest)
			return
		}

		if err := catalogService.AddEntry(entry.Name, string(entry.Category)); err != nil {
			if service.IsValidationError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(entry)
	}
}
