package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
	"github.com/Mihklz/libcatalog/internal/service"
)

// NewBatchAddHandler создаёт обработчик для POST /entries/batch.
// Принимает массив записей каталога в формате JSON и добавляет их
// одной операцией: невалидный batch не меняет каталог.
func NewBatchAddHandler(catalogService *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checkJSONRequest(w, r) {
			return
		}

		var entries []model.Entry
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			logger.Log.Info("Failed to decode JSON batch", zap.Error(err))
			http.Error(w, "invalid JSON format", http.StatusBadRequest)
			return
		}

		if err := catalogService.AddBatch(entries); err != nil {
			if service.IsValidationError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			logger.Log.Error("Failed to add entries batch", zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
