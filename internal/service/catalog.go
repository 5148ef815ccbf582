package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
)

// CatalogService отвечает за бизнес-логику работы с каталогом:
// валидацию входных данных и добавление записей.
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCatalogService создает новый сервис каталога.
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{
		catalog: c,
		logger:  logger.Log,
	}
}

// ValidationError представляет ошибку валидации.
type ValidationError struct {
	Message string
}

// Error возвращает текст ошибки валидации.
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// validateEntry проверяет корректность записи до добавления в каталог.
func (s *CatalogService) validateEntry(name, category string) (model.Category, error) {
	if name == "" {
		return "", &ValidationError{Message: "Entry name is required"}
	}

	parsed, err := model.ParseCategory(category)
	if err != nil {
		return "", &ValidationError{Message: fmt.Sprintf("Entry '%s': %v", name, err)}
	}

	return parsed, nil
}

// AddEntry валидирует и добавляет одну запись в каталог.
func (s *CatalogService) AddEntry(name, category string) error {
	parsed, err := s.validateEntry(name, category)
	if err != nil {
		s.logger.Error("Entry validation failed",
			zap.String("name", name),
			zap.String("category", category),
			zap.Error(err))
		return err
	}

	s.catalog.AddEntry(name, parsed)

	s.logger.Info("Entry added",
		zap.String("name", name),
		zap.String("category", category))
	return nil
}

// AddBatch валидирует и добавляет множество записей.
// Все записи проверяются до первого добавления: невалидный batch
// не меняет состояние каталога.
func (s *CatalogService) AddBatch(entries []model.Entry) error {
	if len(entries) == 0 {
		return &ValidationError{Message: "Batch cannot be empty"}
	}

	// Валидируем все записи перед добавлением
	parsed := make([]model.Category, len(entries))
	for i, entry := range entries {
		category, err := s.validateEntry(entry.Name, string(entry.Category))
		if err != nil {
			s.logger.Error("Entry validation failed",
				zap.String("name", entry.Name),
				zap.String("category", string(entry.Category)),
				zap.Error(err))
			return err
		}
		parsed[i] = category
	}

	for i, entry := range entries {
		s.catalog.AddEntry(entry.Name, parsed[i])
	}

	s.logger.Info("Batch entries added", zap.Int("count", len(entries)))
	return nil
}
