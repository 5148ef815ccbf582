package service

import (
	"os"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/loader"
	"github.com/Mihklz/libcatalog/internal/logger"
)

// SampleDataService загружает демонстрационные данные в каталог при старте.
type SampleDataService struct {
	catalog  *catalog.Catalog
	filePath string
	logger   *zap.Logger
}

// NewSampleDataService создает новый сервис загрузки демонстрационных данных.
func NewSampleDataService(c *catalog.Catalog, filePath string) *SampleDataService {
	return &SampleDataService{
		catalog:  c,
		filePath: filePath,
		logger:   logger.Log,
	}
}

// Load читает файл с данными и добавляет записи в каталог.
// Отсутствующий файл не считается ошибкой: это нормально для первого запуска.
func (s *SampleDataService) Load() error {
	if s.filePath == "" {
		return nil
	}

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		s.logger.Info("Sample data file does not exist, skipping",
			zap.String("file", s.filePath))
		return nil
	}

	entries, err := loader.ReadSampleFile(s.filePath)
	if err != nil {
		s.logger.Error("Failed to read sample data file",
			zap.Error(err),
			zap.String("file", s.filePath))
		return err
	}

	for _, entry := range entries {
		s.catalog.AddEntry(entry.Name, entry.Category)
	}

	s.logger.Info("Sample data loaded",
		zap.String("file", s.filePath),
		zap.Int("count", len(entries)))
	return nil
}
