package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
)

// ReadSampleFile читает текстовый файл с демонстрационными данными.
// Формат: одна запись на строку, "название;категория".
// Пустые строки и строки, начинающиеся с '#', пропускаются.
// Строки с неизвестной категорией или без разделителя пропускаются
// с предупреждением в лог, остальные записи при этом загружаются.
func ReadSampleFile(path string) ([]model.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer file.Close()

	var entries []model.Entry

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, categoryStr, found := strings.Cut(line, ";")
		name = strings.TrimSpace(name)
		categoryStr = strings.TrimSpace(categoryStr)
		if !found || name == "" {
			if logger.Log != nil {
				logger.Log.Warn("Skipping malformed sample line",
					zap.String("file", path),
					zap.Int("line", lineNo),
				)
			}
			continue
		}

		category, err := model.ParseCategory(categoryStr)
		if err != nil {
			if logger.Log != nil {
				logger.Log.Warn("Skipping sample line with unknown category",
					zap.String("file", path),
					zap.Int("line", lineNo),
					zap.String("category", categoryStr),
				)
			}
			continue
		}

		entries = append(entries, model.NewEntry(name, category))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sample file: %w", err)
	}

	return entries, nil
}
