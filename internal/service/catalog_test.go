package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
)

func init() {
	// Инициализируем логгер для тестов
	logger.Log = zap.NewNop() // Используем no-op логгер для тестов
}

// TestAddEntryValidation проверяет валидацию одиночной записи.
func TestAddEntryValidation(t *testing.T) {
	tests := []struct {
		name      string
		entryName string
		category  string
		wantErr   bool
	}{
		{name: "valid book", entryName: "Dune", category: "book", wantErr: false},
		{name: "valid audiobook", entryName: "Dune (audio)", category: "audiobook", wantErr: false},
		{name: "empty name", entryName: "", category: "book", wantErr: true},
		{name: "unknown category", entryName: "Something", category: "vinyl", wantErr: true},
		{name: "empty category", entryName: "Something", category: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.New("test", 0)
			s := NewCatalogService(c)

			err := s.AddEntry(tt.entryName, tt.category)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
				assert.Equal(t, 0, c.Len())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, c.Len())
		})
	}
}

// TestAddBatchAllOrNothing проверяет, что невалидный batch не меняет каталог.
func TestAddBatchAllOrNothing(t *testing.T) {
	c := catalog.New("test", 1)
	printed := catalog.NewPrintedStats()
	require.True(t, c.Register(printed))

	s := NewCatalogService(c)

	// Вторая запись невалидна - не добавляется ни одна
	err := s.AddBatch([]model.Entry{
		{Name: "Dune", Category: model.Book},
		{Name: "Something", Category: "vinyl"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, printed.Total())

	// Валидный batch добавляется целиком
	err = s.AddBatch([]model.Entry{
		{Name: "Dune", Category: model.Book},
		{Name: "Wired", Category: model.Magazine},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, printed.Total())
}

// TestAddBatchEmpty проверяет отказ на пустом batch.
func TestAddBatchEmpty(t *testing.T) {
	s := NewCatalogService(catalog.New("test", 0))

	err := s.AddBatch(nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
