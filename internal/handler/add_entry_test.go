package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/service"
)

func init() {
	// Инициализируем логгер для тестов
	logger.Log = zap.NewNop() // Используем no-op логгер для тестов
}

// newTestCatalog создает каталог с обоими агрегаторами для тестов.
func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c := catalog.New("test", 2)
	if !c.Register(catalog.NewPrintedStats()) {
		t.Fatal("failed to register printed stats")
	}
	if !c.Register(catalog.NewRecordingStats()) {
		t.Fatal("failed to register recording stats")
	}
	return c
}

func TestAddEntryHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		contentType    string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid book entry",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"name":"Dune","category":"book"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid cd entry",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"name":"Kind of Blue","category":"cd"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown category",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"name":"Something","category":"vinyl"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"category":"book"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			method:         http.MethodPost,
			contentType:    "application/json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong content type",
			method:         http.MethodPost,
			contentType:    "text/plain",
			body:           `{"name":"Dune","category":"book"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			contentType:    "application/json",
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t)
			handler := NewAddEntryHandler(service.NewCatalogService(c))

			req := httptest.NewRequest(tt.method, "/entries", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, 1, c.Len())
			} else {
				// Невалидный запрос не меняет каталог
				assert.Equal(t, 0, c.Len())
			}
		})
	}
}

func TestContentsHandler(t *testing.T) {
	c := newTestCatalog(t)
	addService := service.NewCatalogService(c)
	if err := addService.AddEntry("Dune", "book"); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if err := addService.AddEntry("Kind of Blue", "cd"); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	handler := NewContentsHandler(c)

	req := httptest.NewRequest(http.MethodGet, "/contents", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune\nKind of Blue\n", w.Body.String())
}

func TestRootHandler(t *testing.T) {
	c := newTestCatalog(t)
	c.AddEntry("Dune", "book")

	handler := NewRootHandler(c)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "Dune"), "page should list the entry")
	assert.True(t, strings.Contains(body, "1 entries"), "page should show entry count")
}
