package handler

import (
	"bytes"
	"fmt"
	"net/http/httptest"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/service"
)

// ExampleNewAddEntryHandler демонстрирует работу JSON-эндпоинта добавления записей.
func ExampleNewAddEntryHandler() {
	c := catalog.New("library", 1)
	c.Register(catalog.NewPrintedStats())

	handler := NewAddEntryHandler(service.NewCatalogService(c))

	body := []byte(`{"name":"Dune","category":"book"}`)
	req := httptest.NewRequest("POST", "/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	fmt.Printf("status: %d, entries: %d\n", rec.Code, c.Len())

	// Output:
	// status: 200, entries: 1
}
