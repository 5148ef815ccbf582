package handler

import (
	"fmt"
	"net/http"

	"github.com/Mihklz/libcatalog/internal/catalog"
)

// NewContentsHandler создаёт обработчик для GET /contents.
// Выводит названия записей каталога в порядке добавления, по одному на строку.
func NewContentsHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "only GET method allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		for name := range c.Contents() {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}
