package handler

import (
	"fmt"
	"net/http"

	"github.com/Mihklz/libcatalog/internal/catalog"
)

// NewRootHandler создаёт обработчик для GET /.
// Выводит HTML-страницу со всеми записями каталога.
func NewRootHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		_, _ = fmt.Fprintf(w, "<html><head><title>%s</title></head><body><h1>%s</h1><ul>",
			c.Name(), c.Name())

		for _, entry := range c.Entries() {
			_, _ = fmt.Fprintf(w, "<li>%s (%s)</li>", entry.Name, entry.Category.Label())
		}

		_, _ = fmt.Fprintf(w, "</ul><p>%d entries</p></body></html>", c.Len())
	}
}
