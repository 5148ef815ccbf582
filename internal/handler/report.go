package handler

import (
	"bytes"
	"net/http"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/pool"
)

// reportBuffers - пул буферов для рендеринга отчетов.
// Отчет сначала собирается в буфер, чтобы ответ ушел одним Write.
var reportBuffers = pool.New(func() *bytes.Buffer {
	return &bytes.Buffer{}
})

// NewReportHandler создаёт обработчик для GET /report.
// Выводит текстовый отчет каталога и всех его подписчиков.
func NewReportHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "only GET method allowed", http.StatusMethodNotAllowed)
			return
		}

		buf := reportBuffers.Get()
		defer reportBuffers.Put(buf)

		c.WriteReport(buf)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
