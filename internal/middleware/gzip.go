package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// gzipWriter оборачивает http.ResponseWriter и прозрачно сжимает ответ.
// Решение о сжатии откладывается до первого WriteHeader, когда уже
// известен Content-Type ответа.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

// shouldCompress проверяет, стоит ли сжимать ответ с данным Content-Type.
func shouldCompress(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "text/plain")
}

func (g *gzipWriter) WriteHeader(statusCode int) {
	if !g.wroteHeader {
		g.wroteHeader = true
		if statusCode < 300 && shouldCompress(g.Header().Get("Content-Type")) {
			g.Header().Set("Content-Encoding", "gzip")
			g.zw = gzip.NewWriter(g.ResponseWriter)
		}
	}
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	if !g.wroteHeader {
		g.WriteHeader(http.StatusOK)
	}
	if g.zw != nil {
		return g.zw.Write(data)
	}
	return g.ResponseWriter.Write(data)
}

// Close досылает буферизованные данные gzip.Writer, если сжатие включалось.
func (g *gzipWriter) Close() error {
	if g.zw != nil {
		return g.zw.Close()
	}
	return nil
}

// gzipReader прозрачно декомпрессирует тело запроса.
type gzipReader struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newGzipReader(body io.ReadCloser) (*gzipReader, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzipReader{
		body: body,
		zr:   zr,
	}, nil
}

func (g *gzipReader) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReader) Close() error {
	if err := g.body.Close(); err != nil {
		return err
	}
	return g.zr.Close()
}

// WithGzip добавляет поддержку gzip сжатия ответов и декомпрессии запросов.
func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ow := w

		// Клиент умеет принимать сжатые ответы
		if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			gw := &gzipWriter{ResponseWriter: w}
			ow = gw
			defer gw.Close()
		}

		// Клиент прислал сжатое тело
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gr, err := newGzipReader(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = gr
			defer gr.Close()
		}

		next.ServeHTTP(ow, r)
	})
}
