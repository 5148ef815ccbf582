package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/config"
	"github.com/Mihklz/libcatalog/internal/handler"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/middleware"
	"github.com/Mihklz/libcatalog/internal/service"
)

// Server представляет HTTP сервер каталога
type Server struct {
	config         *config.ServerConfig
	catalog        *catalog.Catalog
	catalogService *service.CatalogService
	httpServer     *http.Server
	router         *chi.Mux
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.ServerConfig, c *catalog.Catalog) *Server {
	server := &Server{
		config:         cfg,
		catalog:        c,
		catalogService: service.NewCatalogService(c),
	}

	server.setupRouter()
	server.setupHTTPServer()

	return server
}

// setupRouter настраивает маршруты
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Добавляем middleware
	r.Use(func(next http.Handler) http.Handler {
		return logger.WithLogging(next)
	})
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithHashValidation(s.config.Key))

	// === Эндпоинты добавления записей ===
	r.Post("/entries", handler.NewAddEntryHandler(s.catalogService))
	r.Post("/entries/batch", handler.NewBatchAddHandler(s.catalogService))

	// === Эндпоинты наблюдения за каталогом ===
	r.Get("/report", handler.NewReportHandler(s.catalog))
	r.Get("/contents", handler.NewContentsHandler(s.catalog))
	r.Get("/", handler.NewRootHandler(s.catalog))

	s.router = r
}

// setupHTTPServer настраивает HTTP сервер
func (s *Server) setupHTTPServer() {
	s.httpServer = &http.Server{
		Addr:    s.config.RunAddr,
		Handler: s.router,
	}
}

// Start запускает HTTP сервер в отдельной горутине.
func (s *Server) Start() {
	go func() {
		logger.Log.Info("Starting catalog server",
			zap.String("address", s.config.RunAddr),
			zap.String("catalog", s.config.CatalogName),
			zap.Int("subscriber_capacity", s.config.SubscriberCap),
			zap.String("sample_file", s.config.SampleFilePath),
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed to start",
				zap.Error(err),
				zap.String("address", s.config.RunAddr),
			)
		}
	}()
}

// Shutdown выполняет graceful shutdown сервера
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Log.Info("Server stopped gracefully")
	return nil
}
