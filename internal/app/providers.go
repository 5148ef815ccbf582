package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/catalog"
	"github.com/Mihklz/libcatalog/internal/config"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/server"
	"github.com/Mihklz/libcatalog/internal/service"
)

// Module собирает все зависимости приложения для fx.
var Module = fx.Options(
	fx.Provide(
		ProvideConfig,
		ProvideCatalog,
		ProvideSampleDataService,
		ProvideServer,
	),
	fx.Invoke(registerHooks),
)

// ProvideConfig предоставляет конфигурацию сервера
func ProvideConfig() *config.ServerConfig {
	return config.LoadServerConfig()
}

// ProvideCatalog предоставляет каталог с зарегистрированными агрегаторами.
// Подписчики регистрируются один раз, до добавления первой записи.
func ProvideCatalog(cfg *config.ServerConfig) *catalog.Catalog {
	c := catalog.New(cfg.CatalogName, cfg.SubscriberCap)

	if !c.Register(catalog.NewPrintedStats()) {
		logger.Log.Warn("Printed stats subscriber rejected: registry is full",
			zap.Int("capacity", cfg.SubscriberCap))
	}
	if !c.Register(catalog.NewRecordingStats()) {
		logger.Log.Warn("Recording stats subscriber rejected: registry is full",
			zap.Int("capacity", cfg.SubscriberCap))
	}

	return c
}

// ProvideSampleDataService предоставляет сервис загрузки демонстрационных данных
func ProvideSampleDataService(cfg *config.ServerConfig, c *catalog.Catalog) *service.SampleDataService {
	return service.NewSampleDataService(c, cfg.SampleFilePath)
}

// ProvideServer предоставляет HTTP сервер
func ProvideServer(cfg *config.ServerConfig, c *catalog.Catalog) *server.Server {
	return server.NewServer(cfg, c)
}

// registerHooks привязывает запуск и остановку сервера к жизненному циклу fx.
func registerHooks(lc fx.Lifecycle, srv *server.Server, samples *service.SampleDataService, cfg *config.ServerConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Загружаем данные при старте, если это включено.
			// Ошибка загрузки не мешает запуску сервера.
			if cfg.Restore {
				if err := samples.Load(); err != nil {
					logger.Log.Error("Failed to load sample data", zap.Error(err))
				}
			}

			srv.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
