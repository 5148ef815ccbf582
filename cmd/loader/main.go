package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/config"
	"github.com/Mihklz/libcatalog/internal/loader"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
	"github.com/Mihklz/libcatalog/internal/version"
)

func main() {
	version.Print()

	// Инициализируем логгер
	if err := logger.Initialize(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	cfg := config.LoadLoaderConfig()

	logger.Log.Info("Loader started",
		zap.String("server", cfg.ServerAddr),
		zap.String("file", cfg.FilePath),
		zap.Int("batch_size", cfg.BatchSize),
		zap.Int("rate_limit", cfg.RateLimit),
	)

	// Контекст с отменой по сигналу ОС
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Log.Info("Shutdown signal received")
		cancel()
	}()

	entries, err := loader.ReadSampleFile(cfg.FilePath)
	if err != nil {
		logger.Log.Fatal("Failed to read sample data", zap.Error(err))
	}
	if len(entries) == 0 {
		logger.Log.Info("Sample file contains no entries, nothing to send")
		return
	}

	sender := loader.NewEntrySender(cfg.ServerAddr, cfg.Key)

	// Канал с пакетами записей для пула отправителей
	batches := make(chan []model.Entry, cfg.RateLimit*2)

	// Пул воркеров ограничивает число одновременных исходящих запросов
	var wg sync.WaitGroup
	for i := 0; i < cfg.RateLimit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batches {
				if err := sender.SendBatch(ctx, batch); err != nil {
					logger.Log.Error("Batch not delivered", zap.Error(err))
				}
			}
		}()
	}

	// Нарезаем записи на пакеты и раздаем воркерам
loop:
	for start := 0; start < len(entries); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(entries) {
			end = len(entries)
		}

		select {
		case batches <- entries[start:end]:
		case <-ctx.Done():
			logger.Log.Info("Loading cancelled")
			break loop
		}
	}
	close(batches)

	wg.Wait()
	logger.Log.Info("Loader finished", zap.Int("entries", len(entries)))
}
