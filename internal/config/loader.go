package config

import (
	"flag"
	"os"
	"strconv"
)

// LoaderConfig - конфигурация загрузчика демонстрационных данных.
type LoaderConfig struct {
	ServerAddr string // адрес сервера каталога
	FilePath   string // путь к текстовому файлу с данными
	BatchSize  int    // количество записей в одном batch запросе
	RateLimit  int    // ограничение на одновременные исходящие запросы
	Key        string // ключ для подписи данных
}

// LoadLoaderConfig загружает конфигурацию загрузчика из флагов и окружения.
func LoadLoaderConfig() *LoaderConfig {
	var serverAddr string
	var filePath string
	var batchSize int
	var rateLimit int
	var key string

	flag.StringVar(&serverAddr, "a", "localhost:8080", "address of catalog server")
	flag.StringVar(&filePath, "f", "sample.txt", "sample data file path")
	flag.IntVar(&batchSize, "b", 20, "entries per batch request")
	flag.IntVar(&rateLimit, "l", 2, "max concurrent outgoing requests")
	flag.StringVar(&key, "k", "", "key for signing data")
	flag.Parse()

	if envServerAddr := os.Getenv("ADDRESS"); envServerAddr != "" {
		serverAddr = envServerAddr
	}

	if envFilePath := os.Getenv("SAMPLE_FILE_PATH"); envFilePath != "" {
		filePath = envFilePath
	}

	if envBatchSize := os.Getenv("BATCH_SIZE"); envBatchSize != "" {
		if size, err := strconv.Atoi(envBatchSize); err == nil {
			batchSize = size
		}
	}

	if envRateLimit := os.Getenv("RATE_LIMIT"); envRateLimit != "" {
		if limit, err := strconv.Atoi(envRateLimit); err == nil {
			rateLimit = limit
		}
	}

	if envKey := os.Getenv("KEY"); envKey != "" {
		key = envKey
	}

	return &LoaderConfig{
		ServerAddr: "http://" + serverAddr,
		FilePath:   filePath,
		BatchSize:  batchSize,
		RateLimit:  rateLimit,
		Key:        key,
	}
}
