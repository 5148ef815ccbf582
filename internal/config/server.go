package config

import (
	"flag"
	"os"
	"strconv"
)

// ServerConfig - конфигурация сервера каталога.
type ServerConfig struct {
	RunAddr        string // адрес и порт HTTP сервера
	CatalogName    string // имя каталога в отчетах
	SubscriberCap  int    // вместимость реестра подписчиков
	SampleFilePath string // путь к текстовому файлу с демонстрационными данными
	Restore        bool   // загружать ли данные из файла при старте
	Key            string // ключ для подписи данных
}

// LoadServerConfig загружает конфигурацию из флагов командной строки.
// Переменные окружения имеют приоритет над флагами.
func LoadServerConfig() *ServerConfig {
	var runAddr string
	var catalogName string
	var subscriberCap int
	var sampleFilePath string
	var restore bool
	var key string

	// 1. Устанавливаем значения по умолчанию
	flag.StringVar(&runAddr, "a", "localhost:8080", "address and port to run HTTP server")
	flag.StringVar(&catalogName, "n", "Media library", "catalog display name")
	flag.IntVar(&subscriberCap, "s", 2, "subscriber registry capacity")
	flag.StringVar(&sampleFilePath, "f", "", "sample data file path")
	flag.BoolVar(&restore, "r", true, "load sample data on start when file is set")
	flag.StringVar(&key, "k", "", "key for signing data")
	flag.Parse()

	// 2. Проверяем переменные окружения (приоритет выше флагов)
	if envRunAddr := os.Getenv("ADDRESS"); envRunAddr != "" {
		runAddr = envRunAddr
	}

	if envCatalogName := os.Getenv("CATALOG_NAME"); envCatalogName != "" {
		catalogName = envCatalogName
	}

	if envSubscriberCap := os.Getenv("SUBSCRIBER_CAPACITY"); envSubscriberCap != "" {
		if value, err := strconv.Atoi(envSubscriberCap); err == nil {
			subscriberCap = value
		}
	}

	if envSampleFilePath := os.Getenv("SAMPLE_FILE_PATH"); envSampleFilePath != "" {
		sampleFilePath = envSampleFilePath
	}

	if envRestore := os.Getenv("RESTORE"); envRestore != "" {
		if restoreValue, err := strconv.ParseBool(envRestore); err == nil {
			restore = restoreValue
		}
	}

	if envKey := os.Getenv("KEY"); envKey != "" {
		key = envKey
	}

	return &ServerConfig{
		RunAddr:        runAddr,
		CatalogName:    catalogName,
		SubscriberCap:  subscriberCap,
		SampleFilePath: sampleFilePath,
		Restore:        restore,
		Key:            key,
	}
}
