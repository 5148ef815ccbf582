package main

import (
	"log"

	"go.uber.org/fx"

	"github.com/Mihklz/libcatalog/internal/app"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/version"
)

func main() {
	version.Print()

	// Инициализируем логгер до сборки зависимостей
	if err := logger.Initialize(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	// fx управляет жизненным циклом: поднимает сервер и
	// останавливает его по сигналу ОС
	fx.New(app.Module).Run()
}
