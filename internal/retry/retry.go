package retry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/logger"
)

// RetryConfig конфигурация для retry-логики
type RetryConfig struct {
	MaxAttempts int             // Максимальное количество попыток (включая первую)
	Delays      []time.Duration // Задержки между попытками
	Classifier  ErrorClassifier // Классификатор ошибок
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 4, // 1 основная + 3 повтора
		Delays:      []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second},
		Classifier:  NewDefaultErrorClassifier(),
	}
}

// delayFor возвращает задержку перед следующей попыткой.
// Если задержек меньше, чем попыток, используется последняя из списка.
func (c *RetryConfig) delayFor(attempt int) time.Duration {
	if len(c.Delays) == 0 {
		return 0
	}
	if attempt >= len(c.Delays) {
		return c.Delays[len(c.Delays)-1]
	}
	return c.Delays[attempt]
}

// Execute выполняет функцию с retry-логикой
func Execute(ctx context.Context, config *RetryConfig, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		// Проверяем контекст перед каждой попыткой
		select {
		case <-ctx.Done():
			return fmt.Errorf("operation cancelled: %w", ctx.Err())
		default:
		}

		err := operation()
		if err == nil {
			if attempt > 0 && logger.Log != nil {
				logger.Log.Info("Operation succeeded after retry",
					zap.Int("attempt", attempt+1),
					zap.Int("max_attempts", config.MaxAttempts),
				)
			}
			return nil
		}

		lastErr = err

		// Если это последняя попытка, не ждем
		if attempt == config.MaxAttempts-1 {
			break
		}

		// Неповторяемую ошибку возвращаем сразу
		classification := config.Classifier.Classify(err)
		if classification == NonRetriable {
			if logger.Log != nil {
				logger.Log.Warn("Non-retriable error encountered, stopping retries",
					zap.Error(err),
					zap.Int("attempt", attempt+1),
				)
			}
			return err
		}

		if logger.Log != nil {
			logger.Log.Warn("Retriable error encountered, will retry",
				zap.Error(err),
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", config.MaxAttempts),
			)
		}

		// Ждем перед следующей попыткой, не забывая про отмену контекста
		select {
		case <-ctx.Done():
			return fmt.Errorf("operation cancelled: %w", ctx.Err())
		case <-time.After(config.delayFor(attempt)):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", config.MaxAttempts, lastErr)
}
