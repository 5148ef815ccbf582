package loader

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/crypto"
	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
	"github.com/Mihklz/libcatalog/internal/retry"
)

// EntrySender отправляет записи каталога на сервер по HTTP.
type EntrySender struct {
	client      *http.Client
	serverAddr  string
	retryConfig *retry.RetryConfig
	key         string // ключ для подписи данных
}

// NewEntrySender создает новый отправитель записей.
func NewEntrySender(serverAddr string, key string) *EntrySender {
	return &EntrySender{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		serverAddr:  serverAddr,
		retryConfig: retry.DefaultRetryConfig(),
		key:         key,
	}
}

// compressData сжимает данные в формате gzip
func compressData(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if _, err := gz.Write(data); err != nil {
		return nil, err
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SendBatch отправляет пакет записей одним запросом с retry-логикой.
func (s *EntrySender) SendBatch(ctx context.Context, entries []model.Entry) error {
	err := retry.Execute(ctx, s.retryConfig, func() error {
		return s.sendBatch(ctx, entries)
	})
	if err != nil {
		if logger.Log != nil {
			logger.Log.Error("Failed to send entries batch",
				zap.Error(err),
				zap.Int("count", len(entries)),
			)
		}
		return err
	}

	if logger.Log != nil {
		logger.Log.Info("Entries batch sent", zap.Int("count", len(entries)))
	}
	return nil
}

// sendBatch выполняет один POST /entries/batch запрос.
func (s *EntrySender) sendBatch(ctx context.Context, entries []model.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	// Подпись считается по несжатому телу: сервер проверяет её
	// после декомпрессии
	hash := crypto.CalculateHMAC(data, s.key)

	compressed, err := compressData(data)
	if err != nil {
		return fmt.Errorf("failed to compress entries: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.serverAddr+"/entries/batch", bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	if hash != "" {
		req.Header.Set("HashSHA256", hash)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Статус попадает в текст ошибки, по нему классификатор
		// решает, повторять ли запрос
		return fmt.Errorf("server returned %s", resp.Status)
	}

	return nil
}
