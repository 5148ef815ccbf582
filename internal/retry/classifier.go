package retry

import (
	"errors"
	"net"
	"strings"
)

// ErrorClassification тип для классификации ошибок
type ErrorClassification int

const (
	// NonRetriable - операцию не следует повторять
	NonRetriable ErrorClassification = iota

	// Retriable - операцию можно повторить
	Retriable
)

// ErrorClassifier интерфейс для классификации ошибок
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// DefaultErrorClassifier классификатор ошибок по умолчанию
type DefaultErrorClassifier struct{}

// NewDefaultErrorClassifier создает новый классификатор ошибок
func NewDefaultErrorClassifier() *DefaultErrorClassifier {
	return &DefaultErrorClassifier{}
}

// Classify классифицирует ошибку и возвращает ErrorClassification
func (c *DefaultErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	// Сетевые ошибки можно повторить
	if isNetworkError(err) {
		return Retriable
	}

	// Временные ошибки HTTP можно повторить
	if isTemporaryHTTPError(err) {
		return Retriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}

// isNetworkError проверяет, является ли ошибка сетевой (retriable)
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		// Сетевые ошибки с таймаутом можно повторить
		return netErr.Timeout()
	}

	// Проверяем по тексту ошибки
	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"no route to host",
		"network is unreachable",
		"temporary failure",
		"timeout",
		"dial tcp",
		"connect: connection refused",
		"i/o timeout",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}

	return false
}

// isTemporaryHTTPError проверяет, является ли ошибка HTTP временной (retriable)
func isTemporaryHTTPError(err error) bool {
	errStr := strings.ToLower(err.Error())

	// HTTP статус коды, которые можно повторить
	temporaryStatusCodes := []string{
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"429 too many requests",
	}

	for _, statusCode := range temporaryStatusCodes {
		if strings.Contains(errStr, statusCode) {
			return true
		}
	}

	return false
}
