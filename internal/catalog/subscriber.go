package catalog

import (
	"io"

	"github.com/Mihklz/libcatalog/internal/model"
)

// Subscriber представляет наблюдателя каталога, который получает
// уведомления о категориях добавленных записей.
type Subscriber interface {
	// Notify сообщает подписчику категорию новой записи.
	// Категории вне домена интереса подписчика игнорируются без ошибки.
	Notify(category model.Category)

	// WriteReport выводит накопленную статистику подписчика.
	WriteReport(w io.Writer)
}
