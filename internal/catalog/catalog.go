package catalog

import (
	"fmt"
	"io"
	"iter"
	"sync"

	"go.uber.org/zap"

	"github.com/Mihklz/libcatalog/internal/logger"
	"github.com/Mihklz/libcatalog/internal/model"
)

// Catalog реализует издателя: владеет упорядоченным списком записей
// и ограниченным реестром подписчиков.
//
// Список записей только растет, порядок добавления сохраняется.
// Записи и реестр изменяются только самим каталогом.
type Catalog struct {
	name        string
	capacity    int
	mu          sync.RWMutex
	entries     []model.Entry
	subscribers []Subscriber
}

// New создает новый каталог с заданным именем и вместимостью реестра подписчиков.
func New(name string, capacity int) *Catalog {
	if capacity < 0 {
		capacity = 0
	}

	return &Catalog{
		name:        name,
		capacity:    capacity,
		subscribers: make([]Subscriber, 0, capacity),
	}
}

// Register добавляет подписчика в реестр.
// Возвращает false, если реестр заполнен; реестр при этом не меняется.
// Порядок регистрации сохраняется для рассылки уведомлений и отчетов.
func (c *Catalog) Register(sub Subscriber) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.subscribers) >= c.capacity {
		if logger.Log != nil {
			logger.Log.Warn("Subscriber registry is full, registration rejected",
				zap.String("catalog", c.name),
				zap.Int("capacity", c.capacity),
			)
		}
		return false
	}

	c.subscribers = append(c.subscribers, sub)
	return true
}

// AddEntry создает запись, добавляет её в каталог и синхронно уведомляет
// всех зарегистрированных подписчиков в порядке их регистрации.
// После возврата состояние всех подписчиков уже учитывает новую запись.
func (c *Catalog) AddEntry(name string, category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, model.NewEntry(name, category))

	for _, sub := range c.subscribers {
		sub.Notify(category)
	}
}

// Name возвращает имя каталога.
func (c *Catalog) Name() string {
	return c.name
}

// Len возвращает количество записей в каталоге.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SubscriberCount возвращает число зарегистрированных подписчиков.
func (c *Catalog) SubscriberCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers)
}

// WriteReport выводит имя каталога, количество записей и отчеты всех
// подписчиков в порядке их регистрации.
// Чтение без побочных эффектов: повторный вызов без промежуточных
// AddEntry дает идентичный текст.
func (c *Catalog) WriteReport(w io.Writer) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fmt.Fprintf(w, "Catalog %q: %d entries\n", c.name, len(c.entries))

	for _, sub := range c.subscribers {
		sub.WriteReport(w)
	}
}

// Entries возвращает копию списка записей в порядке добавления.
func (c *Catalog) Entries() []model.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]model.Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Contents возвращает ленивую последовательность названий записей
// в порядке добавления. Последовательность конечна и её можно
// перебирать повторно без побочных эффектов.
func (c *Catalog) Contents() iter.Seq[string] {
	return func(yield func(string) bool) {
		// Снимок под блокировкой, чтобы перебор не держал каталог
		c.mu.RLock()
		names := make([]string, len(c.entries))
		for i, e := range c.entries {
			names[i] = e.Name
		}
		c.mu.RUnlock()

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}
