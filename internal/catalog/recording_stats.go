package catalog

import (
	"fmt"
	"io"

	"github.com/Mihklz/libcatalog/internal/model"
)

// RecordingStats реализует Subscriber и накапливает статистику
// по категориям аудио- и видеозаписей.
type RecordingStats struct {
	counts map[model.Category]int
	total  int
}

// NewRecordingStats создает новый агрегатор записей.
func NewRecordingStats() *RecordingStats {
	return &RecordingStats{
		counts: make(map[model.Category]int),
	}
}

// Notify увеличивает счетчик категории на единицу.
// Категории вне домена записей игнорируются без ошибки.
func (s *RecordingStats) Notify(category model.Category) {
	if domain, ok := category.Domain(); !ok || domain != model.DomainRecording {
		return
	}

	s.counts[category]++
	s.total++
}

// WriteReport выводит процентное распределение по категориям домена записей
// в фиксированном порядке объявления и итоговое количество.
func (s *RecordingStats) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Recordings:")

	if s.total == 0 {
		fmt.Fprintln(w, "  no recordings in the catalog yet")
		return
	}

	for _, c := range model.RecordingCategories() {
		percentage := 100.0 * float64(s.counts[c]) / float64(s.total)
		fmt.Fprintf(w, "  %s: %.1f%%\n", c.Label(), percentage)
	}

	fmt.Fprintf(w, "  Total recordings: %d\n", s.total)
}

// Total возвращает суммарное число учтенных записей.
func (s *RecordingStats) Total() int {
	return s.total
}

// Count возвращает счетчик конкретной категории.
func (s *RecordingStats) Count(category model.Category) int {
	return s.counts[category]
}
