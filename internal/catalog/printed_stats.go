package catalog

import (
	"fmt"
	"io"

	"github.com/Mihklz/libcatalog/internal/model"
)

// PrintedStats реализует Subscriber и накапливает статистику
// по категориям печатных изданий.
type PrintedStats struct {
	counts map[model.Category]int
	total  int
}

// NewPrintedStats создает новый агрегатор печатных изданий.
// Все счетчики начинаются с нуля.
func NewPrintedStats() *PrintedStats {
	return &PrintedStats{
		counts: make(map[model.Category]int),
	}
}

// Notify увеличивает счетчик категории на единицу.
// Категории вне печатного домена игнорируются: подписчику безразличны
// записи, которые он не отслеживает.
func (s *PrintedStats) Notify(category model.Category) {
	if domain, ok := category.Domain(); !ok || domain != model.DomainPrinted {
		return
	}

	s.counts[category]++
	s.total++
}

// WriteReport выводит процентное распределение по категориям печатного
// домена в фиксированном порядке объявления и итоговое количество.
// При нулевом итоге деление не выполняется — выводится фиксированная строка.
func (s *PrintedStats) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Printed matter:")

	if s.total == 0 {
		fmt.Fprintln(w, "  no printed items in the catalog yet")
		return
	}

	for _, c := range model.PrintedCategories() {
		percentage := 100.0 * float64(s.counts[c]) / float64(s.total)
		fmt.Fprintf(w, "  %s: %.1f%%\n", c.Label(), percentage)
	}

	fmt.Fprintf(w, "  Total printed items: %d\n", s.total)
}

// Total возвращает суммарное число учтенных записей.
func (s *PrintedStats) Total() int {
	return s.total
}

// Count возвращает счетчик конкретной категории.
func (s *PrintedStats) Count(category model.Category) int {
	return s.counts[category]
}
