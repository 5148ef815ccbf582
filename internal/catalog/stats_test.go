package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mihklz/libcatalog/internal/model"
)

// TestPrintedStatsIgnoresRecordings проверяет, что уведомления чужого домена
// не меняют счетчики.
func TestPrintedStatsIgnoresRecordings(t *testing.T) {
	s := NewPrintedStats()

	s.Notify(model.CD)
	s.Notify(model.DVD)
	s.Notify(model.Audiobook)

	assert.Equal(t, 0, s.Total())

	s.Notify(model.Book)
	assert.Equal(t, 1, s.Total())
	assert.Equal(t, 1, s.Count(model.Book))
}

// TestRecordingStatsIgnoresPrinted проверяет зеркальный случай для записей.
func TestRecordingStatsIgnoresPrinted(t *testing.T) {
	s := NewRecordingStats()

	s.Notify(model.Book)
	s.Notify(model.Magazine)
	s.Notify(model.Newspaper)

	assert.Equal(t, 0, s.Total())

	s.Notify(model.DVD)
	assert.Equal(t, 1, s.Total())
	assert.Equal(t, 1, s.Count(model.DVD))
}

// TestPrintedStatsEmptyReport проверяет отчет без единого уведомления:
// одна фиксированная строка, без процентов.
func TestPrintedStatsEmptyReport(t *testing.T) {
	s := NewPrintedStats()

	var buf bytes.Buffer
	s.WriteReport(&buf)

	assert.Equal(t, "Printed matter:\n  no printed items in the catalog yet\n", buf.String())
	assert.NotContains(t, buf.String(), "%")
}

// TestRecordingStatsEmptyReport проверяет отчет записей без уведомлений.
func TestRecordingStatsEmptyReport(t *testing.T) {
	s := NewRecordingStats()

	var buf bytes.Buffer
	s.WriteReport(&buf)

	assert.Equal(t, "Recordings:\n  no recordings in the catalog yet\n", buf.String())
}

// TestPrintedStatsPercentages проверяет распределение 50/25/25.
func TestPrintedStatsPercentages(t *testing.T) {
	s := NewPrintedStats()

	s.Notify(model.Book)
	s.Notify(model.Book)
	s.Notify(model.Magazine)
	s.Notify(model.Newspaper)

	var buf bytes.Buffer
	s.WriteReport(&buf)

	expected := strings.Join([]string{
		"Printed matter:",
		"  Books: 50.0%",
		"  Magazines: 25.0%",
		"  Newspapers: 25.0%",
		"  Total printed items: 4",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

// TestStatsPercentagesSumTo100 проверяет свойство: каждый процент лежит
// в [0, 100], а их сумма равна 100 с точностью до погрешности float.
func TestStatsPercentagesSumTo100(t *testing.T) {
	s := NewRecordingStats()

	notifications := []model.Category{
		model.CD, model.CD, model.CD, model.DVD, model.Audiobook,
		model.Audiobook, model.CD,
	}
	for _, c := range notifications {
		s.Notify(c)
	}

	require.Equal(t, len(notifications), s.Total())

	sum := 0.0
	for _, c := range model.RecordingCategories() {
		p := 100.0 * float64(s.Count(c)) / float64(s.Total())
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
		sum += p
	}

	assert.InDelta(t, 100.0, sum, 1e-9)
}

// TestStatsMonotonicCounters проверяет, что счетчики только растут
// и итог всегда равен сумме счетчиков.
func TestStatsMonotonicCounters(t *testing.T) {
	s := NewPrintedStats()

	prevTotal := 0
	for i := 0; i < 50; i++ {
		cat := model.PrintedCategories()[i%3]
		s.Notify(cat)

		require.Equal(t, prevTotal+1, s.Total())
		prevTotal = s.Total()

		sum := 0
		for _, c := range model.PrintedCategories() {
			sum += s.Count(c)
		}
		require.Equal(t, s.Total(), sum)
	}
}
