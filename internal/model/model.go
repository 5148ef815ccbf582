package model

import "fmt"

// Category — категория записи каталога.
// Набор категорий закрытый и известен на этапе компиляции.
type Category string

// Категории печатных изданий.
const (
	Book      Category = "book"
	Magazine  Category = "magazine"
	Newspaper Category = "newspaper"
)

// Категории аудио- и видеозаписей.
const (
	CD        Category = "cd"
	DVD       Category = "dvd"
	Audiobook Category = "audiobook"
)

// Domain — домен интереса подписчика.
// Каждая категория принадлежит ровно одному домену.
type Domain string

const (
	// DomainPrinted - печатные издания
	DomainPrinted Domain = "printed"

	// DomainRecording - записи
	DomainRecording Domain = "recording"
)

// PrintedCategories возвращает категории печатных изданий
// в фиксированном порядке объявления.
func PrintedCategories() []Category {
	return []Category{Book, Magazine, Newspaper}
}

// RecordingCategories возвращает категории записей
// в фиксированном порядке объявления.
func RecordingCategories() []Category {
	return []Category{CD, DVD, Audiobook}
}

// Domain возвращает домен категории.
// Второе значение false означает, что категория не входит в перечисление.
// Switch перечисляет все члены перечисления: при добавлении новой категории
// её нужно добавить сюда, иначе она не попадет ни в один домен.
func (c Category) Domain() (Domain, bool) {
	switch c {
	case Book, Magazine, Newspaper:
		return DomainPrinted, true
	case CD, DVD, Audiobook:
		return DomainRecording, true
	default:
		return "", false
	}
}

// Label возвращает отображаемое название категории для отчетов.
func (c Category) Label() string {
	switch c {
	case Book:
		return "Books"
	case Magazine:
		return "Magazines"
	case Newspaper:
		return "Newspapers"
	case CD:
		return "CDs"
	case DVD:
		return "DVDs"
	case Audiobook:
		return "Audiobooks"
	default:
		return string(c)
	}
}

// ParseCategory преобразует строку в Category.
// Возвращает ошибку, если строка не соответствует ни одной известной категории.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := c.Domain(); !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Entry — неизменяемая запись каталога: название и ровно одна категория.
type Entry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// NewEntry создает новую запись каталога.
func NewEntry(name string, category Category) Entry {
	return Entry{
		Name:     name,
		Category: category,
	}
}
