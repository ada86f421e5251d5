package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02" // YYYY-MM-DD

// DateString календарная дата в строковом виде "YYYY-MM-DD"
// Используется для обмена датами с API и хранения дат без времени
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString валидирует строку и возвращает DateString
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return DateString(s), nil
}

// Time возвращает дату как time.Time (полночь UTC)
// Для невалидной строки возвращает нулевое время
func (d DateString) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before проверяет, что дата строго раньше другой
func (d DateString) Before(other DateString) bool {
	return d.Time().Before(other.Time())
}

// After проверяет, что дата строго позже другой
func (d DateString) After(other DateString) bool {
	return d.Time().After(other.Time())
}

// IsZero проверяет, что дата пустая или невалидная
func (d DateString) IsZero() bool {
	return d == "" || d.Time().IsZero()
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
