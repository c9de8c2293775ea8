package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString время суток в формате "HH:MM"
// Используется для границ слотов расписания: слоты привязаны к одному
// операционному дню, полноценный time.Time здесь избыточен
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// minutes возвращает количество минут с начала дня
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (ts TimeString) Equal(other TimeString) bool {
	a, errA := ts.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a == b
}

// AddMinutes возвращает время, сдвинутое на n минут вперед
// Переход через полночь считается ошибкой: расписание живет в рамках одного дня
func (ts TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := ts.minutes()
	if err != nil {
		return "", err
	}
	m += n
	if m < 0 || m >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TEXT ("10:00") и TIME ("10:00:00") колонки
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// TIME колонки приходят как "HH:MM:SS", обрезаем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
