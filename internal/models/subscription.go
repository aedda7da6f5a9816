// Package models содержит доменные структуры, описывающие подписку,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Допустимые значения для полей Currency и Frequency.
const (
	CurrencyUSD = "USD"
	CurrencyHNL = "HNL"

	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике, хранилище и на клиенте.
// Поля ID и CreatedAt назначаются сервером и никогда не принимаются от клиента.
type Subscription struct {
	ID          int       `json:"id"`           // Идентификатор, назначается базой данных
	Name        string    `json:"name"`         // Название сервиса подписки
	Price       float64   `json:"price"`        // Цена за период, в валюте Currency
	Currency    string    `json:"currency"`     // Валюта: USD или HNL
	Frequency   string    `json:"frequency"`    // Периодичность списания: monthly или yearly
	PaymentDate Date      `json:"payment_date"` // Дата ближайшего платежа
	CreatedAt   time.Time `json:"created_at"`   // Дата создания записи, назначается базой данных
}

// DummyCreateEntry используется для приёма данных из JSON-запроса на создание,
// прежде чем конвертировать их в Subscription.
// Price объявлен указателем, чтобы нулевая цена проходила проверку required.
type DummyCreateEntry struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Currency    string   `json:"currency" validate:"required,oneof=USD HNL"`
	Frequency   string   `json:"frequency" validate:"required,oneof=monthly yearly"`
	PaymentDate *Date    `json:"payment_date" validate:"required"`
}

// DummyUpdateEntry используется для приёма данных из JSON-запроса на частичное обновление.
// Все поля опциональны: отсутствующее поле (nil) не изменяется операцией.
// Пустой запрос {} валиден и не изменяет запись.
type DummyUpdateEntry struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency" validate:"omitempty,oneof=USD HNL"`
	Frequency   *string  `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	PaymentDate *Date    `json:"payment_date" validate:"omitempty"`
}

// dateLayout — каноничный формат даты платежа: только дата, без времени.
const dateLayout = "2006-01-02"

// Date хранит календарную дату без времени суток.
// В JSON сериализуется строго в формате 2006-01-02, при разборе принимает
// как 2006-01-02, так и полный RFC3339 (приводя его к дате).
type Date struct {
	time.Time
}

// NewDate создаёт Date из года, месяца и дня в UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает строку с датой, принимая канонический формат
// 2006-01-02 или полный RFC3339.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want %s or RFC3339", s, dateLayout)
	}
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

// String возвращает дату в каноническом формате 2006-01-02.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON сериализует дату в строку 2006-01-02.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату из строки 2006-01-02 или RFC3339.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку типа date.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan реализует sql.Scanner для чтения из колонки типа date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
