package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay время занятия без даты ("15:04"), хранится в колонке TIME
type TimeOfDay struct {
	time.Time
}

// TimeOfDayFrom берёт из time.Time только часы/минуты/секунды
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// ParseTimeOfDay разбирает строку "HH:MM" или "HH:MM:SS"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	return tod, tod.parse(s)
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("parse time of day %q: %w", s, err)
	}
	t.Time = time.Date(0, 1, 1, parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC)
	return nil
}

// Before сравнивает времена в пределах суток
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Time.Before(other.Time)
}

func (t TimeOfDay) String() string {
	return t.Format("15:04")
}

// Scan принимает time.Time или строку из БД
func (t *TimeOfDay) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = time.Date(0, 1, 1, x.Hour(), x.Minute(), x.Second(), 0, time.UTC)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("time of day: unsupported Scan type %T", v)
	}
}

// Value отдаёт "HH:MM:SS", Postgres сам приводит к TIME
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format("15:04:05"), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04"))
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
