package model

import (
	"fmt"
	"strings"
)

// Weekday день недели занятия
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdaysByName = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// ParseWeekday разбирает название дня недели без учёта регистра
func ParseWeekday(s string) (Weekday, error) {
	day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return day, nil
}

// ParseDayList разбирает список дней через запятую.
// Пробелы обрезаются, дубликаты отбрасываются, порядок сохраняется.
func ParseDayList(days string) ([]Weekday, error) {
	var result []Weekday
	seen := make(map[Weekday]bool)

	for _, token := range strings.Split(days, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		day, err := ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		result = append(result, day)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("day list %q contains no weekdays", days)
	}
	return result, nil
}

// Schedule одна строка расписания группы, создаётся при создании группы.
// При изменении списка дней группы расписание не пересоздаётся.
type Schedule struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	Day       Weekday   `json:"day"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
}
