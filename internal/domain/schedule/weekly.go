package schedule

import (
	"encoding/json"
	"strings"
	"time"
)

// ===============================
// Weekly Schedule
// ===============================

type Break struct {
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
}

type DaySchedule struct {
	Enabled   bool      `json:"enabled"`
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
	Breaks    []Break   `json:"breaks"`
}

// WeeklySchedule é indexado por time.Weekday (domingo = 0).
type WeeklySchedule [7]DaySchedule

var dayNames = [7]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

func DayName(d time.Weekday) string {
	return dayNames[d]
}

// ParseDay reconhece o nome do dia sem diferenciar maiúsculas.
func ParseDay(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range dayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// Day devolve a configuração do dia d.
func (w WeeklySchedule) Day(d time.Weekday) DaySchedule {
	return w[d]
}

// Covers indica se [start, end) está dentro do expediente do dia.
func (d DaySchedule) Covers(start, end TimeOfDay) bool {
	return d.StartTime <= start && end <= d.EndTime
}

// OverlapsBreak indica se [start, end) intersecta alguma pausa.
func (d DaySchedule) OverlapsBreak(start, end TimeOfDay) bool {
	for _, b := range d.Breaks {
		if start < b.EndTime && end > b.StartTime {
			return true
		}
	}
	return false
}

func (w WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]DaySchedule, len(w))
	for i, day := range w {
		if day.Breaks == nil {
			day.Breaks = []Break{}
		}
		out[dayNames[i]] = day
	}
	return json.Marshal(out)
}

// UnmarshalJSON sempre passa pelo Normalize, então dados antigos
// ou incompletos viram uma agenda válida.
func (w *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*w = Normalize(raw)
	return nil
}

// Decode lê a agenda persistida. JSON vazio ou nulo resulta na agenda padrão.
func Decode(data []byte) (WeeklySchedule, error) {
	var w WeeklySchedule
	if len(data) == 0 {
		return Default(), nil
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return WeeklySchedule{}, err
	}
	return w, nil
}

func Encode(w WeeklySchedule) ([]byte, error) {
	return json.Marshal(w)
}
