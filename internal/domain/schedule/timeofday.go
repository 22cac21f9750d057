package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay representa um horário do dia em segundos desde 00:00:00.
type TimeOfDay int

const (
	DefaultStart TimeOfDay = 9 * 60 * 60
	DefaultEnd   TimeOfDay = 17 * 60 * 60
)

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay aceita "HH:MM:SS" ou "HH:MM".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return Clock(t), nil
		}
	}

	return 0, fmt.Errorf("invalid time of day %q", value)
}

// Clock extrai o horário do dia de um instante, no fuso do próprio instante.
func Clock(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(h*3600 + m*60 + s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, (int(t)%3600)/60, int(t)%60)
}

// On retorna o instante deste horário na data (e fuso) de date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/3600, (int(t)%3600)/60, int(t)%60, 0,
		date.Location(),
	)
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
