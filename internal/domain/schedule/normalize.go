package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Default devolve a agenda padrão: segunda a sexta das 09:00 às 17:00,
// sábado e domingo desativados, sem pausas.
func Default() WeeklySchedule {
	var w WeeklySchedule
	for i := range w {
		w[i] = defaultDay(time.Weekday(i))
	}
	return w
}

func defaultDay(d time.Weekday) DaySchedule {
	return DaySchedule{
		Enabled:   d != time.Saturday && d != time.Sunday,
		StartTime: DefaultStart,
		EndTime:   DefaultEnd,
		Breaks:    []Break{},
	}
}

// Normalize transforma a entrada livre do cliente em uma agenda semanal
// completa. Nunca falha: campos inválidos caem no padrão e pausas
// inválidas ou fora do expediente do dia são descartadas, as demais
// mantêm a ordem recebida. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw map[string]any) WeeklySchedule {
	w := Default()

	// ordem fixa para que chaves repetidas ("Monday"/"monday") tenham resultado determinístico
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		day, ok := ParseDay(key)
		if !ok {
			continue
		}

		entry, ok := raw[key].(map[string]any)
		if !ok {
			continue
		}

		w[day] = normalizeDay(entry, defaultDay(day))
	}

	return w
}

func normalizeDay(entry map[string]any, def DaySchedule) DaySchedule {
	day := def

	if v, ok := entry["enabled"]; ok {
		day.Enabled = coerceBool(v)
	}

	start := timeField(entry["startTime"], def.StartTime)
	end := timeField(entry["endTime"], def.EndTime)
	if start >= end {
		start, end = DefaultStart, DefaultEnd
	}
	day.StartTime = start
	day.EndTime = end

	rawBreaks, ok := entry["breaks"]
	if !ok {
		// formato legado
		rawBreaks = entry["pauses"]
	}
	day.Breaks = normalizeBreaks(rawBreaks, day.StartTime, day.EndTime)

	return day
}

// normalizeBreaks recebe o expediente já corrigido: uma pausa só
// sobrevive se couber inteira em [dayStart, dayEnd].
func normalizeBreaks(v any, dayStart, dayEnd TimeOfDay) []Break {
	breaks := []Break{}

	items, ok := v.([]any)
	if !ok {
		return breaks
	}

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		start, err1 := parseTimeField(m["startTime"])
		end, err2 := parseTimeField(m["endTime"])
		if err1 != nil || err2 != nil || start >= end {
			continue
		}
		if start < dayStart || end > dayEnd {
			continue
		}

		breaks = append(breaks, Break{StartTime: start, EndTime: end})
	}

	return breaks
}

func timeField(v any, def TimeOfDay) TimeOfDay {
	t, err := parseTimeField(v)
	if err != nil {
		return def
	}
	return t
}

func parseTimeField(v any) (TimeOfDay, error) {
	s, ok := v.(string)
	if !ok {
		return ParseTimeOfDay("")
	}
	return ParseTimeOfDay(s)
}

func coerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		switch s {
		case "yes", "on", "y":
			return true
		}
		parsed, err := strconv.ParseBool(s)
		return err == nil && parsed
	default:
		return false
	}
}
