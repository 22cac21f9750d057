package booking

import (
	"time"

	"github.com/BruksfildServices01/event-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

const DefaultSlotMinutes = 30

// TimeSlot é o intervalo semiaberto [Start, End).
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsAvailable decide se [start, end) pode ser agendado: o dia de start
// precisa estar habilitado, o intervalo dentro do expediente, fora das
// pausas e sem sobreposição com agendamentos ativos.
//
// A comparação usa apenas o horário do dia, na data de start. Um intervalo
// que atravessa a meia-noite é comparado como se fosse do mesmo dia.
func IsAvailable(
	ws schedule.WeeklySchedule,
	start time.Time,
	end time.Time,
	existing []models.Booking,
	excludeID *uint,
) bool {
	if !start.Before(end) {
		return false
	}

	day := ws.Day(start.Weekday())
	if !day.Enabled {
		return false
	}

	from := schedule.Clock(start)
	to := schedule.Clock(end)

	if !day.Covers(from, to) {
		return false
	}

	if day.OverlapsBreak(from, to) {
		return false
	}

	return !Overlaps(TimeSlot{Start: start, End: end}, existing, excludeID)
}

// EnumerateSlots divide o expediente da data em blocos consecutivos de
// durationMinutes, a partir do início do dia de trabalho, descartando os
// que tocam uma pausa. Agendamentos existentes não são considerados.
func EnumerateSlots(
	ws schedule.WeeklySchedule,
	date time.Time,
	durationMinutes int,
) []TimeSlot {
	slots := []TimeSlot{}
	if durationMinutes <= 0 {
		return slots
	}

	day := ws.Day(date.Weekday())
	if !day.Enabled {
		return slots
	}

	step := time.Duration(durationMinutes) * time.Minute

	for cur := day.StartTime; cur.Add(step) <= day.EndTime; cur = cur.Add(step) {
		next := cur.Add(step)

		// pausa
		if day.OverlapsBreak(cur, next) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: cur.On(date),
			End:   next.On(date),
		})
	}

	return slots
}

// FreeSlots remove os slots que colidem com agendamentos ativos.
func FreeSlots(slots []TimeSlot, existing []models.Booking) []TimeSlot {
	free := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if !Overlaps(s, existing, nil) {
			free = append(free, s)
		}
	}
	return free
}
