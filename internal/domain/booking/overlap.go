package booking

import "github.com/BruksfildServices01/event-scheduler/internal/models"

// Overlaps indica se candidate intersecta algum agendamento não cancelado.
// Intervalos que apenas se tocam ([9,10) e [10,11)) não colidem.
// excludeID ignora o próprio agendamento durante uma atualização.
func Overlaps(candidate TimeSlot, existing []models.Booking, excludeID *uint) bool {
	for _, b := range existing {
		if b.Cancelled || Status(b.Status) == StatusCancelled {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if candidate.Start.Before(b.EndTime) && candidate.End.After(b.StartTime) {
			return true
		}
	}
	return false
}
