package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/event-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	get *ucSchedule.GetEventSchedule
	set *ucSchedule.SetEventSchedule
	log *zap.Logger
}

func NewScheduleHandler(
	get *ucSchedule.GetEventSchedule,
	set *ucSchedule.SetEventSchedule,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{get: get, set: set, log: log}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), organizationID(c), eventID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

// Update aceita o objeto semanal cru ({"monday": {...}, ...}); o conteúdo
// é normalizado, só JSON malformado é rejeitado.
func (h *ScheduleHandler) Update(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ws, err := h.set.Execute(c.Request.Context(), ucSchedule.SetEventScheduleInput{
		OrganizationID: organizationID(c),
		UserID:         userID(c),
		EventID:        eventID,
		Raw:            raw,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ucSchedule.ScheduleOutput{Schedule: ws, Configured: true})
}
