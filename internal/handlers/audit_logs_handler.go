package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	ucAuditLog "github.com/BruksfildServices01/event-scheduler/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list *ucAuditLog.ListAuditLogs
	log  *zap.Logger
}

func NewAuditLogsHandler(list *ucAuditLog.ListAuditLogs, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{list: list, log: log}
}

// List: ?event_id=&user_id=&action=&entity=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	eventID, ok := optionalUintQuery(c, "event_id")
	if !ok {
		return
	}
	actorID, ok := optionalUintQuery(c, "user_id")
	if !ok {
		return
	}
	page, ok := intQuery(c, "page")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), ucAuditLog.ListAuditLogsInput{
		OrganizationID: organizationID(c),
		EventID:        eventID,
		UserID:         actorID,
		Action:         c.Query("action"),
		Entity:         c.Query("entity"),
		From:           c.Query("from"),
		To:             c.Query("to"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Page(c, out.Logs, out.Total, out.Page, out.Limit)
}
