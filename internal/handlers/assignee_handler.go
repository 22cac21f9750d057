package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
	ucAssignee "github.com/BruksfildServices01/event-scheduler/internal/usecase/assignee"
)

type AssigneeHandler struct {
	list     *ucAssignee.ListAssignees
	add      *ucAssignee.AddAssignees
	remove   *ucAssignee.RemoveAssignees
	assigned *ucAssignee.ListAssignedEvents
	log      *zap.Logger
}

func NewAssigneeHandler(
	list *ucAssignee.ListAssignees,
	add *ucAssignee.AddAssignees,
	remove *ucAssignee.RemoveAssignees,
	assigned *ucAssignee.ListAssignedEvents,
	log *zap.Logger,
) *AssigneeHandler {
	return &AssigneeHandler{
		list:     list,
		add:      add,
		remove:   remove,
		assigned: assigned,
		log:      log,
	}
}

type AssigneesRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
}

// ======================================================
// LIST
// ======================================================
func (h *AssigneeHandler) List(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), organizationID(c), eventID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// ADD
// ======================================================
func (h *AssigneeHandler) Add(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	added, err := h.add.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	// só os novos; quem já estava atribuído fica de fora
	c.JSON(http.StatusCreated, httpresp.ListResponse[models.EventAssignee]{
		Data:  added,
		Total: len(added),
	})
}

// ======================================================
// REMOVE
// ======================================================
func (h *AssigneeHandler) Remove(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	removed, err := h.remove.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"removed": removed})
}

// ======================================================
// EVENTOS ATRIBUÍDOS AO USUÁRIO DO TOKEN
// ======================================================
func (h *AssigneeHandler) MyEvents(c *gin.Context) {
	uid := userID(c)
	if uid == nil {
		httperr.Unauthorized(c, "unauthorized", "Usuário não identificado.")
		return
	}

	out, err := h.assigned.Execute(c.Request.Context(), organizationID(c), *uid)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AssigneeHandler) bind(c *gin.Context) (ucAssignee.ChangeInput, bool) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return ucAssignee.ChangeInput{}, false
	}

	var req AssigneesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return ucAssignee.ChangeInput{}, false
	}

	return ucAssignee.ChangeInput{
		OrganizationID: organizationID(c),
		UserID:         userID(c),
		EventID:        eventID,
		UserIDs:        req.UserIDs,
	}, true
}
