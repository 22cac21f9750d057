package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
	"github.com/BruksfildServices01/event-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/event-scheduler/internal/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// ======================================================
// LIST CONTACTS (ORGANIZAÇÃO)
// ======================================================
func (h *ContactHandler) List(c *gin.Context) {
	orgID := organizationID(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	assigneeID, ok := optionalUintQuery(c, "last_assignee_id")
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ?", orgID)

	if assigneeID != nil {
		q = q.Where("last_assignee_id = ?", *assigneeID)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var contacts []models.Contact
	if err := q.
		Order("last_interaction DESC").
		Order("id DESC").
		Find(&contacts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contacts", "Erro ao listar contatos.")
		return
	}

	httpresp.List(c, contacts)
}
