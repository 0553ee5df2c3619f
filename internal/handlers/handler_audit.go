package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvc
}

// RegisterAuditRoutes registers the read-only audit trail route.
func RegisterAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvc) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit", h.listAudit)
}

// listAudit godoc
// @Summary List audit records
// @Description Most recent first. Without a limit the server default applies; large limits are clamped.
// @Tags audit
// @Produce  json
// @Param   limit query int false "Maximum number of records"
// @Success 200 {array} dto.AuditRecordResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Failed to list audit records"
// @Router /audit [get]
func (h *auditHandler) listAudit(c *gin.Context) {
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListAudit query")
		return
	}

	records, err := h.auditService.ListAuditRecords(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list audit records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditResponse(records))
}
