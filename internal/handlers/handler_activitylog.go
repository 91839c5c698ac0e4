package handlers

import (
	"net/http"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// activityLogHandler serves the audit trail.
type activityLogHandler struct {
	activityLogService portssvc.ActivityLogSvcFacade
}

func newActivityLogHandler(as portssvc.ActivityLogSvcFacade) *activityLogHandler {
	return &activityLogHandler{activityLogService: as}
}

// registerActivityLogRoutes registers audit trail routes.
func registerActivityLogRoutes(rg *gin.RouterGroup, activityLogService portssvc.ActivityLogSvcFacade) {
	h := newActivityLogHandler(activityLogService)
	rg.GET("/activity-logs", h.listActivityLogs)
}

// listActivityLogs godoc
// @Summary List audit entries
// @Description Retrieves a filtered page of audit entries, newest first.
// @Tags activity-logs
// @Produce json
// @Param userId query string false "User filter"
// @Param entityType query string false "Entity type filter"
// @Param entityId query string false "Entity filter"
// @Param action query string false "Action filter"
// @Param limit query int false "Page size" default(50)
// @Param pageToken query string false "Page token"
// @Success 200 {object} dto.ListActivityLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityLogHandler) listActivityLogs(c *gin.Context) {
	var params dto.ListActivityLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.ActivityLogFilter{
		UserID:     params.UserID,
		EntityType: domain.EntityType(params.EntityType),
		EntityID:   params.EntityID,
		Action:     params.Action,
	}
	logs, nextToken, err := h.activityLogService.ListActivityLogs(c.Request.Context(), filter, params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list activity logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityLogsResponse(logs, nextToken))
}
