package handlers

import (
	"net/http"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// actionHandler handles HTTP requests for the action tracker.
type actionHandler struct {
	actionService portssvc.ActionSvcFacade
}

func newActionHandler(as portssvc.ActionSvcFacade) *actionHandler {
	return &actionHandler{actionService: as}
}

// registerActionRoutes registers action tracker routes.
func registerActionRoutes(rg *gin.RouterGroup, actionService portssvc.ActionSvcFacade) {
	h := newActionHandler(actionService)

	actions := rg.Group("/actions")
	{
		actions.POST("", h.createAction)
		actions.GET("", h.listActions)
		actions.GET("/:id", h.getAction)
		actions.PUT("/:id", h.updateAction)
		actions.DELETE("/:id", h.deleteAction)
	}
}

// createAction godoc
// @Summary Create an action
// @Description Registers a new tracked action in PENDING status.
// @Tags actions
// @Accept json
// @Produce json
// @Param action body dto.CreateActionRequest true "Action details"
// @Success 201 {object} dto.ActionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions [post]
func (h *actionHandler) createAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	action, err := h.actionService.CreateAction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create action")
		return
	}
	c.JSON(http.StatusCreated, dto.ToActionResponse(action))
}

// getAction godoc
// @Summary Get an action by ID
// @Tags actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions/{id} [get]
func (h *actionHandler) getAction(c *gin.Context) {
	action, err := h.actionService.GetActionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve action")
		return
	}
	c.JSON(http.StatusOK, dto.ToActionResponse(action))
}

// listActions godoc
// @Summary List actions
// @Tags actions
// @Produce json
// @Param assigneeId query string false "Assignee filter"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param parentDocumentId query string false "Parent document filter"
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Page token"
// @Success 200 {object} dto.ListActionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions [get]
func (h *actionHandler) listActions(c *gin.Context) {
	var params dto.ListActionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.ActionFilter{
		AssigneeID:       params.AssigneeID,
		Status:           domain.ActionStatus(params.Status),
		Priority:         domain.Priority(params.Priority),
		ParentDocumentID: params.ParentDocumentID,
	}
	actions, nextToken, err := h.actionService.ListActions(c.Request.Context(), filter, params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list actions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListActionsResponse(actions, nextToken))
}

// updateAction godoc
// @Summary Update an action
// @Description Applies a partial update. Completing an action forces its progress to 100.
// @Tags actions
// @Accept json
// @Produce json
// @Param id path string true "Action ID"
// @Param action body dto.UpdateActionRequest true "Fields to update"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions/{id} [put]
func (h *actionHandler) updateAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	action, err := h.actionService.UpdateAction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update action")
		return
	}
	c.JSON(http.StatusOK, dto.ToActionResponse(action))
}

// deleteAction godoc
// @Summary Delete an action
// @Description Removes an action permanently. Admin only.
// @Tags actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions/{id} [delete]
func (h *actionHandler) deleteAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.actionService.DeleteAction(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete action")
		return
	}
	c.Status(http.StatusNoContent)
}
