package handlers

import (
	"net/http"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// correspondanceHandler handles HTTP requests for correspondences.
type correspondanceHandler struct {
	correspondanceService portssvc.CorrespondanceSvcFacade
}

func newCorrespondanceHandler(cs portssvc.CorrespondanceSvcFacade) *correspondanceHandler {
	return &correspondanceHandler{correspondanceService: cs}
}

// registerCorrespondanceRoutes registers correspondence routes.
func registerCorrespondanceRoutes(rg *gin.RouterGroup, correspondanceService portssvc.CorrespondanceSvcFacade) {
	h := newCorrespondanceHandler(correspondanceService)

	corrs := rg.Group("/correspondances")
	{
		corrs.POST("", h.createCorrespondance)
		corrs.GET("", h.listCorrespondances)
		corrs.GET("/:id", h.getCorrespondance)
		corrs.PUT("/:id", h.updateCorrespondance)
		corrs.DELETE("/:id", h.deleteCorrespondance)
	}
}

// createCorrespondance godoc
// @Summary Register a correspondence
// @Description Creates an incoming or outgoing correspondence with a generated code.
// @Tags correspondances
// @Accept json
// @Produce json
// @Param correspondance body dto.CreateCorrespondanceRequest true "Correspondence details"
// @Success 201 {object} dto.CorrespondanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /correspondances [post]
func (h *correspondanceHandler) createCorrespondance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCorrespondanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	corr, err := h.correspondanceService.CreateCorrespondance(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create correspondence")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCorrespondanceResponse(corr))
}

// getCorrespondance godoc
// @Summary Get a correspondence by ID
// @Tags correspondances
// @Produce json
// @Param id path string true "Correspondence ID"
// @Success 200 {object} dto.CorrespondanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /correspondances/{id} [get]
func (h *correspondanceHandler) getCorrespondance(c *gin.Context) {
	corr, err := h.correspondanceService.GetCorrespondanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve correspondence")
		return
	}
	c.JSON(http.StatusOK, dto.ToCorrespondanceResponse(corr))
}

// listCorrespondances godoc
// @Summary List correspondences
// @Tags correspondances
// @Produce json
// @Param direction query string false "Direction filter"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param airport query string false "Airport filter"
// @Param search query string false "Free text search"
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Page token"
// @Success 200 {object} dto.ListCorrespondancesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /correspondances [get]
func (h *correspondanceHandler) listCorrespondances(c *gin.Context) {
	var params dto.ListCorrespondancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.CorrespondanceFilter{
		Direction: domain.CorrespondanceDirection(params.Direction),
		Status:    domain.DocumentStatus(params.Status),
		Priority:  domain.Priority(params.Priority),
		Airport:   params.Airport,
		Search:    params.Search,
	}
	corrs, nextToken, err := h.correspondanceService.ListCorrespondances(c.Request.Context(), filter, params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list correspondences")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCorrespondancesResponse(corrs, nextToken))
}

// updateCorrespondance godoc
// @Summary Update a correspondence
// @Tags correspondances
// @Accept json
// @Produce json
// @Param id path string true "Correspondence ID"
// @Param correspondance body dto.UpdateCorrespondanceRequest true "Fields to update"
// @Success 200 {object} dto.CorrespondanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /correspondances/{id} [put]
func (h *correspondanceHandler) updateCorrespondance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCorrespondanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	corr, err := h.correspondanceService.UpdateCorrespondance(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update correspondence")
		return
	}
	c.JSON(http.StatusOK, dto.ToCorrespondanceResponse(corr))
}

// deleteCorrespondance godoc
// @Summary Delete a correspondence
// @Description Removes a correspondence permanently. Admin only.
// @Tags correspondances
// @Produce json
// @Param id path string true "Correspondence ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /correspondances/{id} [delete]
func (h *correspondanceHandler) deleteCorrespondance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.correspondanceService.DeleteCorrespondance(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete correspondence")
		return
	}
	c.Status(http.StatusNoContent)
}
