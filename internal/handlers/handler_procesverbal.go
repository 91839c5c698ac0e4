package handlers

import (
	"net/http"

	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// procesVerbalHandler handles HTTP requests for meeting minutes.
type procesVerbalHandler struct {
	procesVerbalService portssvc.ProcesVerbalSvcFacade
}

func newProcesVerbalHandler(ps portssvc.ProcesVerbalSvcFacade) *procesVerbalHandler {
	return &procesVerbalHandler{procesVerbalService: ps}
}

// registerProcesVerbalRoutes registers procès-verbal routes.
func registerProcesVerbalRoutes(rg *gin.RouterGroup, procesVerbalService portssvc.ProcesVerbalSvcFacade) {
	h := newProcesVerbalHandler(procesVerbalService)

	pvs := rg.Group("/proces-verbaux")
	{
		pvs.POST("", h.createProcesVerbal)
		pvs.GET("", h.listProcesVerbaux)
		pvs.GET("/:id", h.getProcesVerbal)
		pvs.PUT("/:id", h.updateProcesVerbal)
	}
}

// createProcesVerbal godoc
// @Summary Register meeting minutes
// @Description Creates a procès-verbal and its backing document.
// @Tags proces-verbaux
// @Accept json
// @Produce json
// @Param procesVerbal body dto.CreateProcesVerbalRequest true "Minutes details"
// @Success 201 {object} dto.ProcesVerbalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /proces-verbaux [post]
func (h *procesVerbalHandler) createProcesVerbal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateProcesVerbalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	pv, err := h.procesVerbalService.CreateProcesVerbal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create proces verbal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProcesVerbalResponse(pv))
}

// getProcesVerbal godoc
// @Summary Get meeting minutes by ID
// @Tags proces-verbaux
// @Produce json
// @Param id path string true "Proces verbal ID"
// @Success 200 {object} dto.ProcesVerbalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /proces-verbaux/{id} [get]
func (h *procesVerbalHandler) getProcesVerbal(c *gin.Context) {
	pv, err := h.procesVerbalService.GetProcesVerbalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve proces verbal")
		return
	}
	c.JSON(http.StatusOK, dto.ToProcesVerbalResponse(pv))
}

// listProcesVerbaux godoc
// @Summary List meeting minutes
// @Tags proces-verbaux
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Page token"
// @Success 200 {object} dto.ListProcesVerbauxResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /proces-verbaux [get]
func (h *procesVerbalHandler) listProcesVerbaux(c *gin.Context) {
	var params dto.ListProcesVerbauxParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	pvs, nextToken, err := h.procesVerbalService.ListProcesVerbaux(c.Request.Context(), params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list proces verbaux")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProcesVerbauxResponse(pvs, nextToken))
}

// updateProcesVerbal godoc
// @Summary Update meeting minutes
// @Tags proces-verbaux
// @Accept json
// @Produce json
// @Param id path string true "Proces verbal ID"
// @Param procesVerbal body dto.UpdateProcesVerbalRequest true "Fields to update"
// @Success 200 {object} dto.ProcesVerbalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /proces-verbaux/{id} [put]
func (h *procesVerbalHandler) updateProcesVerbal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateProcesVerbalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	pv, err := h.procesVerbalService.UpdateProcesVerbal(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update proces verbal")
		return
	}
	c.JSON(http.StatusOK, dto.ToProcesVerbalResponse(pv))
}
