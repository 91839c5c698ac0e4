package handlers

import (
	"net/http"

	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// codificationHandler handles HTTP requests for code generation and the
// codification configuration.
type codificationHandler struct {
	codificationService portssvc.CodificationSvcFacade
}

func newCodificationHandler(cs portssvc.CodificationSvcFacade) *codificationHandler {
	return &codificationHandler{codificationService: cs}
}

// registerCodificationRoutes registers codification routes.
func registerCodificationRoutes(rg *gin.RouterGroup, codificationService portssvc.CodificationSvcFacade) {
	h := newCodificationHandler(codificationService)

	codification := rg.Group("/codification")
	{
		codification.POST("/generate", h.generateCode)
		codification.POST("/preview", h.previewCode)
		codification.GET("/config", h.getConfig)
		codification.PUT("/config", h.updateConfig)
	}
}

// generateCode godoc
// @Summary Generate a document code
// @Description Validates segments against the active configuration and reserves the next sequence number.
// @Tags codification
// @Accept json
// @Produce json
// @Param segments body dto.CodeSegmentsRequest true "Code segments"
// @Success 200 {object} dto.CodeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /codification/generate [post]
func (h *codificationHandler) generateCode(c *gin.Context) {
	var req dto.CodeSegmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	code, seq, err := h.codificationService.GenerateCode(c.Request.Context(), req.ToDomainSegments())
	if err != nil {
		respondError(c, err, "Failed to generate code")
		return
	}
	c.JSON(http.StatusOK, dto.CodeResponse{Code: code, SequenceNumber: seq})
}

// previewCode godoc
// @Summary Preview the next document code
// @Description Returns the code the next generation would produce without reserving the sequence number.
// @Tags codification
// @Accept json
// @Produce json
// @Param segments body dto.CodeSegmentsRequest true "Code segments"
// @Success 200 {object} dto.CodeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /codification/preview [post]
func (h *codificationHandler) previewCode(c *gin.Context) {
	var req dto.CodeSegmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	code, seq, err := h.codificationService.PreviewCode(c.Request.Context(), req.ToDomainSegments())
	if err != nil {
		respondError(c, err, "Failed to preview code")
		return
	}
	c.JSON(http.StatusOK, dto.CodeResponse{Code: code, SequenceNumber: seq})
}

// getConfig godoc
// @Summary Get the codification configuration
// @Tags codification
// @Produce json
// @Success 200 {object} dto.CodeConfigResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /codification/config [get]
func (h *codificationHandler) getConfig(c *gin.Context) {
	cfg, err := h.codificationService.GetCodeConfig(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve codification config")
		return
	}
	c.JSON(http.StatusOK, dto.ToCodeConfigResponse(cfg))
}

// updateConfig godoc
// @Summary Update the codification configuration
// @Description Replaces the configured option lists. Admin only.
// @Tags codification
// @Accept json
// @Produce json
// @Param config body dto.UpdateCodeConfigRequest true "Configuration"
// @Success 200 {object} dto.CodeConfigResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /codification/config [put]
func (h *codificationHandler) updateConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCodeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.codificationService.UpdateCodeConfig(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update codification config")
		return
	}
	c.JSON(http.StatusOK, dto.ToCodeConfigResponse(cfg))
}
