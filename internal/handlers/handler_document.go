package handlers

import (
	"net/http"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for the document registry.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// RegisterDocumentRoutes registers all document-related routes. QR resolution
// serves unauthenticated scanning devices, so it sits outside the
// authenticated group.
func RegisterDocumentRoutes(r *gin.Engine, authed *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	docs := authed.Group("/documents")
	{
		docs.POST("", h.createDocument)
		docs.GET("", h.listDocuments)
		docs.GET("/:id", h.getDocument)
		docs.PUT("/:id", h.updateDocument)
		docs.DELETE("/:id", h.deleteDocument)
		docs.POST("/:id/approve", h.approveDocument)
		docs.POST("/:id/archive", h.archiveDocument)
		docs.POST("/:id/view", h.recordView)
		docs.POST("/:id/download", h.recordDownload)
		docs.POST("/from-template", h.createFromTemplate)
	}

	r.GET("/api/v1/qr/:code", h.getDocumentByQRCode)
}

// createDocument godoc
// @Summary Register a new document
// @Description Creates a document, generating its code through the codification engine.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// getDocumentByQRCode godoc
// @Summary Resolve a document from its QR token
// @Description Looks up a document by QR token and bumps its view counter. Public, no authentication required.
// @Tags documents
// @Produce json
// @Param code path string true "QR token"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /qr/{code} [get]
func (h *documentHandler) getDocumentByQRCode(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByQRCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to resolve QR code")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents
// @Description Retrieves a filtered page of documents, newest first.
// @Tags documents
// @Produce json
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Param airport query string false "Airport filter"
// @Param search query string false "Free text search"
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Page token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.DocumentFilter{
		Status:   domain.DocumentStatus(params.Status),
		Type:     domain.DocumentType(params.Type),
		Airport:  params.Airport,
		AuthorID: params.AuthorID,
		Tag:      params.Tag,
		Search:   params.Search,
	}
	docs, nextToken, err := h.documentService.ListDocuments(c.Request.Context(), filter, params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs, nextToken))
}

// updateDocument godoc
// @Summary Update a document
// @Description Applies a partial update. A new file path bumps the version; new segments regenerate the code.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes a document permanently. Admin only.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveDocument godoc
// @Summary Approve a document
// @Description Moves a DRAFT document to ACTIVE and records the approver. Requires an approver role.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id}/approve [post]
func (h *documentHandler) approveDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.ApproveDocument(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to approve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// archiveDocument godoc
// @Summary Archive a document
// @Description Moves a document to its terminal ARCHIVED status.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id}/archive [post]
func (h *documentHandler) archiveDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.ArchiveDocument(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to archive document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// createFromTemplate godoc
// @Summary Instantiate a document from a template
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.CreateFromTemplateRequest true "Template instantiation details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/from-template [post]
func (h *documentHandler) createFromTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.CreateFromTemplate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create document from template")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// recordView godoc
// @Summary Record a document view
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id}/view [post]
func (h *documentHandler) recordView(c *gin.Context) {
	if err := h.documentService.RecordView(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to record view")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordDownload godoc
// @Summary Record a document download
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id}/download [post]
func (h *documentHandler) recordDownload(c *gin.Context) {
	if err := h.documentService.RecordDownload(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to record download")
		return
	}
	c.Status(http.StatusNoContent)
}
