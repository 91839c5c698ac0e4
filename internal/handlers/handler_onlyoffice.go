package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerOnlyOfficeRoutes registers the OnlyOffice integration endpoints.
// No document server is wired up; the endpoints answer with stub payloads so
// the frontend editor integration can be developed against them.
func registerOnlyOfficeRoutes(rg *gin.RouterGroup) {
	oo := rg.Group("/onlyoffice")
	{
		oo.GET("/editor-config/:documentId", getEditorConfig)
		oo.POST("/track", trackEditorChanges)
		oo.POST("/convert", convertDocument)
		oo.GET("/document-info/:documentId", getDocumentInfo)
	}
}

// getEditorConfig godoc
// @Summary Get OnlyOffice editor configuration
// @Description Placeholder: returns a stub editor configuration.
// @Tags onlyoffice
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /onlyoffice/editor-config/{documentId} [get]
func getEditorConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"documentId": c.Param("documentId"),
		"editorUrl":  "",
		"enabled":    false,
		"message":    "OnlyOffice document server is not configured",
	})
}

// trackEditorChanges godoc
// @Summary OnlyOffice change tracking callback
// @Description Placeholder: acknowledges the callback without processing it.
// @Tags onlyoffice
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /onlyoffice/track [post]
func trackEditorChanges(c *gin.Context) {
	// The document server protocol expects {"error": 0} on success.
	c.JSON(http.StatusOK, gin.H{"error": 0})
}

// convertDocument godoc
// @Summary Convert a document
// @Description Placeholder: conversion is not available without a document server.
// @Tags onlyoffice
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /onlyoffice/convert [post]
func convertDocument(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"converted": false,
		"message":   "OnlyOffice document server is not configured",
	})
}

// getDocumentInfo godoc
// @Summary Get OnlyOffice document info
// @Description Placeholder: returns a stub document descriptor.
// @Tags onlyoffice
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /onlyoffice/document-info/{documentId} [get]
func getDocumentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"documentId": c.Param("documentId"),
		"editable":   false,
		"message":    "OnlyOffice document server is not configured",
	})
}
