package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aerodoc/backend/internal/middleware"
	"github.com/aerodoc/backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadsHandler stores and serves uploaded files under a local directory
// tree laid out as <uploadsDir>/<category>/<airport>/.
type uploadsHandler struct {
	uploadsDir    string
	maxUploadSize int64
}

func newUploadsHandler(cfg *config.Config) *uploadsHandler {
	return &uploadsHandler{
		uploadsDir:    cfg.UploadsDir,
		maxUploadSize: cfg.MaxUploadSizeMB << 20,
	}
}

// registerUploadRoutes registers file upload routes.
func registerUploadRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	h := newUploadsHandler(cfg)

	uploads := rg.Group("/uploads")
	{
		uploads.POST("/:category", h.uploadFile)
		uploads.GET("/*path", h.serveFile)
		uploads.DELETE("/*path", h.deleteFile)
	}
}

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".odt": true, ".ods": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".txt": true, ".csv": true,
}

var categoryPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeFilename strips path components and unsafe characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// resolveUploadPath joins the request path onto the uploads root and
// rejects anything that escapes it.
func (h *uploadsHandler) resolveUploadPath(reqPath string) (string, string, bool) {
	relPath := strings.TrimPrefix(filepath.Clean("/"+reqPath), "/")
	if relPath == "" || relPath == "." {
		return "", "", false
	}
	abs := filepath.Join(h.uploadsDir, relPath)
	rel, err := filepath.Rel(h.uploadsDir, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", "", false
	}
	return abs, relPath, true
}

// uploadFile godoc
// @Summary Upload a file
// @Description Stores a multipart file under the given category and airport. Returns the stored path relative to the uploads root.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Upload category"
// @Param airport formData string true "Airport code"
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security BearerAuth
// @Router /uploads/{category} [post]
func (h *uploadsHandler) uploadFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category := c.Param("category")
	if !categoryPattern.MatchString(category) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid upload category"})
		return
	}
	airport := sanitizeFilename(c.PostForm("airport"))
	if airport == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Airport is required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file"})
		return
	}
	if file.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: fmt.Sprintf("File exceeds the %d MB limit", h.maxUploadSize>>20)})
		return
	}

	filename := sanitizeFilename(file.Filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" || !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File type not allowed"})
		return
	}

	// Prefix with a UUID so concurrent uploads of the same name never collide.
	storedName := uuid.NewString() + "_" + filename
	relPath := filepath.Join(category, airport, storedName)
	absPath := filepath.Join(h.uploadsDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		logger.Error("Failed to create upload directory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store file"})
		return
	}
	if err := c.SaveUploadedFile(file, absPath); err != nil {
		logger.Error("Failed to save uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store file"})
		return
	}

	logger.Info("File uploaded", slog.String("path", relPath), slog.Int64("size", file.Size))
	c.JSON(http.StatusCreated, gin.H{
		"filePath": filepath.ToSlash(relPath),
		"fileType": strings.TrimPrefix(ext, "."),
	})
}

// serveFile godoc
// @Summary Download a stored file
// @Tags uploads
// @Produce octet-stream
// @Param path path string true "Stored file path"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /uploads/{path} [get]
func (h *uploadsHandler) serveFile(c *gin.Context) {
	abs, _, ok := h.resolveUploadPath(c.Param("path"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file path"})
		return
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}
	c.File(abs)
}

// deleteFile godoc
// @Summary Delete a stored file
// @Tags uploads
// @Produce json
// @Param path path string true "Stored file path"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /uploads/{path} [delete]
func (h *uploadsHandler) deleteFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	abs, relPath, ok := h.resolveUploadPath(c.Param("path"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file path"})
		return
	}
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		logger.Error("Failed to delete file", slog.String("path", relPath), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete file"})
		return
	}
	logger.Info("File deleted", slog.String("path", relPath))
	c.Status(http.StatusNoContent)
}
