package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/middleware"
)

// documentHandler handles HTTP requests related to resident documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService: ds,
	}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.POST("/batch", h.uploadDocuments)
		documents.GET("", h.listDocuments)
		documents.GET("/search", h.searchDocuments)
		documents.GET("/stats", h.getDocumentStats)
		documents.GET("/resident/:residentID", h.getDocumentsByResident)
		documents.GET("/category/:category", h.getDocumentsByCategory)
		documents.GET("/:id", h.getDocumentByID)
		documents.GET("/:id/download", h.downloadDocument)
		documents.PATCH("/:id", h.updateDocument)
		documents.DELETE("/:id", h.deleteDocument)
	}
}

// uploadForm reads the resident id and category fields shared by both
// upload endpoints.
func uploadForm(c *gin.Context) (int64, domain.DocumentCategory, bool) {
	residentID, err := strconv.ParseInt(c.PostForm("residentId"), 10, 64)
	if err != nil || residentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing residentId field"})
		return 0, "", false
	}
	category := domain.DocumentCategory(c.PostForm("category"))
	if category == "" {
		category = domain.DocumentOther
	}
	return residentID, category, true
}

// uploadDocument godoc
// @Summary Upload a document
// @Description Validates and stores a single file against a resident
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   residentId formData int true "Resident ID"
// @Param   category formData string false "Document category (defaults to other)"
// @Param   file formData file true "File to upload"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid file"
// @Failure 500 {object} map[string]string "Failed to upload document"
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, category, ok := uploadForm(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}

	file := dto.FileUpload{
		FileName: fileHeader.Filename,
		FileType: fileHeader.Header.Get("Content-Type"),
		FileSize: fileHeader.Size,
	}

	document, err := h.documentService.UploadFile(c.Request.Context(), residentID, category, file, nil)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upload document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(document))
}

// uploadDocuments godoc
// @Summary Upload multiple documents
// @Description Stores several files against a resident, reporting a per-file outcome
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   residentId formData int true "Resident ID"
// @Param   category formData string false "Document category (defaults to other)"
// @Param   files formData file true "Files to upload"
// @Success 200 {array} dto.UploadResult
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to upload documents"
// @Router /documents/batch [post]
func (h *documentHandler) uploadDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, category, ok := uploadForm(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing files field"})
		return
	}

	files := make([]dto.FileUpload, len(fileHeaders))
	for i, fh := range fileHeaders {
		files[i] = dto.FileUpload{
			FileName: fh.Filename,
			FileType: fh.Header.Get("Content-Type"),
			FileSize: fh.Size,
		}
	}

	results, err := h.documentService.UploadMultipleFiles(c.Request.Context(), residentID, category, files, nil)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upload documents")
		return
	}

	c.JSON(http.StatusOK, results)
}

// listDocuments godoc
// @Summary List all documents
// @Tags documents
// @Produce  json
// @Success 200 {array} dto.DocumentResponse
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documents, err := h.documentService.ListDocuments(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(documents))
}

// searchDocuments godoc
// @Summary Search documents
// @Description Matches the query against file names and categories, case-insensitively
// @Tags documents
// @Produce  json
// @Param   q query string true "Search text"
// @Success 200 {array} dto.DocumentResponse
// @Failure 500 {object} map[string]string "Failed to search documents"
// @Router /documents/search [get]
func (h *documentHandler) searchDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documents, err := h.documentService.SearchDocuments(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to search documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(documents))
}

// getDocumentStats godoc
// @Summary Summarize document storage
// @Tags documents
// @Produce  json
// @Success 200 {object} dto.DocumentStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute document stats"
// @Router /documents/stats [get]
func (h *documentHandler) getDocumentStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.documentService.GetDocumentStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute document stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentStatsResponse(stats))
}

// getDocumentsByResident godoc
// @Summary List a resident's documents
// @Tags documents
// @Produce  json
// @Param   residentID path int true "Resident ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Router /documents/resident/{residentID} [get]
func (h *documentHandler) getDocumentsByResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "residentID")
	if !ok {
		return
	}

	documents, err := h.documentService.GetDocumentsByResident(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(documents))
}

// getDocumentsByCategory godoc
// @Summary List documents in a category
// @Tags documents
// @Produce  json
// @Param   category path string true "Document category"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Router /documents/category/{category} [get]
func (h *documentHandler) getDocumentsByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := domain.DocumentCategory(c.Param("category"))

	documents, err := h.documentService.GetDocumentsByCategory(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(documents))
}

// getDocumentByID godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce  json
// @Param   id path int true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Router /documents/{id} [get]
func (h *documentHandler) getDocumentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	document, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// downloadDocument godoc
// @Summary Resolve a document for download
// @Tags documents
// @Produce  json
// @Param   id path int true "Document ID"
// @Success 200 {object} dto.DownloadResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to resolve download"
// @Router /documents/{id}/download [get]
func (h *documentHandler) downloadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	info, err := h.documentService.DownloadDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve download")
		return
	}

	c.JSON(http.StatusOK, dto.ToDownloadResponse(info))
}

// updateDocument godoc
// @Summary Update a document
// @Description Changes a document's category; the file itself is immutable
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path int true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update document"
// @Router /documents/{id} [patch]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	document, err := h.documentService.UpdateDocument(c.Request.Context(), documentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param   id path int true "Document ID"
// @Success 204 "Document deleted"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}
