package ingest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/extract"
	"remberify-backend/internal/shared/server/respond"
	"remberify-backend/internal/shared/storage/object"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the ingestion service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches ingestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.POST("/upload_text", h.uploadText)
	rg.GET("/files/*key", h.serveFile)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	kind, ok := KindFromFileName(fileHeader.Filename)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file type not allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	res, err := h.Svc.Ingest(c.Request.Context(), RawUpload{
		Content:  content,
		Kind:     kind,
		FileName: fileHeader.Filename,
		OwnerID:  strings.TrimSpace(c.PostForm("user_id")),
	})
	if err != nil {
		respondIngestError(c, err)
		return
	}

	respond.OK(c, res)
}

type uploadTextRequest struct {
	Content string `json:"content"`
}

func (h *Handler) uploadText(c *gin.Context) {
	var req uploadTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	res, err := h.Svc.IngestText(c.Request.Context(), req.Content)
	if err != nil {
		respondIngestError(c, err)
		return
	}

	respond.OK(c, res)
}

// serveFile streams a stored blob back to the client. Local-store URLs point
// at this route; S3 objects are served from their own public URLs.
func (h *Handler) serveFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file key is required", nil)
		return
	}

	rc, err := h.Svc.OpenBlob(c.Request.Context(), key)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", object.ContentTypeByExtension(key))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func respondIngestError(c *gin.Context, err error) {
	var verr *extract.ValidationError
	var xerr *extract.ExtractionError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", verr.Reason, nil)
	case errors.As(err, &xerr):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", xerr.Reason, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
	}
}
