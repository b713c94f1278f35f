package resumes

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers for resume import and retrieval.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.importResume)
	rg.GET("/resumes/:id", h.getResume)
}

// importResume accepts either a structured resume as JSON or a PDF upload
// whose text is extracted into RawText.
func (h *Handler) importResume(c *gin.Context) {
	customerID := middleware.CustomerIDFromContext(c)
	if customerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "customer id is required", nil)
		return
	}

	var resume Resume
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, ok := h.resumeFromUpload(c)
		if !ok {
			return
		}
		resume = parsed
	} else {
		if err := c.ShouldBindJSON(&resume); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume payload", nil)
			return
		}
	}

	resume.ID = uuid.NewString()
	resume.CustomerID = customerID
	resume.CreatedAt = time.Now().UTC()
	c.Set("resumeId", resume.ID)

	if err := h.Repo.Create(c.Request.Context(), resume); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"id": resume.ID})
}

func (h *Handler) resumeFromUpload(c *gin.Context) (Resume, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return Resume{}, false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 10MB limit", nil)
		return Resume{}, false
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF resumes are supported", nil)
		return Resume{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return Resume{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return Resume{}, false
	}

	text, err := ExtractPDFText(data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from PDF", nil)
		return Resume{}, false
	}

	return Resume{
		Contact: ContactInfo{
			FirstName: c.PostForm("firstName"),
			LastName:  c.PostForm("lastName"),
			Email:     c.PostForm("email"),
		},
		RawText: text,
	}, true
}

func (h *Handler) getResume(c *gin.Context) {
	customerID := middleware.CustomerIDFromContext(c)
	if customerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "customer id is required", nil)
		return
	}
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	resume, err := h.Repo.GetByID(c.Request.Context(), customerID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, resume)
}
