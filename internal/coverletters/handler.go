package coverletters

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/queue"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/telemetry"
)

// Dispatcher hands a generation job to the background task pipeline.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg queue.Message) error
}

// Handler wires HTTP handlers to cover letter generation and feedback.
type Handler struct {
	Svc        *Service
	Resumes    resumes.Repo
	Dispatcher Dispatcher
	Relay      *FeedbackRelay
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resumeRepo resumes.Repo, dispatcher Dispatcher, relay *FeedbackRelay) *Handler {
	return &Handler{Svc: svc, Resumes: resumeRepo, Dispatcher: dispatcher, Relay: relay}
}

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/cover-letters", h.startGeneration)
	rg.GET("/cover-letters/:id", h.getCoverLetter)
	rg.PUT("/cover-letters/:id/rating", h.rateCoverLetter)
}

type startGenerationRequest struct {
	JobDescriptionText string `json:"jobDescriptionText"`
}

func (h *Handler) startGeneration(c *gin.Context) {
	customerID := middleware.CustomerIDFromContext(c)
	if customerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "customer id is required", nil)
		return
	}
	resumeID := c.Param("id")
	if resumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume id is required", nil)
		return
	}
	c.Set("resumeId", resumeID)

	var req startGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobDescriptionText == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescriptionText is required", nil)
		return
	}

	if _, err := h.Resumes.GetByID(c.Request.Context(), customerID, resumeID); err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, resumes.ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another customer", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start generation", nil)
		}
		return
	}

	msg := queue.Message{
		ResumeID:           resumeID,
		CustomerID:         customerID,
		JobDescriptionText: req.JobDescriptionText,
		RequestCookies:     requestCookies(c),
		RequestID:          middleware.RequestIDFromContext(c),
		EnqueuedAt:         time.Now().UTC().Format(time.RFC3339),
		Version:            1,
	}
	if err := h.Dispatcher.Dispatch(c.Request.Context(), msg); err != nil {
		telemetry.Error("coverletter.dispatch_failed", map[string]any{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start generation", nil)
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"resumeId": resumeID,
		"status":   "queued",
	})
}

func (h *Handler) getCoverLetter(c *gin.Context) {
	customerID := middleware.CustomerIDFromContext(c)
	if customerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "customer id is required", nil)
		return
	}
	letter, ok := h.fetchOwned(c, customerID)
	if !ok {
		return
	}
	respond.JSON(c, http.StatusOK, NewView(letter))
}

type rateRequest struct {
	Rating Rating `json:"rating"`
}

func (h *Handler) rateCoverLetter(c *gin.Context) {
	customerID := middleware.CustomerIDFromContext(c)
	if customerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "customer id is required", nil)
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Rating.Valid() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "rating must be thumbs_up or thumbs_down", nil)
		return
	}

	letter, ok := h.fetchOwned(c, customerID)
	if !ok {
		return
	}

	updated, err := h.Svc.Rate(c.Request.Context(), letter.ID, req.Rating)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update rating", nil)
		return
	}

	if h.Relay != nil {
		go func(letter CoverLetter, userID string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			h.Relay.Send(ctx, letter, userID)
		}(updated, customerID)
	}

	respond.JSON(c, http.StatusOK, NewView(updated))
}

// fetchOwned loads the letter from the path id and enforces ownership. On
// failure it writes the error response and returns ok=false.
func (h *Handler) fetchOwned(c *gin.Context, customerID string) (CoverLetter, bool) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "cover letter id is required", nil)
		return CoverLetter{}, false
	}
	c.Set("coverLetterId", id)

	letter, err := h.Svc.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch cover letter", nil)
		}
		return CoverLetter{}, false
	}
	if letter.CustomerID != customerID {
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
		return CoverLetter{}, false
	}
	return letter, true
}

func requestCookies(c *gin.Context) map[string]string {
	cookies := c.Request.Cookies()
	if len(cookies) == 0 {
		return nil
	}
	out := make(map[string]string, len(cookies))
	for _, cookie := range cookies {
		out[cookie.Name] = cookie.Value
	}
	return out
}
