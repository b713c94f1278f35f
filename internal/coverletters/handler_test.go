package coverletters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/queue"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/server/middleware"
)

type stubDispatcher struct {
	mu       sync.Mutex
	messages []queue.Message
	err      error
}

func (d *stubDispatcher) Dispatch(ctx context.Context, msg queue.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, msg)
	return nil
}

type relayRecorder struct {
	mu       sync.Mutex
	feedback []llm.UserFeedback
	done     chan struct{}
}

func (r *relayRecorder) RecordSingleUserFeedback(ctx context.Context, like llm.UserFeedback) error {
	r.mu.Lock()
	r.feedback = append(r.feedback, like)
	r.mu.Unlock()
	close(r.done)
	return nil
}

func setupHandlerRouter(t *testing.T) (*gin.Engine, *MemoryRepo, *resumes.MemoryRepo, *stubDispatcher, *relayRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	letterRepo := NewMemoryRepo()
	resumeRepo := resumes.NewMemoryRepo()
	dispatcher := &stubDispatcher{}
	recorder := &relayRecorder{done: make(chan struct{})}

	svc := NewService(letterRepo, nil, "gpt-4o")
	handler := NewHandler(svc, resumeRepo, dispatcher, &FeedbackRelay{Recorder: recorder})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.CustomerID())
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r, letterRepo, resumeRepo, dispatcher, recorder
}

func seedResume(t *testing.T, repo *resumes.MemoryRepo) {
	t.Helper()
	err := repo.Create(context.Background(), resumes.Resume{
		ID:         "resume-1",
		CustomerID: "customer-1",
		Contact:    resumes.ContactInfo{FirstName: "Jane"},
	})
	if err != nil {
		t.Fatalf("seed resume: %v", err)
	}
}

func TestStartGenerationQueuesJob(t *testing.T) {
	router, _, resumeRepo, dispatcher, _ := setupHandlerRouter(t)
	seedResume(t, resumeRepo)

	body, _ := json.Marshal(map[string]string{"jobDescriptionText": "Senior Go engineer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/resume-1/cover-letters", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-Id", "customer-1")
	req.AddCookie(&http.Cookie{Name: "_exp_cta", Value: "2"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(dispatcher.messages) != 1 {
		t.Fatalf("expected 1 dispatched job, got %d", len(dispatcher.messages))
	}
	msg := dispatcher.messages[0]
	if msg.ResumeID != "resume-1" || msg.CustomerID != "customer-1" {
		t.Fatalf("unexpected job refs %+v", msg)
	}
	if msg.JobDescriptionText != "Senior Go engineer" {
		t.Fatalf("unexpected job description %q", msg.JobDescriptionText)
	}
	if msg.RequestCookies["_exp_cta"] != "2" {
		t.Fatalf("expected request cookies carried, got %v", msg.RequestCookies)
	}
	if msg.RequestID == "" {
		t.Fatal("expected request id on job")
	}
}

func TestStartGenerationUnknownResume(t *testing.T) {
	router, _, _, dispatcher, _ := setupHandlerRouter(t)

	body, _ := json.Marshal(map[string]string{"jobDescriptionText": "role"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/missing/cover-letters", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-Id", "customer-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if len(dispatcher.messages) != 0 {
		t.Fatalf("expected no dispatched jobs, got %d", len(dispatcher.messages))
	}
}

func TestStartGenerationRequiresCustomer(t *testing.T) {
	router, _, resumeRepo, _, _ := setupHandlerRouter(t)
	seedResume(t, resumeRepo)

	body, _ := json.Marshal(map[string]string{"jobDescriptionText": "role"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/resume-1/cover-letters", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestGetCoverLetterHidesOtherCustomers(t *testing.T) {
	router, letterRepo, _, _, _ := setupHandlerRouter(t)
	err := letterRepo.Create(context.Background(), CoverLetter{
		ID:         "letter-1",
		CustomerID: "customer-2",
	})
	if err != nil {
		t.Fatalf("seed letter: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters/letter-1", nil)
	req.Header.Set("X-Customer-Id", "customer-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign letter, got %d", resp.Code)
	}
}

func TestRateCoverLetterRelaysFeedback(t *testing.T) {
	router, letterRepo, _, _, recorder := setupHandlerRouter(t)
	err := letterRepo.Create(context.Background(), CoverLetter{
		ID:           "letter-1",
		CustomerID:   "customer-1",
		InputLogName: "input-log-1",
	})
	if err != nil {
		t.Fatalf("seed letter: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"rating": "thumbs_down"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cover-letters/letter-1/rating", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-Id", "customer-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var view View
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Rating == nil || *view.Rating != RatingThumbsDown {
		t.Fatalf("expected thumbs_down in response, got %+v", view.Rating)
	}

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected feedback relay call")
	}
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if len(recorder.feedback) != 1 || recorder.feedback[0].Thumbs != llm.ThumbsDown {
		t.Fatalf("unexpected relayed feedback %+v", recorder.feedback)
	}
}

func TestRateCoverLetterRejectsUnknownRating(t *testing.T) {
	router, letterRepo, _, _, _ := setupHandlerRouter(t)
	_ = letterRepo.Create(context.Background(), CoverLetter{ID: "letter-1", CustomerID: "customer-1"})

	body, _ := json.Marshal(map[string]string{"rating": "meh"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cover-letters/letter-1/rating", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-Id", "customer-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
