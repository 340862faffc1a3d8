package review

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/documents"
	"resume-editor-backend/internal/llm"
	"resume-editor-backend/internal/shared/server/middleware"
	"resume-editor-backend/internal/shared/storage/object"
	local "resume-editor-backend/internal/shared/storage/object/local"
)

type stubLLM struct {
	annotated string
}

func (s stubLLM) Annotate(ctx context.Context, input llm.AnnotateInput) (string, error) {
	return s.annotated, nil
}

func (s stubLLM) Structure(ctx context.Context, resumeText string) (string, error) {
	return "", nil
}

func (s stubLLM) Score(ctx context.Context, resumeText string) (string, error) {
	return "", nil
}

func setupReviewRouter(t *testing.T, annotated string) (*gin.Engine, *documents.MemoryRepo, *MemoryRepo, object.ObjectStore) {
	t.Helper()
	docRepo := documents.NewMemoryRepo()
	reviewRepo := NewMemoryRepo()
	store := local.New(t.TempDir())
	svc := NewService(reviewRepo, docRepo, store, stubLLM{annotated: annotated})
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, docRepo, reviewRepo, store
}

func seedDocument(t *testing.T, repo *documents.MemoryRepo, store object.ObjectStore, userID string) string {
	t.Helper()

	extractedKey, _, _, err := store.Save(context.Background(), userID, "resume.txt", bytes.NewReader([]byte("resume text")))
	if err != nil {
		t.Fatalf("save extracted text: %v", err)
	}
	doc := documents.Document{
		ID:               "doc-" + userID,
		UserID:           userID,
		FileName:         "resume.pdf",
		MimeType:         "application/pdf",
		SizeBytes:        123,
		StorageKey:       "test-key",
		ExtractedTextKey: extractedKey,
		CreatedAt:        time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create document: %v", err)
	}
	return doc.ID
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func createReview(t *testing.T, router *gin.Engine, documentID string) Review {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+documentID+"/review", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var rv Review
	if err := json.NewDecoder(resp.Body).Decode(&rv); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rv.ID == "" {
		t.Fatalf("expected reviewId, got empty")
	}
	return rv
}

func TestCreateReviewParsesMarkers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, docRepo, _, store := setupReviewRouter(t, "Intro [weak]{strong} outro")
	userID := "guest:test-guest"
	documentID := seedDocument(t, docRepo, store, userID)

	rv := createReview(t, router, documentID)

	if len(rv.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(rv.Segments), rv.Segments)
	}
	if len(rv.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(rv.Suggestions))
	}
	s := rv.Suggestions[0]
	if s.Original != "weak" || s.Suggestion != "strong" || s.Decision != DecisionUndecided {
		t.Fatalf("unexpected suggestion: %+v", s)
	}
}

func TestCreateReviewUnknownDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, _, _, _ := setupReviewRouter(t, "text")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/missing/review", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestDecideAndResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, docRepo, _, store := setupReviewRouter(t, "Intro [weak]{strong} outro")
	userID := "guest:test-guest"
	documentID := seedDocument(t, docRepo, store, userID)
	rv := createReview(t, router, documentID)

	body, _ := json.Marshal(map[string]bool{"accepted": true})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+rv.ID+"/suggestions/0", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reviews/"+rv.ID+"/resolved", nil)
	addGuestHeader(req)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var resolved struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&resolved); err != nil {
		t.Fatalf("decode resolved: %v", err)
	}
	if resolved.Text != "Intro strong outro" {
		t.Fatalf("unexpected resolved text: %q", resolved.Text)
	}
}

func TestDecideUnknownSuggestion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, docRepo, _, store := setupReviewRouter(t, "Intro [weak]{strong} outro")
	userID := "guest:test-guest"
	documentID := seedDocument(t, docRepo, store, userID)
	rv := createReview(t, router, documentID)

	body, _ := json.Marshal(map[string]bool{"accepted": true})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+rv.ID+"/suggestions/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestResetClearsDecisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, docRepo, _, store := setupReviewRouter(t, "Intro [weak]{strong} outro")
	userID := "guest:test-guest"
	documentID := seedDocument(t, docRepo, store, userID)
	rv := createReview(t, router, documentID)

	body, _ := json.Marshal(map[string]bool{"accepted": true})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+rv.ID+"/suggestions/0", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("accept suggestion: status %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/reviews/"+rv.ID+"/reset", nil)
	addGuestHeader(req)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("reset: status %d", resp.Code)
	}

	var after Review
	if err := json.NewDecoder(resp.Body).Decode(&after); err != nil {
		t.Fatalf("decode reset response: %v", err)
	}
	for _, s := range after.Suggestions {
		if s.Decision != DecisionUndecided {
			t.Fatalf("suggestion %d not reset: %s", s.ID, s.Decision)
		}
	}
}
