package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"babyshower_backend/internal/config"
	"babyshower_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One shared-cache memory DB per test so parallel tests stay isolated
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(&domain.Participant{}, &domain.Prediction{}, &domain.Sticker{}, &domain.Preorder{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	due, _ := time.Parse("2006-01-02", "2026-06-15")
	return &config.Config{
		JWTSecret:       "test-secret",
		AdminCode:       "baby",
		CaptchaPhrase:   "goo goo",
		ExpectedDueDate: due,
	}
}

// newTestRouter wires the full route table over an in-memory DB, no redis
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	return NewRouter(db, nil, testConfig()), db
}

// doJSON performs one request against the router and returns the recorder
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorder body into out
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

// joinParticipant registers a participant and returns its id
func joinParticipant(t *testing.T, r *gin.Engine, name, relation string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/join", map[string]string{"name": name, "relation": relation}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("join %q: expected 201, got %d (%s)", name, w.Code, w.Body.String())
	}
	var resp struct {
		ParticipantID uint `json:"participantId"`
	}
	decodeBody(t, w, &resp)
	return resp.ParticipantID
}

// submitPrediction stores a prediction for the participant, failing on non-201
func submitPrediction(t *testing.T, r *gin.Engine, id uint, gender string, weightLbs float64, dueDate string, bet int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/predict", map[string]any{
		"participantId": id,
		"gender":        gender,
		"weightLbs":     weightLbs,
		"dueDate":       dueDate,
		"betAmount":     bet,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("predict for %d: expected 201, got %d (%s)", id, w.Code, w.Body.String())
	}
}
