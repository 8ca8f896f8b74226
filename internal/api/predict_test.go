package api

import (
	"net/http"
	"testing"

	"babyshower_backend/internal/domain"
)

func TestPredictValidationOrder(t *testing.T) {
	r, _ := newTestRouter(t)
	id := joinParticipant(t, r, "Priya", "Aunt")

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{
			"missing gender",
			map[string]any{"participantId": id, "weightLbs": 7.5, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"missing weight",
			map[string]any{"participantId": id, "gender": "boy", "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"missing participant id",
			map[string]any{"gender": "boy", "weightLbs": 7.5, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"invalid gender",
			map[string]any{"participantId": id, "gender": "dragon", "weightLbs": 7.5, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"weight below floor",
			map[string]any{"participantId": id, "gender": "boy", "weightLbs": 3.99, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"weight above ceiling",
			map[string]any{"participantId": id, "gender": "boy", "weightLbs": 10.01, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			// 1.8 kg is the bottom of the client slider but converts to
			// ~3.968 lbs, below the server floor
			"slider minimum converts below floor",
			map[string]any{"participantId": id, "gender": "boy", "weightLbs": 1.8 * domain.LbsPerKg, "dueDate": "2026-06-15"},
			http.StatusBadRequest,
		},
		{
			"malformed date",
			map[string]any{"participantId": id, "gender": "boy", "weightLbs": 7.5, "dueDate": "June 15th"},
			http.StatusBadRequest,
		},
		{
			"unknown participant",
			map[string]any{"participantId": 99999, "gender": "boy", "weightLbs": 7.5, "dueDate": "2026-06-15"},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/predict", tt.body, nil)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestPredictWeightBoundsInclusive(t *testing.T) {
	r, _ := newTestRouter(t)

	// Both bounds are inclusive
	low := joinParticipant(t, r, "Low", "Friend")
	submitPrediction(t, r, low, "girl", 4.0, "2026-06-10", 100)
	high := joinParticipant(t, r, "High", "Friend")
	submitPrediction(t, r, high, "boy", 10.0, "2026-06-20", 100)
}

func TestPredictDuplicate(t *testing.T) {
	r, db := newTestRouter(t)
	id := joinParticipant(t, r, "Joe", "Uncle")

	submitPrediction(t, r, id, "boy", 7.5, "2026-06-15", 100)

	// Second submission for the same participant is a conflict
	w := doJSON(t, r, http.MethodPost, "/api/predict", map[string]any{
		"participantId": id,
		"gender":        "girl",
		"weightLbs":     6.0,
		"dueDate":       "2026-06-16",
		"betAmount":     250,
	}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate prediction, got %d (%s)", w.Code, w.Body.String())
	}

	// Only one prediction row exists, and it is the first one
	var rows []domain.Prediction
	db.Where("participant_id = ?", id).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("expected 1 prediction row, got %d", len(rows))
	}
	if rows[0].Gender != "boy" || rows[0].WeightLbs != 7.5 {
		t.Errorf("first prediction mutated: %+v", rows[0])
	}
}

func TestPredictSuccess(t *testing.T) {
	r, db := newTestRouter(t)
	id := joinParticipant(t, r, "Grandma", "Grandmother")

	w := doJSON(t, r, http.MethodPost, "/api/predict", map[string]any{
		"participantId": id,
		"gender":        "girl",
		"weightLbs":     7.05,
		"dueDate":       "2026-06-12",
		"betAmount":     300,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success {
		t.Error("expected success:true")
	}

	var got domain.Prediction
	if err := db.Where("participant_id = ?", id).First(&got).Error; err != nil {
		t.Fatalf("prediction not stored: %v", err)
	}
	if got.Gender != "girl" || got.DueDate != "2026-06-12" || got.BetAmount != 300 {
		t.Errorf("stored prediction wrong: %+v", got)
	}
}

func TestPredictDefaultsBet(t *testing.T) {
	r, db := newTestRouter(t)
	id := joinParticipant(t, r, "Dog", "Family Dog")

	w := doJSON(t, r, http.MethodPost, "/api/predict", map[string]any{
		"participantId": id,
		"gender":        "boy",
		"weightLbs":     8.0,
		"dueDate":       "2026-06-18",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var got domain.Prediction
	db.Where("participant_id = ?", id).First(&got)
	if got.BetAmount != 100 {
		t.Errorf("expected default bet 100, got %d", got.BetAmount)
	}
}
