package api

import (
	"net/http"
	"strconv"
	"testing"

	"babyshower_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestCreateStickerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	x, y := 100, 200
	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{"valid", map[string]any{"babyName": "Luna", "x": x, "y": y, "color": "#ffadad"}, http.StatusCreated},
		{"missing name", map[string]any{"x": x, "y": y}, http.StatusBadRequest},
		{"whitespace name", map[string]any{"babyName": "   ", "x": x, "y": y}, http.StatusBadRequest},
		{"missing x", map[string]any{"babyName": "Luna", "y": y}, http.StatusBadRequest},
		{"missing y", map[string]any{"babyName": "Luna", "x": x}, http.StatusBadRequest},
		{"zero coordinates are valid", map[string]any{"babyName": "Nova", "x": 0, "y": 0}, http.StatusCreated},
		{"duplicate names allowed", map[string]any{"babyName": "Luna", "x": 5, "y": 5}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/stickers", tt.body, nil)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateStickerAssignsPaletteColor(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/stickers", map[string]any{"babyName": "Milo", "x": 10, "y": 20}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created StickerResponse
	decodeBody(t, w, &created)
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
	if created.Name != "Milo" || created.X != 10 || created.Y != 20 {
		t.Errorf("created sticker wrong: %+v", created)
	}
	found := false
	for _, c := range domain.PastelPalette {
		if created.Color == c {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("assigned color %q is not in the pastel palette", created.Color)
	}
}

func TestListStickersNewestFirst(t *testing.T) {
	r, _ := newTestRouter(t)

	first := createSticker(t, r, "Ada", 1, 1)
	second := createSticker(t, r, "Bea", 2, 2)

	w := doJSON(t, r, http.MethodGet, "/api/stickers", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []StickerResponse
	decodeBody(t, w, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 stickers, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("expected newest first, got ids %d, %d", list[0].ID, list[1].ID)
	}
}

func TestRepositionSticker(t *testing.T) {
	r, _ := newTestRouter(t)
	sticker := createSticker(t, r, "Luna", 10, 20)

	w := doJSON(t, r, http.MethodPatch, "/api/stickers/"+itoa(sticker.ID), map[string]int{"x": 450, "y": 10}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success {
		t.Error("expected success:true")
	}

	// The list reflects the updated coordinates, last write wins
	w = doJSON(t, r, http.MethodGet, "/api/stickers", nil, nil)
	var list []StickerResponse
	decodeBody(t, w, &list)
	if len(list) != 1 || list[0].X != 450 || list[0].Y != 10 {
		t.Errorf("expected updated position (450,10), got %+v", list)
	}
	// Name and color are untouched by a reposition
	if list[0].Name != "Luna" {
		t.Errorf("reposition mutated name: %+v", list[0])
	}
}

func TestRepositionStickerErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/stickers/abc", map[string]int{"x": 1, "y": 1}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/stickers/99999", map[string]int{"x": 1, "y": 1}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}

// createSticker adds a sticker and returns the created record
func createSticker(t *testing.T, r *gin.Engine, name string, x, y int) StickerResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/stickers", map[string]any{"babyName": name, "x": x, "y": y}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create sticker %q: expected 201, got %d (%s)", name, w.Code, w.Body.String())
	}
	var created StickerResponse
	decodeBody(t, w, &created)
	return created
}

// itoa renders a uint id for path building
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
