package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

func TestCourseIcon(t *testing.T) {
	tests := []struct {
		course string
		want   string
	}{
		{"Appetizer", "🥗"},
		{"Main Entree", "🍽️"},
		{"Dessert", "🍰"},
		{"Beverage", "🥤"},
		{"", "🍴"},
	}

	for _, tt := range tests {
		t.Run(tt.course, func(t *testing.T) {
			if got := courseIcon(tt.course); got != tt.want {
				t.Errorf("courseIcon(%q) = %q, want %q", tt.course, got, tt.want)
			}
		})
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("restaurant 3: %w", domain.ErrNotFound), http.StatusNotFound},
		{"validation", &domain.ValidationError{Field: "name", Message: "is required"}, http.StatusBadRequest},
		{"store", &domain.StoreError{Op: "list restaurants", Err: errors.New("disk I/O error")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := errorStatus(tt.err); got != tt.want {
				t.Errorf("errorStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorStatusHidesStoreDetails(t *testing.T) {
	_, msg := errorStatus(&domain.StoreError{Op: "get restaurant", Err: errors.New("SQL logic error near SELECT")})
	if msg == "" || contains(msg, "SQL", "SELECT") {
		t.Errorf("errorStatus() message leaks store details: %q", msg)
	}
}

func TestRequestLoggerKeepsResponseController(t *testing.T) {
	var flushErr error
	h := requestLogger(slog.Default(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		flushErr = http.NewResponseController(w).Flush()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/restaurants/", nil))

	if flushErr != nil {
		t.Errorf("Flush through requestLogger: %v", flushErr)
	}
	if !rec.Flushed {
		t.Error("underlying writer was not flushed")
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}
