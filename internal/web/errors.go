package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

// errorStatus maps a service error onto an HTTP status and a message safe to
// show to the user.
func errorStatus(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "The requested restaurant or menu item does not exist."
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong while talking to the database."
	}
}

// renderError writes an HTML error page for err. Server-side failures are
// logged; client errors only at debug level.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	s.logError(r, status, err)
	s.view(w, r, status, "error.html", map[string]any{
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    msg,
	})
}

func (s *Server) logError(r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		return
	}
	s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
}

// parseForm reads a bounded urlencoded or multipart body.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return &domain.ValidationError{Field: "form", Message: "could not be read"}
	}
	return nil
}

const maxFormBytes = 64 << 10
