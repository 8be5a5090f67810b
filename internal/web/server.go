package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/vbonduro/restaurantmenu/internal/flash"
	"github.com/vbonduro/restaurantmenu/internal/service"
)

type Server struct {
	service   *service.RestaurantService
	templates embed.FS
	flash     *flash.Flasher
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc *service.RestaurantService, tmpl embed.FS, flasher *flash.Flasher, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		templates: tmpl,
		flash:     flasher,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"courseIcon": courseIcon,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleListRestaurants)
	s.mux.HandleFunc("GET /restaurants/{$}", s.handleListRestaurants)
	s.mux.HandleFunc("GET /restaurant/{id}/{$}", s.handleShowMenu)
	s.mux.HandleFunc("GET /restaurant/{id}/menu/{$}", s.handleShowMenu)

	s.mux.HandleFunc("GET /restaurant/new/{$}", s.handleNewRestaurantForm)
	s.mux.HandleFunc("POST /restaurant/new/{$}", s.handleCreateRestaurant)
	s.mux.HandleFunc("GET /restaurant/{id}/edit/{$}", s.handleEditRestaurantForm)
	s.mux.HandleFunc("POST /restaurant/{id}/edit/{$}", s.handleUpdateRestaurant)
	s.mux.HandleFunc("GET /restaurant/{id}/delete/{$}", s.handleDeleteRestaurantForm)
	s.mux.HandleFunc("POST /restaurant/{id}/delete/{$}", s.handleDeleteRestaurant)

	s.mux.HandleFunc("GET /restaurant/{id}/menu/new/{$}", s.handleNewMenuItemForm)
	s.mux.HandleFunc("POST /restaurant/{id}/menu/new/{$}", s.handleCreateMenuItem)
	s.mux.HandleFunc("GET /restaurant/{id}/menu/{menuId}/edit/{$}", s.handleEditMenuItemForm)
	s.mux.HandleFunc("POST /restaurant/{id}/menu/{menuId}/edit/{$}", s.handleUpdateMenuItem)
	s.mux.HandleFunc("GET /restaurant/{id}/menu/{menuId}/delete/{$}", s.handleDeleteMenuItemForm)
	s.mux.HandleFunc("POST /restaurant/{id}/menu/{menuId}/delete/{$}", s.handleDeleteMenuItem)

	s.mux.HandleFunc("GET /restaurants/JSON", s.handleRestaurantsJSON)
	s.mux.HandleFunc("GET /restaurant/{id}/menu/JSON", s.handleMenuJSON)
	s.mux.HandleFunc("GET /restaurant/{id}/menu/{menuId}/JSON", s.handleMenuItemJSON)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"form-action 'self'")
		next.ServeHTTP(w, r)
	})
}

// recoverer turns a handler panic into a 500 instead of dropping the connection.
func recoverer(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.Error("handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", v,
					"stack", string(debug.Stack()),
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, recoverer(s.logger, securityHeaders(s.mux))).ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// renderPage parses base.html plus the named page and executes "base".
// Output is buffered so a template failure can still become a clean 500.
func (s *Server) renderPage(w http.ResponseWriter, status int, data any, page string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, "base.html", "pages/"+page)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// view renders page with the pending flash message added to data.
func (s *Server) view(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Flash"] = s.flash.Pop(w, r)
	if err := s.renderPage(w, status, data, page); err != nil {
		s.logger.Error("render page error", "page", page, "error", err)
	}
}

// redirectWithFlash records msg for the next page view and sends a 303.
func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, msg string) {
	if err := s.flash.Set(w, msg); err != nil {
		s.logger.Error("failed to set flash message", "error", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// courseIcon returns an emoji based on keywords in the course name.
func courseIcon(course string) string {
	lower := strings.ToLower(course)
	switch {
	case contains(lower, "appetizer", "starter"):
		return "🥗"
	case contains(lower, "entree", "main"):
		return "🍽️"
	case contains(lower, "dessert"):
		return "🍰"
	case contains(lower, "beverage", "drink"):
		return "🥤"
	default:
		return "🍴"
	}
}

func contains(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
