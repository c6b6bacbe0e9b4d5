package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mkoester/lightbox/pkg/buildinfo"
	"github.com/mkoester/lightbox/pkg/errors"
	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/window"
	"github.com/mkoester/lightbox/pkg/pipeline"
)

// LayoutResponse is the body of a successful /v1/layout call.
type LayoutResponse struct {
	RequestID   string               `json:"request_id"`
	LibraryHash string               `json:"library_hash"`
	ItemCount   int                  `json:"item_count"`
	Layout      gallery.LayoutResult `json:"layout"`
	Cache       pipeline.CacheInfo   `json:"cache"`
	DurationMS  int64                `json:"duration_ms"`
}

// WindowRequest is the body of a /v1/window call. The client sends back the
// layout it received and the viewport it is showing.
type WindowRequest struct {
	Layout         []gallery.LayoutItem `json:"layout"`
	ScrollTop      float64              `json:"scroll_top"`
	ViewportHeight float64              `json:"viewport_height"`
	Buffer         float64              `json:"buffer,omitempty"`
}

// WindowResponse is the body of a successful /v1/window call.
type WindowResponse struct {
	RequestID string               `json:"request_id"`
	Visible   []gallery.LayoutItem `json:"visible"`
	Count     int                  `json:"count"`
}

// ErrorResponse is the body of any failed call.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	opts.Logger = s.logger

	start := time.Now()

	lib, scanHit, err := s.runner.ScanWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	layoutStart := time.Now()
	computed, layoutHit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), lib, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	recordLayout(len(computed.Layout), time.Since(layoutStart))

	writeJSON(w, http.StatusOK, LayoutResponse{
		RequestID:   reqID(r.Context()),
		LibraryHash: pipeline.LibraryHash(lib),
		ItemCount:   lib.Len(),
		Layout:      computed,
		Cache:       pipeline.CacheInfo{ScanHit: scanHit, LayoutHit: layoutHit},
		DurationMS:  time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleWindow(w http.ResponseWriter, r *http.Request) {
	var req WindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.ViewportHeight <= 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "viewport_height must be positive"))
		return
	}

	buffer := req.Buffer
	if buffer == 0 {
		buffer = window.DefaultBuffer
	}

	visible := window.Visible(req.Layout, req.ScrollTop, req.ViewportHeight, buffer)
	writeJSON(w, http.StatusOK, WindowResponse{
		RequestID: reqID(r.Context()),
		Visible:   visible,
		Count:     len(visible),
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", reqID(r.Context()),
			"path", r.URL.Path,
			"error", err)
	} else {
		s.logger.Debug("request rejected",
			"request_id", reqID(r.Context()),
			"path", r.URL.Path,
			"error", err)
	}

	writeJSON(w, status, ErrorResponse{
		RequestID: reqID(r.Context()),
		Code:      string(errors.GetCode(err)),
		Error:     errors.UserMessage(err),
	})
}

// statusFor maps structured error codes onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidMode),
		errors.Is(err, errors.ErrCodeInvalidView),
		errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidItem),
		errors.Is(err, errors.ErrCodeInvalidPath),
		errors.Is(err, errors.ErrCodeInvalidLibrary):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound),
		errors.Is(err, errors.ErrCodeItemNotFound),
		errors.Is(err, errors.ErrCodeFileNotFound),
		errors.Is(err, errors.ErrCodeSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
