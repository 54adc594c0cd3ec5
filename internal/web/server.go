package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/joshuahamrick/ncformatter"
	"github.com/joshuahamrick/ncformatter/internal/config"
)

const missingFileData = "No file data provided"

type Server struct {
	cfg    *config.Config
	logger *zap.Logger
}

type processRequest struct {
	FileData string `json:"fileData"`
	FileName string `json:"fileName"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc(s.cfg.Endpoint, s.handleProcess)
	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr), zap.String("endpoint", s.cfg.Endpoint))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic processing document", zap.Any("panic", rec))
			s.writeUnhandled(w, fmt.Errorf("%v", rec))
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		s.writeUnhandled(w, fmt.Errorf("decode request: %w", err))
		return
	}

	if req.FileData == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: missingFileData})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		s.writeUnhandled(w, fmt.Errorf("decode file data: %w", err))
		return
	}

	conv := s.converter(data, req.FileName, r)
	res, warnings, err := conv.Process()
	switch {
	case errors.Is(err, ncformatter.ErrMissingInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: missingFileData})
		return
	case errors.Is(err, ncformatter.ErrCapabilityUnavailable):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: ncformatter.ErrCapabilityUnavailable.Error()})
		return
	case err != nil:
		s.logger.Info("document rejected", zap.String("file", req.FileName), zap.Error(err))
	}

	if len(warnings) > 0 {
		s.logger.Warn("document converted with warnings",
			zap.String("file", req.FileName),
			zap.String("warnings", ncformatter.FormatWarnings(warnings)),
		)
	}

	writeJSON(w, http.StatusOK, res)
}

// converter applies the configured options and the per-request query
// options: format=markdown adds a Markdown preview and fields=1 adds the
// placeholder inventory.
func (s *Server) converter(data []byte, fileName string, r *http.Request) *ncformatter.Converter {
	conv := ncformatter.FromBytes(data, fileName).Logger(s.logger)
	if s.cfg.Extended {
		conv = conv.Extended()
	}
	if !s.cfg.Diagnostics {
		conv = conv.WithoutDiagnostics()
	}
	if s.cfg.IncludeTables {
		conv = conv.IncludeTables()
	}

	q := r.URL.Query()
	if q.Get("format") == "markdown" {
		conv = conv.Markdown()
	}
	switch q.Get("fields") {
	case "1", "true":
		conv = conv.Fields()
	}
	return conv
}

func (s *Server) writeUnhandled(w http.ResponseWriter, err error) {
	msg := fmt.Sprintf("Error: %v\nTraceback: %s", err, debug.Stack())
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})
}

func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// writeJSON writes v without escaping HTML, so letters stay readable in
// the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", filepath.Clean(r.URL.Path)),
			zap.Int("status", rw.statusCode),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
