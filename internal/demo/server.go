package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/api"
	"github.com/pablasso/siteplan/internal/plan"
)

// Config configures the demo service.
type Config struct {
	Scenario Scenario
	// AIDelay holds each AI plan response to make the loading state visible.
	AIDelay time.Duration
	Log     *zap.Logger
}

// Server answers the calculation and AI plan endpoints.
type Server struct {
	scenario Scenario
	aiDelay  time.Duration
	log      *zap.Logger
}

// NewServer creates a demo Server.
func NewServer(cfg Config) *Server {
	s := &Server{
		scenario: cfg.Scenario,
		aiDelay:  cfg.AIDelay,
		log:      cfg.Log,
	}
	if s.scenario == "" {
		s.scenario = ScenarioSuccess
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.log))

	r.Post(api.CalculatePath, s.handleCalculate)
	r.Post(api.AIPlanPath, s.handleAIPlan)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return r
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if s.scenario == ScenarioCalcFail {
		s.writeError(w, http.StatusInternalServerError, "demo calculation failure: estimator offline")
		return
	}

	calc, err := Calculate(req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

func (s *Server) handleAIPlan(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	if s.aiDelay > 0 {
		select {
		case <-time.After(s.aiDelay):
		case <-r.Context().Done():
			return
		}
	}

	if s.scenario == ScenarioAIFail {
		s.writeError(w, http.StatusServiceUnavailable, "AI Service unavailable")
		return
	}

	p, err := ParseAIProject(req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan.AIPlan{Analysis: Analysis(p, s.scenario)})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (plan.Request, bool) {
	var req plan.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return plan.Request{}, false
	}
	return req, true
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.log.Warn("demo request failed", zap.Int("status", status), zap.String("message", message))
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RequestLogger logs each request with its status and duration.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			log.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Running is a demo server listening on a local port.
type Running struct {
	URL string
	srv *http.Server
	log *zap.Logger
}

// Start serves the demo on a free loopback port until Close is called.
func Start(cfg Config) (*Running, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start demo server: %w", err)
	}
	s := NewServer(cfg)
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("demo server failed", zap.Error(err))
		}
	}()

	url := "http://" + ln.Addr().String()
	s.log.Info("demo server started", zap.String("url", url), zap.String("scenario", string(s.scenario)))
	return &Running{URL: url, srv: srv, log: s.log}, nil
}

// Close shuts the server down, waiting up to two seconds for in-flight requests.
func (r *Running) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return r.srv.Shutdown(ctx)
}

// ListenAndServe serves the demo on addr until ctx is canceled.
func ListenAndServe(ctx context.Context, addr string, cfg Config) error {
	s := NewServer(cfg)
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", zap.String("addr", addr), zap.String("scenario", string(s.scenario)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
