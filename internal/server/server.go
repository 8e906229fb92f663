package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/config"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/internal/logger"
	"github.com/wealthmap/household-projection/internal/output"
)

// Query parameters that select the report rather than override the configuration.
const (
	paramFormat = "format"
	paramTarget = "target_age"
)

var contentTypes = map[string]string{
	"console":    "text/plain; charset=utf-8",
	"detailed":   "text/plain; charset=utf-8",
	"csv":        "text/csv; charset=utf-8",
	"ledger-csv": "text/csv; charset=utf-8",
	"html":       "text/html; charset=utf-8",
	"json":       "application/json",
	"pdf":        "application/pdf",
}

// Server serves projections of a base configuration over HTTP. Every
// request projects afresh; query parameters override the base.
type Server struct {
	base   domain.Configuration
	parser *config.InputParser
	log    *zap.SugaredLogger
	router *mux.Router
}

// New builds a server around base. A nil logger is replaced with a no-op one.
func New(base domain.Configuration, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		base:   base.Clone(),
		parser: config.NewInputParser(),
		log:    log,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	s.router.HandleFunc("/parameters", s.handleParameters).Methods(http.MethodGet)
	s.router.HandleFunc("/milestones", s.handleMilestones).Methods(http.MethodGet)
	s.router.HandleFunc("/projection", s.handleProjection).Methods(http.MethodGet)
	s.router.HandleFunc("/projection/{age:[0-9]+}", s.handleYear).Methods(http.MethodGet)
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Infof("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context(), s.log)))
		s.log.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.base)
}

func (s *Server) handleParameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.ParameterNames(s.base))
}

func (s *Server) handleMilestones(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.configFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, calculation.Milestones(cfg))
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.configFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	format := r.URL.Query().Get(paramFormat)
	if format == "" {
		format = "json"
	}
	f, err := output.LookupFormatter(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	target := output.DefaultTargetAge
	if raw := r.URL.Query().Get(paramTarget); raw != "" {
		if target, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("target_age must be an integer"))
			return
		}
	}

	report := output.NewReport(cfg, s.project(r.Context(), cfg), target)
	body, err := f.Format(report)
	if err != nil {
		logger.FromContext(r.Context()).Errorf("format %s: %v", f.Name(), err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[f.Name()])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	age, err := strconv.Atoi(mux.Vars(r)["age"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cfg, err := s.configFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	y, ok := s.project(r.Context(), cfg).At(age)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("age "+strconv.Itoa(age)+" is outside the projection"))
		return
	}
	writeJSON(w, http.StatusOK, calculation.Analyze(y, cfg))
}

// configFor applies the request's query parameters, minus the report
// selectors, to the base configuration.
func (s *Server) configFor(r *http.Request) (domain.Configuration, error) {
	overrides := make(map[string]string)
	for key, values := range r.URL.Query() {
		if key == paramFormat || key == paramTarget || len(values) == 0 {
			continue
		}
		overrides[key] = values[len(values)-1]
	}
	if len(overrides) == 0 {
		return s.base, nil
	}
	return s.parser.ApplyOverrides(s.base, overrides)
}

func (s *Server) project(ctx context.Context, cfg domain.Configuration) domain.Projection {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger.FromContext(ctx))
	return engine.Project(cfg)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
