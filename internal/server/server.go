// Package server exposes the recommender over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/common/config"
	commonerrors "takeout-recommender/internal/common/errors"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/observability"
	"takeout-recommender/internal/common/validation"
	chatrecommend "takeout-recommender/internal/workers/recommendation/chat-recommend"
	filterrestaurants "takeout-recommender/internal/workers/recommendation/filter-restaurants"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	maxBodyBytes = 1 << 20
	rootMessage  = "AI外卖推荐助手 API"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type Options struct {
	Config        *config.Config
	Catalog       *catalog.Catalog
	Chat          *chatrecommend.Handler
	Filter        *filterrestaurants.Handler
	Locator       *Locator
	Observability *observability.Observability
	Checks        map[string]ReadinessCheck
	Logger        logger.Logger
}

type Server struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	chat    *chatrecommend.Handler
	filter  *filterrestaurants.Handler
	locator *Locator
	obs     *observability.Observability
	checks  map[string]ReadinessCheck
	logger  logger.Logger
	http    *http.Server
}

func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	obs := opts.Observability
	if obs == nil {
		obs = &observability.Observability{}
	}
	locator := opts.Locator
	if locator == nil {
		locator = NewLocator(opts.Config.Server.GeoLookupURL, opts.Config.Server.DefaultCity, log)
	}

	s := &Server{
		cfg:     opts.Config,
		catalog: opts.Catalog,
		chat:    opts.Chat,
		filter:  opts.Filter,
		locator: locator,
		obs:     obs,
		checks:  opts.Checks,
		logger:  log.Named("http"),
	}
	s.http = &http.Server{
		Addr:         opts.Config.Server.Address,
		Handler:      s.Handler(),
		ReadTimeout:  config.GetDuration(opts.Config.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(opts.Config.Server.WriteTimeout),
	}
	return s
}

// Handler returns the routed, CORS-wrapped handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.route(mux, "GET /{$}", "root", s.handleRoot)
	s.route(mux, "GET /api/restaurants", "restaurants", s.handleRestaurants)
	s.route(mux, "GET /api/cuisines", "cuisines", s.handleCuisines)
	s.route(mux, "POST /api/recommend", "recommend", s.handleRecommend)
	s.route(mux, "POST /api/chat", "chat", s.handleChat)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(s.requestID(mux))
}

func (s *Server) route(mux *http.ServeMux, pattern, name string, h http.HandlerFunc) {
	mux.Handle(pattern, s.obs.Middleware(name, h))
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			r.Header.Set("X-Request-ID", uuid.NewString())
		}
		w.Header().Set("X-Request-ID", r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}

// Start blocks until the listener stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{"address": s.cfg.Server.Address})
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (s *Server) handleRestaurants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": s.catalog.All()})
}

func (s *Server) handleCuisines(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": s.catalog.Cuisines()})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := validation.ValidateFilterRequest(raw)
	if err != nil {
		s.writeError(w, r, commonerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !result.Valid {
		s.writeError(w, r, commonerrors.NewInvalidRequestError(result.Summary()))
		return
	}

	var input filterrestaurants.Input
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &input); err != nil {
			s.writeError(w, r, commonerrors.NewInvalidRequestError(err.Error()))
			return
		}
	}

	output, err := s.filter.Execute(r.Context(), &input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := validation.ValidateChatRequest(raw)
	if err != nil {
		s.writeError(w, r, commonerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !result.Valid {
		s.writeError(w, r, commonerrors.NewInvalidRequestError(result.Summary()))
		return
	}

	var input chatrecommend.Input
	if err := json.Unmarshal(raw, &input); err != nil {
		s.writeError(w, r, commonerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if input.Location == "" {
		input.Location = s.locator.Locate(r.Context(), ClientIP(r))
	}

	output, err := s.chat.Execute(r.Context(), &input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.RecommendationResult)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	failed := map[string]string{}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not_ready",
			"checks": failed,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, commonerrors.NewInvalidRequestError(fmt.Sprintf("read body: %v", err))
	}
	return raw, nil
}

type errorBody struct {
	Code    commonerrors.ErrorCode `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := commonerrors.AsStandard(err)
	status := commonerrors.HTTPStatus(stdErr.Code)

	fields := map[string]interface{}{
		"path":      r.URL.Path,
		"status":    status,
		"code":      stdErr.Code,
		"requestId": r.Header.Get("X-Request-ID"),
		"error":     err.Error(),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields)
	} else {
		s.logger.Warn("request rejected", fields)
	}

	writeJSON(w, status, errorBody{Code: stdErr.Code, Message: stdErr.Message, Details: stdErr.Details})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
