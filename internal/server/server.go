// Package server exposes the number classifier over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/and161185/numclass/internal/classifier"
	"github.com/and161185/numclass/internal/config"
	"github.com/and161185/numclass/internal/metrics"
	"github.com/and161185/numclass/internal/server/middleware"
	"github.com/and161185/numclass/model"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
)

const (
	ClassifyPath = "/api/classify-number"

	numberKey = "number"

	msgMissingNumber    = "Number parameter is missing"
	msgInvalidNumber    = "Invalid number: "
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
)

// Classifier is the classification core the HTTP layer delegates to.
type Classifier interface {
	Classify(ctx context.Context, in classifier.NumericInput) model.ClassificationResult
}

// Server serves the classification API on top of a Classifier.
type Server struct {
	classifier Classifier
	config     *config.ServerConfig
	metrics    *metrics.Metrics
}

// NewServer returns a Server over c, configured by cfg and reporting to m.
func NewServer(c Classifier, cfg *config.ServerConfig, m *metrics.Metrics) *Server {
	return &Server{
		classifier: c,
		config:     cfg,
		metrics:    m,
	}
}

// Router wires middleware and routes. It fails only on an invalid trusted subnet.
func (srv *Server) Router() (http.Handler, error) {
	trusted, err := middleware.TrustedCIDR(srv.config.TrustedSubnet)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.LogMiddleware(srv.config.Logger))
	router.Use(middleware.Metrics(srv.metrics))
	router.Use(middleware.Recover(srv.config.Logger, srv.metrics))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader, middleware.HashHeader},
		MaxAge:         300,
	}))
	router.Use(chiMiddleware.StripSlashes)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		srv.writeJSON(w, http.StatusNotFound, model.NewErrorResult(msgNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		srv.writeJSON(w, http.StatusMethodNotAllowed, model.NewErrorResult(msgMethodNotAllowed))
	})

	router.Get("/ping", srv.PingHandler)
	router.With(trusted).Handle("/metrics", srv.metrics.Handler())

	router.Group(func(r chi.Router) {
		if srv.config.RequestTimeout > 0 {
			r.Use(middleware.Timeout(srv.config.RequestTimeout))
		}
		r.Use(middleware.CompressMiddleware)
		r.Use(middleware.SignResponseMiddleware(srv.config.Key))
		r.Get(ClassifyPath, srv.ClassifyNumberHandler)
	})

	return router, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests within ShutdownTimeout.
func (srv *Server) Run(ctx context.Context) error {
	handler, err := srv.Router()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              srv.config.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      srv.config.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srv.config.Logger.Infof("listening on %s", srv.config.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		srv.config.Logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.config.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// ClassifyNumberHandler serves GET /api/classify-number?number=<literal>.
func (srv *Server) ClassifyNumberHandler(w http.ResponseWriter, r *http.Request) {
	raw, present := numberParam(r.URL.RawQuery)
	in, err := classifier.Parse(raw, present)
	if err != nil {
		var invalid *classifier.InvalidNumberError
		switch {
		case errors.Is(err, classifier.ErrMissingParameter):
			srv.writeJSON(w, http.StatusBadRequest, model.NewErrorResult(msgMissingNumber))
		case errors.As(err, &invalid):
			srv.writeJSON(w, http.StatusBadRequest,
				model.NewErrorResult(msgInvalidNumber+invalid.Raw).WithNumber(invalid.Raw))
		default:
			srv.config.Logger.Errorf("failed to parse number [raw=%q]: %v", raw, err)
			middleware.WriteInternalError(w)
		}
		return
	}

	result := srv.classifier.Classify(r.Context(), in)
	srv.writeJSON(w, http.StatusOK, result)
}

// numberParam returns the first "number" value in rawQuery. A value that cannot be
// unescaped is returned as sent, so it is reported as an invalid number rather than dropped.
func numberParam(rawQuery string) (string, bool) {
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err != nil || k != numberKey {
			continue
		}
		if v, err := url.QueryUnescape(value); err == nil {
			return v, true
		}
		return value, true
	}
	return "", false
}

// PingHandler is a liveness probe.
func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	srv.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes before writing anything, so an encoding failure can still become a 500.
func (srv *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		srv.config.Logger.Errorf("failed to encode response JSON: %v", err)
		middleware.WriteInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		srv.config.Logger.Debugf("failed to write response body: %v", err)
	}
}
