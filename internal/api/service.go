package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/metrics"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/ruleset"
)

// Service validates request bodies against the forms of a catalog.
type Service struct {
	catalog    *ruleset.Catalog
	validators form.ValidatorSet
	filters    form.FilterSet
	binder     *binder.Binder
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger supplies a logger. If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records validations into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithGatherer exposes g on GET /metrics. Without it the route is not mounted.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Service) { s.gatherer = g }
}

// WithBinder replaces the default request binder.
func WithBinder(b *binder.Binder) Option {
	return func(s *Service) {
		if b != nil {
			s.binder = b
		}
	}
}

// NewService returns a Service resolving actions against validators and
// filters.
func NewService(catalog *ruleset.Catalog, validators form.ValidatorSet, filters form.FilterSet, opts ...Option) *Service {
	s := &Service{
		catalog:    catalog,
		validators: validators,
		filters:    filters,
		binder:     binder.New(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the service router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/forms", s.listForms)
	r.Get("/forms/{name}", s.describeForm)
	r.Post("/forms/{name}/validate", s.validate)
	r.Get("/healthz", httpserver.HealthHandler(s.logger, httpserver.Check{
		Name: "catalog",
		Fn:   s.catalogReady,
	}))
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

var errEmptyCatalog = errors.New("no forms loaded")

func (s *Service) catalogReady(context.Context) error {
	if s.catalog.Len() == 0 {
		return errEmptyCatalog
	}
	return nil
}

func (s *Service) listForms(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, formsResponse{Forms: s.catalog.Names()})
}

func (s *Service) describeForm(w http.ResponseWriter, r *http.Request) {
	def, err := s.catalog.Find(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	f := s.newForm(def)
	s.respond(w, r, http.StatusOK, FormInfo{
		Name:    def.Name(),
		Source:  def.Source(),
		Fields:  f.Fields(),
		Rules:   len(def.Rules()),
		Filters: len(def.Filters()),
	})
}

func (s *Service) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	def, err := s.catalog.Find(name)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	raw, err := s.binder.Bind(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	start := time.Now()
	f := s.newForm(def)
	if err := f.SetData(raw); err != nil {
		s.configurationError(w, r, name, err)
		return
	}
	valid, err := f.Validate()
	if err != nil {
		s.configurationError(w, r, name, err)
		return
	}
	elapsed := time.Since(start)
	s.metrics.ObserveValidation(name, f.ErrorFields(), elapsed)

	s.logger.DebugContext(r.Context(), "form validated",
		logger.Form(name),
		slog.Bool("valid", valid),
		logger.Fields(f.ErrorFields()),
		logger.Duration(elapsed),
	)

	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	s.respond(w, r, status, ValidationResult{
		Valid:       valid,
		Data:        f.Data(),
		Errors:      f.Errors(),
		FirstErrors: f.FirstErrors(),
	})
}

func (s *Service) newForm(def *ruleset.Definition) *form.Form {
	opts := append(def.Options(),
		form.WithValidators(s.validators),
		form.WithFilterSet(s.filters),
		form.WithLogger(s.logger.With(logger.Form(def.Name()))),
	)
	return form.New(opts...)
}

func (s *Service) configurationError(w http.ResponseWriter, r *http.Request, name string, err error) {
	s.metrics.ConfigurationError(name)
	s.logger.ErrorContext(r.Context(), "form is misconfigured", logger.Form(name), logger.Error(err))
	s.fail(w, r, err)
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError && detail.Code == CodeInternal {
		s.logger.ErrorContext(r.Context(), "request failed", logger.Path(r.URL.Path), logger.Error(err))
	}
	s.respond(w, r, status, errorResponse{Error: detail})
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := writeJSON(w, status, body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to write response", logger.Path(r.URL.Path), logger.Error(err))
	}
}
