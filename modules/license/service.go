package license

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gong8/sentinel-site/pkg/license"
	"github.com/gong8/sentinel-site/pkg/logger"
)

// StatusSource supplies the current entitlement snapshot. *license.Provider
// satisfies it.
type StatusSource interface {
	Status(ctx context.Context) license.Status
	Capabilities(ctx context.Context) license.Capabilities
}

// Service exposes the current license status and derived capabilities as a
// read-only JSON endpoint for the site frontend.
type Service struct {
	source StatusSource
	log    *slog.Logger
}

func NewService(source StatusSource, log *slog.Logger) *Service {
	if source == nil {
		panic("license: nil status source")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		source: source,
		log:    log.With(logger.Component("license")),
	}
}

// Handle returns the HTTP handler for the license status endpoint.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/status", s.status)
	return r
}

type statusResponse struct {
	Status       license.Status       `json:"status"`
	Capabilities license.Capabilities `json:"capabilities"`
}

func (s *Service) status(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	resp := statusResponse{
		Status:       s.source.Status(ctx),
		Capabilities: s.source.Capabilities(ctx),
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.ErrorContext(ctx, "failed to encode license status", logger.Error(err))
	}
}
