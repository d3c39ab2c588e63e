package billing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gong8/sentinel-site/pkg/logger"
	"github.com/gong8/sentinel-site/pkg/pricing"
)

// Service routes billing navigation: checkout redirects resolved from the
// pricing catalog, the Stripe customer portal, and the pages Stripe sends
// customers back to after checkout.
type Service struct {
	catalog *pricing.Catalog
	log     *slog.Logger
}

func NewService(catalog *pricing.Catalog, log *slog.Logger) *Service {
	if catalog == nil {
		panic("billing: nil catalog")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog: catalog,
		log:     log.With(logger.Component("billing")),
	}
}

// Handle returns the HTTP handler for billing routes. Paths are absolute
// because the Stripe dashboard links to them directly; mount at the router
// root.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/billing", s.portal)
	r.Get("/upgrade/{tierID}", s.upgrade)
	r.Get("/checkout/success", s.checkoutSuccess)
	r.Get("/checkout/cancel", s.checkoutCancel)
	return r
}

// portal redirects to the Stripe customer portal where existing customers
// manage their subscription.
func (s *Service) portal(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, s.catalog.Links.CustomerPortal, http.StatusSeeOther)
}

// upgrade redirects to the navigation target for the requested tier. The
// period query parameter selects the payment link; anything unrecognized
// falls back to monthly.
func (s *Service) upgrade(w http.ResponseWriter, req *http.Request) {
	tierID := chi.URLParam(req, "tierID")
	period := pricing.ParseBillingPeriod(req.URL.Query().Get("period"))

	target, ok := s.catalog.ResolveByID(tierID, period)
	if !ok {
		s.log.WarnContext(req.Context(), "upgrade requested for unknown tier", "tier", tierID)
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Unknown pricing tier"})
		return
	}

	http.Redirect(w, req, target, http.StatusSeeOther)
}

func (s *Service) checkoutSuccess(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payment complete. Your license key has been emailed to you.",
	})
}

func (s *Service) checkoutCancel(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": false,
		"message": "Checkout cancelled. No charge was made.",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
