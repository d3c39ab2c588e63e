package survey

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gong8/sentinel-site/pkg/logger"
	"github.com/gong8/sentinel-site/pkg/validator"
)

// Reason codes offered by the exit survey form.
var reasons = []string{
	"too_expensive",
	"missing_features",
	"switched_competitor",
	"no_longer_need",
	"technical_issues",
	"poor_support",
	"other",
}

// Answers to the "would you come back" question.
var returnAnswers = []string{"yes", "maybe", "no"}

type submitRequest struct {
	Email       string `json:"email,omitempty"`
	Reason      string `json:"reason"`
	Feedback    string `json:"feedback,omitempty"`
	WouldReturn string `json:"wouldReturn,omitempty"`
}

func (r submitRequest) validate() error {
	rules := []validator.Rule{
		validator.Required("reason", r.Reason),
		validator.OneOf("reason", r.Reason, reasons...),
	}
	if r.Email != "" {
		rules = append(rules, validator.ValidEmail("email", r.Email))
	}
	if r.WouldReturn != "" {
		rules = append(rules, validator.OneOf("wouldReturn", r.WouldReturn, returnAnswers...))
	}
	return validator.Apply(rules...)
}

// Service records exit survey submissions.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func NewService(store Store, log *slog.Logger) *Service {
	if store == nil {
		panic("survey: nil store")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store: store,
		log:   log.With(logger.Component("survey")),
		now:   time.Now,
	}
}

// Handle returns the HTTP handler for the exit survey endpoint.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
	})
	r.Post("/", s.submit)
	return r
}

func (s *Service) submit(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body submitRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	if err := body.validate(); err != nil {
		errs := validator.ExtractValidationErrors(err)
		if errs.Has("reason") {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Please select a reason for leaving."})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": errs.Error()})
		return
	}

	sub := Submission{
		ID:          uuid.New(),
		Email:       body.Email,
		Reason:      body.Reason,
		Feedback:    body.Feedback,
		WouldReturn: body.WouldReturn,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Save(ctx, sub); err != nil {
		s.log.ErrorContext(ctx, "failed to save exit survey", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to submit survey. Please try again."})
		return
	}

	s.log.InfoContext(ctx, "exit survey recorded", "reason", sub.Reason)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
