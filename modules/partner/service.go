package partner

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gong8/sentinel-site/pkg/email"
	"github.com/gong8/sentinel-site/pkg/logger"
	"github.com/gong8/sentinel-site/pkg/validator"
)

// Config holds design partner programme settings.
type Config struct {
	NotificationEmail string `env:"PARTNER_NOTIFICATION_EMAIL" envDefault:"hello@sentinel.london"`
}

// Application is a design partner programme submission.
type Application struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	AgentCount string `json:"agentCount"`
	UseCase    string `json:"useCase,omitempty"`
}

// Validate checks the required fields of an application.
func (a Application) Validate() error {
	return validator.Apply(
		validator.Required("name", a.Name),
		validator.Required("email", a.Email),
		validator.Required("company", a.Company),
		validator.Required("role", a.Role),
		validator.Required("agentCount", a.AgentCount),
		validator.ValidEmail("email", a.Email),
	)
}

// Service accepts design partner applications and notifies the team.
type Service struct {
	cfg    Config
	mailer email.EmailSender
	log    *slog.Logger
}

func NewService(cfg Config, mailer email.EmailSender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		mailer: mailer,
		log:    log.With(logger.Component("partner")),
	}
}

// Handle returns the HTTP handler for the partner application endpoint.
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

	if s.mailer == nil {
		s.log.ErrorContext(ctx, "email sender is not configured")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Email service not configured"})
		return
	}

	var app Application
	if err := json.NewDecoder(req.Body).Decode(&app); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	if err := app.Validate(); err != nil {
		errs := validator.ExtractValidationErrors(err)
		// Missing fields take precedence; the format complaint only applies
		// when the email was supplied and is the sole problem.
		if app.Email != "" && len(errs.Fields()) == 1 && errs.Has("email") {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid email address"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		return
	}

	notification, err := renderNotificationEmail(app)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render notification email", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to process application"})
		return
	}

	// Notification failure is logged but doesn't fail the request: the
	// applicant's confirmation below still records that we got the submission.
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.cfg.NotificationEmail,
		Subject:  "New Design Partner Application: " + app.Company,
		BodyHTML: notification,
		Tag:      "partner-notification",
	}); err != nil {
		s.log.ErrorContext(ctx, "failed to send notification email", logger.Error(err))
	}

	confirmation, err := renderConfirmationEmail(app)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render confirmation email", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to process application"})
		return
	}

	// Confirmation failure is also non-fatal: the application itself was
	// received, so the client still gets a success response.
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   app.Email,
		Subject:  "Application Received - Sentinel Design Partner Programme",
		BodyHTML: confirmation,
		Tag:      "partner-confirmation",
	}); err != nil {
		s.log.ErrorContext(ctx, "failed to send confirmation email", logger.Error(err))
	}

	s.log.InfoContext(ctx, "partner application received", "company", app.Company)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Application submitted successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
