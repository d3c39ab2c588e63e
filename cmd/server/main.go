// Sentinel site - marketing site backend with license-aware gating.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gong8/sentinel-site/modules/billing"
	licensemod "github.com/gong8/sentinel-site/modules/license"
	"github.com/gong8/sentinel-site/modules/partner"
	"github.com/gong8/sentinel-site/modules/survey"
	"github.com/gong8/sentinel-site/pkg/config"
	"github.com/gong8/sentinel-site/pkg/email"
	"github.com/gong8/sentinel-site/pkg/httpserver"
	"github.com/gong8/sentinel-site/pkg/license"
	"github.com/gong8/sentinel-site/pkg/logger"
	"github.com/gong8/sentinel-site/pkg/pg"
	"github.com/gong8/sentinel-site/pkg/pricing"
)

type appConfig struct {
	LicenseStatusURL   string `env:"LICENSE_STATUS_URL" envDefault:"https://api.sentinel.london/v1/license/status"`
	PricingCatalogPath string `env:"PRICING_CATALOG_PATH"` // optional, defaults to the built-in catalog
}

func main() {
	log := logger.New(logger.WithService("sentinel-site"))

	if err := run(context.Background(), log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		pgCfg      pg.Config
		emailCfg   email.Config
		partnerCfg partner.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&pgCfg); err != nil {
		return err
	}
	if err := config.Load(&emailCfg); err != nil {
		return err
	}
	if err := config.Load(&partnerCfg); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	// Without Postmark tokens, emails are written to disk for inspection.
	var mailer email.EmailSender
	if emailCfg.PostmarkServerToken != "" {
		mailer, err = email.NewPostmarkClient(emailCfg)
		if err != nil {
			return err
		}
	} else {
		log.Info("postmark not configured, using dev email sender", "dir", emailCfg.DevOutputDir)
		mailer = email.NewDevSender(emailCfg.DevOutputDir)
	}

	licenseClient, err := license.NewHTTPClient(appCfg.LicenseStatusURL)
	if err != nil {
		return err
	}
	provider := license.NewProvider(licenseClient)

	catalog := pricing.DefaultCatalog()
	if appCfg.PricingCatalogPath != "" {
		catalog, err = pricing.LoadFile(appCfg.PricingCatalogPath)
		if err != nil {
			return err
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, pg.Healthcheck(pool)))

	r.Mount("/api/partner-application", partner.NewService(partnerCfg, mailer, log).Handle())
	r.Mount("/api/exit-survey", survey.NewService(survey.NewPgStore(pool), log).Handle())
	r.Mount("/api/license", licensemod.NewService(provider, log).Handle())
	r.Mount("/", billing.NewService(catalog, log).Handle())

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("http server listening", "addr", httpCfg.Addr)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("http server stopped")
		}),
	)

	return srv.Run(ctx, r)
}
