package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storepulse/storepulse-backend/api/controllers"
	"github.com/storepulse/storepulse-backend/api/middleware"
	"github.com/storepulse/storepulse-backend/internal/auth"
	"github.com/storepulse/storepulse-backend/internal/dashboard"
	syncsvc "github.com/storepulse/storepulse-backend/internal/sync"
	"github.com/storepulse/storepulse-backend/internal/tenants"
	"github.com/storepulse/storepulse-backend/pkg/auth/session"
	"github.com/storepulse/storepulse-backend/pkg/config"
	"github.com/storepulse/storepulse-backend/pkg/db"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"github.com/storepulse/storepulse-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the HTTP surface needs. cmd/api builds one and
// hands it to NewRouter.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager sessionManager
	AuthService    auth.Service
	TenantsService tenants.Service
	SyncService    syncsvc.Service
	Dashboard      dashboard.Service
	Products       controllers.ProductsLister
	Customers      controllers.CustomersLister
	Orders         controllers.OrdersLister
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, d.Redis))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Post("/api/v1/tenants", controllers.OnboardTenant(d.TenantsService, logg))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AuthLogin(d.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(d.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(d.AuthService, cfg.JWT, logg))
	})

	r.Route("/api/v1/webhooks/shopify", func(r chi.Router) {
		r.Post("/products", controllers.ShopifyProductWebhook(d.SyncService, logg))
		r.Post("/customers", controllers.ShopifyCustomerWebhook(d.SyncService, logg))
		r.Post("/orders", controllers.ShopifyOrderWebhook(d.SyncService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.SessionManager, logg))
		r.Get("/ping", controllers.PrivatePing())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireTenant(logg))

			r.Route("/v1", func(r chi.Router) {
				r.Get("/products", controllers.ListProducts(d.Products, logg))
				r.Get("/customers", controllers.ListCustomers(d.Customers, logg))
				r.Get("/orders", controllers.ListOrders(d.Orders, logg))

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/summary", controllers.DashboardSummary(d.Dashboard, logg))
					r.Get("/orders-timeline", controllers.DashboardOrdersTimeline(d.Dashboard, logg))
				})

				r.Post("/shopify/sync", controllers.TriggerSync(d.SyncService, logg))
			})
		})
	})

	return r
}
