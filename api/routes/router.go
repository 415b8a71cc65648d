package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cribnosh/nosh-backend/api/controllers"
	"github.com/cribnosh/nosh-backend/api/middleware"
	"github.com/cribnosh/nosh-backend/internal/connections"
	"github.com/cribnosh/nosh-backend/internal/grouporders"
	"github.com/cribnosh/nosh-backend/pkg/config"
	"github.com/cribnosh/nosh-backend/pkg/db"
	"github.com/cribnosh/nosh-backend/pkg/logger"
	"github.com/cribnosh/nosh-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	groupOrdersService grouporders.Service,
	connectionsService connections.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Share links are viewable without an account so invitees can see the
	// order before deciding to sign in and join.
	r.Route("/api/public", func(r chi.Router) {
		r.With(middleware.PublicRateLimit(
			"share_view",
			cfg.GroupOrders.ShareViewRateLimit,
			cfg.GroupOrders.ShareViewRateWindow,
			redisClient,
			logg,
		)).Get("/group-orders/{token}", controllers.GroupOrderShareView(groupOrdersService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/group-orders", func(r chi.Router) {
			r.Post("/", controllers.GroupOrderCreate(groupOrdersService, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GroupOrderDetail(groupOrdersService, logg))
				r.Post("/join", controllers.GroupOrderJoin(groupOrdersService, logg))
				r.Post("/close", controllers.GroupOrderClose(groupOrdersService, logg))
				r.Post("/budget", controllers.GroupOrderBudgetChipIn(groupOrdersService, logg))
				r.Post("/selection/start", controllers.GroupOrderSelectionStart(groupOrdersService, logg))
				r.Put("/selections", controllers.GroupOrderSelectionsUpdate(groupOrdersService, logg))
				r.Post("/selections/ready", controllers.GroupOrderSelectionsReady(groupOrdersService, logg))
			})
		})

		r.Get("/connections", controllers.ConnectionsList(connectionsService, logg))
	})

	return r
}
