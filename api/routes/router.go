package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/cartworks-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/cartworks-backend/api/controllers/cart"
	"github.com/angelmondragon/cartworks-backend/api/middleware"
	cartsvc "github.com/angelmondragon/cartworks-backend/internal/cart"
	"github.com/angelmondragon/cartworks-backend/pkg/config"
	"github.com/angelmondragon/cartworks-backend/pkg/logger"
	"github.com/angelmondragon/cartworks-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	cartService cartsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.CartFetch(cartService, logg))
		r.Post("/", cartcontrollers.CartAddItem(cartService, logg))
		r.Delete("/", cartcontrollers.CartClear(cartService, logg))
		r.Post("/checkout", cartcontrollers.CartCheckout(cartService, logg))
		r.Put("/{productId}", cartcontrollers.CartUpdateItem(cartService, logg))
		r.Delete("/{productId}", cartcontrollers.CartRemoveItem(cartService, logg))
	})

	return r
}
