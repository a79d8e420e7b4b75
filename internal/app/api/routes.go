package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mavecode/mavecode-api/docs"
	articlecreate "github.com/mavecode/mavecode-api/internal/http/handlers/article/create"
	articlelist "github.com/mavecode/mavecode-api/internal/http/handlers/article/list"
	articleread "github.com/mavecode/mavecode-api/internal/http/handlers/article/read"
	articleremove "github.com/mavecode/mavecode-api/internal/http/handlers/article/remove"
	articleupdate "github.com/mavecode/mavecode-api/internal/http/handlers/article/update"
	"github.com/mavecode/mavecode-api/internal/http/handlers/auth/admin"
	"github.com/mavecode/mavecode-api/internal/http/handlers/auth/google"
	"github.com/mavecode/mavecode-api/internal/http/handlers/auth/login"
	"github.com/mavecode/mavecode-api/internal/http/handlers/auth/me"
	"github.com/mavecode/mavecode-api/internal/http/handlers/auth/register"
	chatsend "github.com/mavecode/mavecode-api/internal/http/handlers/chat/send"
	contactcreate "github.com/mavecode/mavecode-api/internal/http/handlers/contact/create"
	contactlist "github.com/mavecode/mavecode-api/internal/http/handlers/contact/list"
	coursecreate "github.com/mavecode/mavecode-api/internal/http/handlers/course/create"
	courselist "github.com/mavecode/mavecode-api/internal/http/handlers/course/list"
	courseread "github.com/mavecode/mavecode-api/internal/http/handlers/course/read"
	courseremove "github.com/mavecode/mavecode-api/internal/http/handlers/course/remove"
	courseupdate "github.com/mavecode/mavecode-api/internal/http/handlers/course/update"
	"github.com/mavecode/mavecode-api/internal/http/handlers/course/videos"
	faqcreate "github.com/mavecode/mavecode-api/internal/http/handlers/faq/create"
	faqlist "github.com/mavecode/mavecode-api/internal/http/handlers/faq/list"
	faqremove "github.com/mavecode/mavecode-api/internal/http/handlers/faq/remove"
	faqupdate "github.com/mavecode/mavecode-api/internal/http/handlers/faq/update"
	"github.com/mavecode/mavecode-api/internal/http/handlers/health"
	livecreate "github.com/mavecode/mavecode-api/internal/http/handlers/liveclass/create"
	"github.com/mavecode/mavecode-api/internal/http/handlers/liveclass/join"
	livelist "github.com/mavecode/mavecode-api/internal/http/handlers/liveclass/list"
	liveremove "github.com/mavecode/mavecode-api/internal/http/handlers/liveclass/remove"
	liveupdate "github.com/mavecode/mavecode-api/internal/http/handlers/liveclass/update"
	ordercreate "github.com/mavecode/mavecode-api/internal/http/handlers/order/create"
	orderlist "github.com/mavecode/mavecode-api/internal/http/handlers/order/list"
	"github.com/mavecode/mavecode-api/internal/http/handlers/order/pay"
	progresslist "github.com/mavecode/mavecode-api/internal/http/handlers/progress/list"
	"github.com/mavecode/mavecode-api/internal/http/handlers/progress/save"
	"github.com/mavecode/mavecode-api/internal/http/handlers/seed/run"
	"github.com/mavecode/mavecode-api/internal/http/handlers/site/hero"
	"github.com/mavecode/mavecode-api/internal/http/handlers/site/static"
	"github.com/mavecode/mavecode-api/internal/http/handlers/site/stats"
	"github.com/mavecode/mavecode-api/internal/http/handlers/site/updatehero"
	videocreate "github.com/mavecode/mavecode-api/internal/http/handlers/video/create"
	videoread "github.com/mavecode/mavecode-api/internal/http/handlers/video/read"
	videoremove "github.com/mavecode/mavecode-api/internal/http/handlers/video/remove"
	videoupdate "github.com/mavecode/mavecode-api/internal/http/handlers/video/update"
	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
)

// RegisterRoutes mounts every route on r.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d *dependencies) {
	metrics := middlewarectx.NewMetrics(d.registerer)

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.CORS,
		metrics.Handler,
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, r, http.StatusNotFound, "Not Found")
	})

	// A nil *cache.Cache must not reach the middleware as a non-nil Limiter.
	var limiter middlewarectx.Limiter
	if d.limiter != nil {
		limiter = d.limiter
	}
	rateLimit := middlewarectx.RateLimit(logger, limiter, d.rateLimit.Requests, d.rateLimit.Window)
	authenticate := middlewarectx.Authenticate(logger, d.tokens, d.auth)

	r.Route("/api", func(r chi.Router) {
		// Static content answers even without a store.
		r.Get("/", static.Root)
		r.Get("/categories", static.Categories)
		r.Get("/subscriptions", static.Plans)
		r.Post("/chat", chatsend.New(logger, d.chat).ServeHTTP)
		r.With(rateLimit).Post("/auth/admin", admin.New(logger, d.auth).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Maintenance(d.maintenance))

			r.Group(func(r chi.Router) {
				r.Use(rateLimit)
				r.Post("/auth/register", register.New(logger, d.auth).ServeHTTP)
				r.Post("/auth/login", login.New(logger, d.auth).ServeHTTP)
				r.Post("/auth/google", google.New(logger, d.auth).ServeHTTP)
			})

			r.Get("/courses", courselist.New(logger, d.courses).ServeHTTP)
			r.Get("/courses/{id}", courseread.New(logger, d.courses).ServeHTTP)
			r.Get("/courses/{id}/videos", videos.New(logger, d.courses).ServeHTTP)
			r.Get("/videos/{id}", videoread.New(logger, d.courses).ServeHTTP)
			r.Get("/articles", articlelist.New(logger, d.articles).ServeHTTP)
			r.Get("/articles/{slug}", articleread.New(logger, d.articles).ServeHTTP)
			r.Get("/live-classes", livelist.New(logger, d.live).ServeHTTP)
			r.Get("/faqs", faqlist.New(logger, d.faqs).ServeHTTP)
			r.Get("/hero", hero.New(logger, d.site).ServeHTTP)
			r.Get("/stats", stats.New(logger, d.site).ServeHTTP)
			r.Post("/contact", contactcreate.New(logger, d.contact).ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/auth/me", me.New(logger).ServeHTTP)
				r.Post("/orders", ordercreate.New(logger, d.orders).ServeHTTP)
				r.Get("/orders", orderlist.New(logger, d.orders).ServeHTTP)
				r.Post("/orders/{id}/pay", pay.New(logger, d.orders).ServeHTTP)
				r.Post("/progress", save.New(logger, d.progress).ServeHTTP)
				r.Get("/progress/{course_id}", progresslist.New(logger, d.progress).ServeHTTP)
				r.Post("/live-classes/{id}/join", join.New(logger, d.live).ServeHTTP)

				r.Group(func(r chi.Router) {
					r.Use(middlewarectx.RequireAdmin)

					r.Post("/courses", coursecreate.New(logger, d.courses).ServeHTTP)
					r.Put("/courses/{id}", courseupdate.New(logger, d.courses).ServeHTTP)
					r.Delete("/courses/{id}", courseremove.New(logger, d.courses).ServeHTTP)

					r.Post("/videos", videocreate.New(logger, d.courses).ServeHTTP)
					r.Put("/videos/{id}", videoupdate.New(logger, d.courses).ServeHTTP)
					r.Delete("/videos/{id}", videoremove.New(logger, d.courses).ServeHTTP)

					r.Post("/articles", articlecreate.New(logger, d.articles).ServeHTTP)
					r.Put("/articles/{id}", articleupdate.New(logger, d.articles).ServeHTTP)
					r.Delete("/articles/{id}", articleremove.New(logger, d.articles).ServeHTTP)

					r.Post("/live-classes", livecreate.New(logger, d.live).ServeHTTP)
					r.Put("/live-classes/{id}", liveupdate.New(logger, d.live).ServeHTTP)
					r.Delete("/live-classes/{id}", liveremove.New(logger, d.live).ServeHTTP)

					r.Post("/faqs", faqcreate.New(logger, d.faqs).ServeHTTP)
					r.Put("/faqs/{id}", faqupdate.New(logger, d.faqs).ServeHTTP)
					r.Delete("/faqs/{id}", faqremove.New(logger, d.faqs).ServeHTTP)

					r.Put("/hero", updatehero.New(logger, d.site).ServeHTTP)
					r.Get("/contact/messages", contactlist.New(logger, d.contact).ServeHTTP)
					r.Post("/seed", run.New(logger, d.seeder).ServeHTTP)
				})
			})
		})
	})

	r.Get("/health", health.New(logger, d.pinger()).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer(d.registerer), promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// pinger returns the store as a health.Pinger, or nil in maintenance mode.
func (d *dependencies) pinger() health.Pinger {
	if d.store == nil {
		return nil
	}
	return d.store
}

func gatherer(reg prometheus.Registerer) prometheus.Gatherer {
	if g, ok := reg.(prometheus.Gatherer); ok {
		return g
	}
	return prometheus.DefaultGatherer
}
