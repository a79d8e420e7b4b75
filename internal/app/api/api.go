// Package api assembles the HTTP API process: store selection, optional
// Redis and RabbitMQ, services and the router.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mavecode/mavecode-api/internal/cache"
	"github.com/mavecode/mavecode-api/internal/config"
	"github.com/mavecode/mavecode-api/internal/lib/jwt"
	"github.com/mavecode/mavecode-api/internal/lib/rabbitmq"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/migrations"
	"github.com/mavecode/mavecode-api/internal/paymentprovider"
	"github.com/mavecode/mavecode-api/internal/seed"
	"github.com/mavecode/mavecode-api/internal/services/article"
	"github.com/mavecode/mavecode-api/internal/services/auth"
	"github.com/mavecode/mavecode-api/internal/services/chat"
	"github.com/mavecode/mavecode-api/internal/services/contact"
	"github.com/mavecode/mavecode-api/internal/services/course"
	"github.com/mavecode/mavecode-api/internal/services/faq"
	"github.com/mavecode/mavecode-api/internal/services/liveclass"
	"github.com/mavecode/mavecode-api/internal/services/order"
	"github.com/mavecode/mavecode-api/internal/services/progress"
	"github.com/mavecode/mavecode-api/internal/services/site"
	"github.com/mavecode/mavecode-api/internal/storage/mongodb"
	"github.com/mavecode/mavecode-api/internal/storage/postgresql"
)

const shutdownTimeout = 15 * time.Second

// Store is everything the services need from a persistence backend.
type Store interface {
	auth.UserRepository
	course.Repository
	article.Repository
	faq.Repository
	liveclass.Repository
	order.Repository
	progress.Repository
	site.Repository
	contact.Repository
	seed.Repository

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*mongodb.Storage)(nil)
	_ Store = (*postgresql.Storage)(nil)
)

// Publisher delivers domain events and releases its connection on Close.
type Publisher interface {
	Publish(ctx context.Context, key string, msg any) error
	Close() error
}

type nopPublisher struct{ rabbitmq.NopPublisher }

func (nopPublisher) Close() error { return nil }

type App struct {
	server    *http.Server
	logger    *slog.Logger
	store     Store
	cache     *cache.Cache
	publisher Publisher
}

// New wires the application. A missing or unreachable store is not an error:
// the API then starts in maintenance mode.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.api.New"

	store, err := OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var limiterCache *cache.Cache
	if cfg.RedisConnection.Address != "" {
		limiterCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting per process", sl.Err(err))
			limiterCache = nil
		}
	}

	var publisher Publisher = nopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events are dropped", sl.Err(err))
		} else {
			publisher = p
		}
	}

	deps := newDependencies(cfg, logger, store, limiterCache, publisher, prometheus.DefaultRegisterer)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		store:     store,
		cache:     limiterCache,
		publisher: publisher,
	}, nil
}

// OpenStore connects to the configured backend and, for PostgreSQL, applies
// the migrations. It returns a nil Store when the backend is not configured or
// not reachable.
func OpenStore(ctx context.Context, cfg config.Storage, logger *slog.Logger) (Store, error) {
	const op = "app.api.OpenStore"

	if cfg.URL() == "" {
		logger.Warn("no storage URL configured, starting in maintenance mode", slog.String("driver", cfg.Driver))
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverMongo:
		db, err := mongodb.New(connectCtx, cfg.URL(), cfg.DBName)
		if err != nil {
			logger.Error("mongodb unreachable, starting in maintenance mode", sl.Err(err))
			return nil, nil
		}
		return db, nil
	case config.DriverPostgres:
		db, err := postgresql.New(connectCtx, cfg.URL())
		if err != nil {
			logger.Error("postgresql unreachable, starting in maintenance mode", sl.Err(err))
			return nil, nil
		}
		if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Driver)
	}
}

// dependencies are the handlers' collaborators.
type dependencies struct {
	maintenance bool
	store       Store
	limiter     *cache.Cache
	rateLimit   config.RateLimit
	registerer  prometheus.Registerer

	tokens   *jwt.MakerImpl
	auth     *auth.AuthService
	courses  *course.CourseService
	articles *article.ArticleService
	faqs     *faq.FAQService
	live     *liveclass.LiveClassService
	orders   *order.OrderService
	progress *progress.ProgressService
	site     *site.SiteService
	contact  *contact.ContactService
	chat     *chat.ChatService
	seeder   *seed.Seeder
}

func newDependencies(cfg *config.Config, logger *slog.Logger, store Store, limiter *cache.Cache, events Publisher, reg prometheus.Registerer) *dependencies {
	tokens := jwt.NewJWTMaker(cfg.JWTToken.SecretKey, cfg.JWTToken.TokenTTL)
	admin := auth.AdminCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password}

	return &dependencies{
		maintenance: store == nil,
		store:       store,
		limiter:     limiter,
		rateLimit:   cfg.RateLimit,
		registerer:  reg,

		tokens:   tokens,
		auth:     auth.NewAuthService(store, tokens, events, admin, logger),
		courses:  course.NewCourseService(store, logger),
		articles: article.NewArticleService(store),
		faqs:     faq.NewFAQService(store),
		live:     liveclass.NewLiveClassService(store),
		orders:   order.NewOrderService(store, paymentprovider.NewSimulated(), events, logger),
		progress: progress.NewProgressService(store),
		site:     site.NewSiteService(store),
		contact:  contact.NewContactService(store, events, logger),
		chat:     chat.NewChatService(chat.MaintenanceStub{}),
		seeder:   seed.New(store, logger),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Error("failed to close publisher", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	if a.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.store.Close(ctx); err != nil {
			a.logger.Error("failed to close store", sl.Err(err))
		}
	}
}
