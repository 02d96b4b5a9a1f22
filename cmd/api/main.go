package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Lelo88/productos-api-golang/internal/config"
	"github.com/Lelo88/productos-api-golang/internal/db"
	"github.com/Lelo88/productos-api-golang/internal/docs"
	"github.com/Lelo88/productos-api-golang/internal/health"
	"github.com/Lelo88/productos-api-golang/internal/httpx"
	"github.com/Lelo88/productos-api-golang/internal/logx"
	"github.com/Lelo88/productos-api-golang/internal/metrics"
	"github.com/Lelo88/productos-api-golang/internal/products"
	"github.com/Lelo88/productos-api-golang/internal/web"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// appPool es lo que la app usa del pool: ping para /ready y queries para productos.
type appPool interface {
	Ping(ctx context.Context) error
	Close()
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type appDeps struct {
	loadConfig     func() (config.Config, error)
	newPool        func(ctx context.Context, options db.Options) (appPool, error)
	listenAndServe func(ctx context.Context, addr string, handler http.Handler) error
	logf           func(format string, args ...any)
}

var (
	loadConfigFn     = loadConfig
	newPoolFn        = newPool
	listenAndServeFn = listenAndServe
	logfFn           = func(format string, args ...any) { logx.Info().Msgf(format, args...) }
	fatalf           = func(args ...any) { logx.Fatal().Msg(fmt.Sprint(args...)) }
)

func main() {
	// Contexto raíz del proceso, cancelado con SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := appDeps{
		loadConfig:     loadConfigFn,
		newPool:        newPoolFn,
		listenAndServe: listenAndServeFn,
		logf:           logfFn,
	}

	if err := run(ctx, deps); err != nil {
		fatalf(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}
	logx.Init(cfg.Environment)

	pool, err := deps.newPool(ctx, db.Options{
		DatabaseURL:   cfg.DatabaseURL,
		MaxConns:      cfg.DatabaseMaxConns,
		TLSSkipVerify: cfg.DatabaseTLSSkipVerify,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	addr := ":" + cfg.Port
	deps.logf("listening on %s", addr)
	return deps.listenAndServe(ctx, addr, buildRouter(cfg, pool))
}

func buildRouter(cfg config.Config, pool appPool) http.Handler {
	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(httpx.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpx.RequestLogger)
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// Antes de montar subrouters, para que hereden estos handlers.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusNotFound, "Recurso no encontrado")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusMethodNotAllowed, "Método no permitido")
	})

	healthHandler := health.New(pool)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	docs.RegisterRoutes(router)

	repository := products.NewRepository(pool)
	service := products.NewService(repository)
	products.RegisterRoutes(router, products.NewHandler(service, products.WithErrorDetails(cfg.ExposeErrorDetails)))

	// La página raíz va última: nunca tapa rutas de la API.
	web.RegisterRoutes(router)

	return router
}

func loadConfig() (config.Config, error) {
	loaded, err := config.LoadDotenv()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if !loaded {
		logx.Warn().Msg(".env not found, using process environment")
	}
	return cfg, nil
}

func newPool(ctx context.Context, options db.Options) (appPool, error) {
	pool, err := db.NewPool(ctx, options)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// listenAndServe atiende hasta que ctx se cancela y luego hace shutdown ordenado.
func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logx.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
