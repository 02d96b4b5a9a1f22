package db

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options describe cómo abrir el pool.
type Options struct {
	DatabaseURL   string
	MaxConns      int32
	TLSSkipVerify bool
}

type poolPinger interface {
	Ping(ctx context.Context) error
	Close()
}

var (
	parseConfig = pgxpool.ParseConfig
	newPool     = pgxpool.NewWithConfig
	pingPool    = func(ctx context.Context, pool poolPinger) error {
		return pool.Ping(ctx)
	}
	closePool = func(pool poolPinger) {
		pool.Close()
	}
)

// NewPool crea un pool de conexiones a PostgreSQL.
// Se usa un timeout corto para evitar que el arranque quede colgado si la DB no responde.
func NewPool(ctx context.Context, options Options) (*pgxpool.Pool, error) {
	poolConfig, err := BuildConfig(options)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := newPool(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	// Validación temprana: asegura que la app no arranca "a medias".
	if err := pingPool(ctx, pool); err != nil {
		closePool(pool)
		return nil, err
	}

	return pool, nil
}

// BuildConfig parsea la URL y aplica las opciones del pool.
func BuildConfig(options Options) (*pgxpool.Config, error) {
	poolConfig, err := parseConfig(options.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if options.MaxConns > 0 {
		poolConfig.MaxConns = options.MaxConns
	}

	if options.TLSSkipVerify {
		skipTLSVerify(poolConfig.ConnConfig.TLSConfig)
		for _, fallback := range poolConfig.ConnConfig.Fallbacks {
			skipTLSVerify(fallback.TLSConfig)
		}
	}

	return poolConfig, nil
}

// skipTLSVerify no habilita TLS si la URL no lo pide (sslmode=disable queda igual).
func skipTLSVerify(tlsConfig *tls.Config) {
	if tlsConfig == nil {
		return
	}
	tlsConfig.InsecureSkipVerify = true
	tlsConfig.VerifyPeerCertificate = nil
	tlsConfig.VerifyConnection = nil
}
