package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ariffin97/portal-mpa-sub002/internals/configs"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/repository"
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

func retryOpts(ctx context.Context, log *zap.Logger, what string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn("connect attempt failed",
				zap.String("store", what),
				zap.Uint("attempt", attempt+1),
				zap.Error(err),
			)
		}),
	}
}

// OpenStore connects the configured backend. Only the initial connect is retried.
func OpenStore(ctx context.Context, cfg configs.Config, log *zap.Logger) (repository.Store, error) {
	switch cfg.StoreDriver {
	case configs.DriverPostgres:
		db, err := ConnectPostgres(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		TunePool(db, log)
		return repository.NewGormStore(db), nil
	case configs.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return repository.NewMongoStore(client, cfg.Mongo.Database), nil
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnsupportedDriver, cfg.StoreDriver)
	}
}

/* ===================== Postgres ===================== */

// PostgresDSN includes a server-side statement timeout, an application name and a UTC session
// zone, so date columns compare against instants at UTC midnight.
func PostgresDSN(c configs.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.Name,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("application_name", "portal-mpa")
	q.Set("options", "-c statement_timeout=3000")
	q.Set("timezone", "UTC")
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectPostgres(ctx context.Context, c configs.PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	log.Info("connecting to PostgreSQL", zap.String("host", c.Host), zap.String("db", c.Name))

	db, err := retry.DoWithData(func() (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  PostgresDSN(c),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling
		}), &gorm.Config{
			Logger: configs.NewGormLogger(log),
		})
	}, retryOpts(ctx, log, configs.DriverPostgres)...)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	log.Info("PostgreSQL connected")
	return db, nil
}

func TunePool(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("pool tune failed", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

/* ===================== MongoDB ===================== */

func ConnectMongo(ctx context.Context, c configs.MongoConfig, log *zap.Logger) (*mongo.Client, error) {
	log.Info("connecting to MongoDB", zap.String("db", c.Database))

	opts := options.Client().
		ApplyURI(c.URI).
		SetAppName("portal-mpa").
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	err = retry.Do(func() error {
		return client.Ping(ctx, readpref.Primary())
	}, retryOpts(ctx, log, configs.DriverMongo)...)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info("MongoDB connected")
	return client, nil
}

/* ===================== Warm-up ===================== */

// WarmUp pings the store once in the background so the pool is filled before traffic arrives.
func WarmUp(ctx context.Context, store repository.Store, log *zap.Logger) {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(500 * time.Millisecond):
		}
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := store.Ping(pctx); err != nil {
			log.Warn("warm-up ping failed", zap.Error(err))
		}
	}()
}
