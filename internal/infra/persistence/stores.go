// Package persistence selects the profile, contact and connectivity backends
// named in the stores configuration.
package persistence

import (
	"context"
	"log/slog"

	"yelocar/config"
	"yelocar/internal/domain/constants"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
	"yelocar/internal/infra/firebase"
	"yelocar/internal/infra/persistence/firestoredb"
	"yelocar/internal/infra/persistence/postgres"
	"yelocar/internal/infra/persistence/rediskv"
	"yelocar/internal/infra/persistence/rtdb"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/db"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Clients holds the store clients. Unconfigured clients are nil.
type Clients struct {
	Realtime  *db.Client
	Firestore *firestore.Client
	Redis     *redis.Client
	Postgres  *gorm.DB
}

// ClientParams defines the dependencies for NewClients
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	App      *firebase.App
	Redis    *redis.Client
	Postgres *gorm.DB
}

// NewClients opens the Firebase clients the store selection needs.
func NewClients(params ClientParams) (*Clients, error) {
	stores := params.Config.Stores
	clients := &Clients{Redis: params.Redis, Postgres: params.Postgres}

	if stores.KeyValue == constants.KeyValueStoreFirebase {
		client, err := params.App.Database()
		if err != nil {
			return nil, err
		}
		clients.Realtime = client
	}

	if stores.Document == constants.DocumentStoreFirestore {
		client, err := params.App.Firestore()
		if err != nil {
			return nil, err
		}
		clients.Firestore = client
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
	}

	params.Logger.Info("Profile stores selected",
		slog.String("key_value", stores.KeyValue),
		slog.String("document", stores.Document),
		slog.String("authoritative", string(constants.AuthoritativeProfileStore)),
	)

	return clients, nil
}

// NewProfileCache returns the key-value profile store.
func NewProfileCache(cfg *config.Config, clients *Clients) (repository.ProfileCache, error) {
	switch cfg.Stores.KeyValue {
	case constants.KeyValueStoreFirebase:
		return rtdb.NewProfileCache(clients.Realtime), nil
	case constants.KeyValueStoreRedis:
		if clients.Redis == nil {
			return nil, errors.New("redis key-value store selected but redis is not configured")
		}

		return rediskv.NewProfileCache(clients.Redis, rediskv.KeyPrefix(cfg)), nil
	default:
		return nil, errors.Errorf("unknown key-value store: %q", cfg.Stores.KeyValue)
	}
}

// NewConnectivityProbe probes whichever key-value store is selected.
func NewConnectivityProbe(cfg *config.Config, clients *Clients) (service.ConnectivityProbe, error) {
	switch cfg.Stores.KeyValue {
	case constants.KeyValueStoreFirebase:
		return rtdb.NewConnectivityProbe(clients.Realtime), nil
	case constants.KeyValueStoreRedis:
		if clients.Redis == nil {
			return nil, errors.New("redis key-value store selected but redis is not configured")
		}

		return rediskv.NewConnectivityProbe(clients.Redis), nil
	default:
		return nil, errors.Errorf("unknown key-value store: %q", cfg.Stores.KeyValue)
	}
}

// NewProfileStore returns the document profile store.
func NewProfileStore(cfg *config.Config, clients *Clients) (repository.ProfileStore, error) {
	switch cfg.Stores.Document {
	case constants.DocumentStoreFirestore:
		return firestoredb.NewProfileStore(clients.Firestore), nil
	case constants.DocumentStorePostgres:
		if clients.Postgres == nil {
			return nil, errors.New("postgres document store selected but postgres is not configured")
		}

		return postgres.NewProfileStore(clients.Postgres), nil
	default:
		return nil, errors.Errorf("unknown document store: %q", cfg.Stores.Document)
	}
}

// NewContactRepository keeps contact messages next to the profiles.
func NewContactRepository(cfg *config.Config, clients *Clients) (repository.ContactRepository, error) {
	switch cfg.Stores.Document {
	case constants.DocumentStoreFirestore:
		return firestoredb.NewContactRepository(clients.Firestore), nil
	case constants.DocumentStorePostgres:
		if clients.Postgres == nil {
			return nil, errors.New("postgres document store selected but postgres is not configured")
		}

		return postgres.NewContactRepository(clients.Postgres), nil
	default:
		return nil, errors.Errorf("unknown document store: %q", cfg.Stores.Document)
	}
}

// NewRateLimiter returns the Redis token bucket, or nil when rate limiting
// is disabled or Redis is absent.
func NewRateLimiter(cfg *config.Config, clients *Clients, logger *slog.Logger) service.RateLimiter {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	if clients.Redis == nil {
		logger.Warn("Rate limiting enabled but redis is not configured, contact form is unmetered")

		return nil
	}

	return rediskv.NewTokenBucket(clients.Redis, *cfg.RateLimit, rediskv.KeyPrefix(cfg))
}

// Module provides the store clients and repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		firebase.NewApp,
		rediskv.NewClient,
		postgres.New,
		NewClients,
		NewProfileCache,
		NewConnectivityProbe,
		NewProfileStore,
		NewContactRepository,
		NewRateLimiter,
	),
)
