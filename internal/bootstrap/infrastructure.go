package bootstrap

import (
	"context"
	"fmt"
	"time"

	"chatlog-be/internal/config"
	"chatlog-be/internal/pkg/logger"
	"chatlog-be/internal/repository/contract"
	"chatlog-be/internal/repository/implementation"
	"chatlog-be/internal/repository/memory"
	"chatlog-be/internal/repository/unitofwork"
	"chatlog-be/pkg/database"
	pktNats "chatlog-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const sessionJanitorInterval = time.Hour

// Infrastructure holds every connection the services are built on.
type Infrastructure struct {
	DB           *gorm.DB
	Factory      unitofwork.RepositoryFactory
	SessionStore contract.SessionStore
	PubSub       *gochannel.GoChannel
	Nats         *pktNats.Publisher
	Redis        *redis.Client

	Logger      logger.ILogger
	AuditLogger logger.ILogger
}

// NewInfrastructure connects the stores selected by cfg. Optional
// dependencies (NATS) only log a warning when unavailable.
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{
		Logger:      logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()),
		AuditLogger: logger.NewIsolatedLogger(cfg.App.AuditLogFilePath),
		PubSub:      newPubSub(),
	}

	// 1. Relational store
	switch cfg.Database.Driver {
	case config.StoreDriverMemory:
		infra.Factory = memory.NewRepositoryFactory(memory.NewStore())
		infra.Logger.Warn("Bootstrap", "Using in-memory store, data is lost on restart", nil)
	default:
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Verbose)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		infra.DB = db
		infra.Factory = unitofwork.NewRepositoryFactory(db)
	}

	// 2. Session store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			infra.Logger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.Session.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		infra.Redis = rdb
		infra.SessionStore = implementation.NewRedisSessionRepository(rdb)
	case config.SessionStorePostgres:
		if infra.DB == nil {
			return nil, fmt.Errorf("SESSION_STORE=postgres requires STORE_DRIVER=postgres")
		}
		infra.SessionStore = implementation.NewSessionRepository(infra.DB)
	default:
		infra.SessionStore = memory.NewSessionRepository()
	}

	// 3. External event bus
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			infra.Logger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			infra.Nats = natsPub
		}
	}

	return infra, nil
}

// NewMemoryInfrastructure wires process-local stores only. Used by tests
// and STORE_DRIVER=memory tooling.
func NewMemoryInfrastructure(log logger.ILogger, sessionStore contract.SessionStore) *Infrastructure {
	if sessionStore == nil {
		sessionStore = memory.NewSessionRepository()
	}
	return &Infrastructure{
		Factory:      memory.NewRepositoryFactory(memory.NewStore()),
		SessionStore: sessionStore,
		PubSub:       newPubSub(),
		Logger:       log,
		AuditLogger:  log,
	}
}

func newPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
}

// StartSessionJanitor purges expired rows from the postgres session store
// until ctx is done. Other stores expire entries on their own.
func (i *Infrastructure) StartSessionJanitor(ctx context.Context) {
	store, ok := i.SessionStore.(*implementation.SessionRepositoryImpl)
	if !ok {
		return
	}

	go func() {
		ticker := time.NewTicker(sessionJanitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				n, err := store.DeleteExpired(ctx, now)
				if err != nil {
					i.Logger.Warn("Session", "Failed to purge expired sessions", map[string]interface{}{"error": err.Error()})
					continue
				}
				if n > 0 {
					i.Logger.Info("Session", "Purged expired sessions", map[string]interface{}{"count": n})
				}
			}
		}
	}()
}

func (i *Infrastructure) Close() {
	if i.PubSub != nil {
		_ = i.PubSub.Close()
	}
	if i.Nats != nil {
		i.Nats.Close()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		if sqlDB, err := i.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if i.Logger != nil {
		_ = i.Logger.Sync()
	}
	if i.AuditLogger != nil && i.AuditLogger != i.Logger {
		_ = i.AuditLogger.Sync()
	}
}
