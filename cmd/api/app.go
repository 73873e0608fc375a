package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habits/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habits/internal/config"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type app struct {
	router  *gin.Engine
	tracker *services.TrackerService
	closers []io.Closer
}

func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type backend struct {
	store  domain.KeyValueStore
	health adapterHTTP.HealthCheck
	redis  *redis.Client
	closer io.Closer
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*backend, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return &backend{store: repository.NewInMemoryStore()}, nil

	case config.StoreRedis:
		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr()))
		return &backend{
			store:  repository.NewRedisStore(rdb, cfg.RedisKey),
			health: redisHealth(rdb),
			redis:  rdb,
			closer: rdb,
		}, nil

	case config.StorePostgres, config.StoreSQLite:
		driver, dsn := cfg.DBDriver, cfg.PostgresDSN()
		if cfg.StoreDriver == config.StoreSQLite {
			driver, dsn = repository.DriverSQLite, cfg.SQLitePath
		}

		db, err := repository.OpenSQL(driver, dsn)
		if err != nil {
			return nil, err
		}
		store := repository.NewSQLStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database connected", zap.String("driver", driver))
		return &backend{
			store:  store,
			health: db.PingContext,
			closer: db,
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func redisHealth(rdb *redis.Client) adapterHTTP.HealthCheck {
	return func(ctx context.Context) error {
		if !cache.Healthy(ctx, rdb) {
			return fmt.Errorf("redis %s: %w", rdb.Options().Addr, domain.ErrStoreUnavailable)
		}
		return nil
	}
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger, sched scheduler.Scheduler) (*app, error) {
	be, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := &app{}
	if be.closer != nil {
		a.closers = append(a.closers, be.closer)
	}

	limiter := be.redis
	if limiter == nil && cfg.RateLimit > 0 && cfg.StoreDriver != config.StoreMemory {
		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("rate limiting disabled, redis unreachable", zap.Error(err))
		} else {
			limiter = rdb
			a.closers = append(a.closers, rdb)
		}
	}

	social := services.NewSocialService(domain.NewLocalUser(), log)
	tracker := services.NewTrackerService(
		repository.NewSnapshotRepository(be.store),
		sched,
		log,
		services.WithConfig(cfg.Tracker),
		services.WithCompletionListener(social),
		services.WithSharer(services.NewLogSharer(log)),
	)

	if _, err := tracker.Load(ctx); err != nil {
		log.Warn("snapshot unreadable, writes refused until the store recovers", zap.Error(err))
	}

	templates, err := services.NewDefaultTemplateService()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load templates: %w", err)
	}

	a.tracker = tracker
	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:  adapterHTTP.NewHabitHandler(tracker, templates),
		StatsHandler:  adapterHTTP.NewStatsHandler(services.NewStatsService(tracker, sched.Now)),
		SocialHandler: adapterHTTP.NewSocialHandler(social),
		Redis:         limiter,
		RateLimit:     cfg.RateLimit,
		RateWindow:    cfg.RateWindow,
		StoreHealth:   be.health,
		Logger:        log,
		StartTime:     time.Now(),
	})

	return a, nil
}
