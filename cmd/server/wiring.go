package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deidexdd-hash/mysticbot/internal/catalog"
	"github.com/deidexdd-hash/mysticbot/internal/matrix/events"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/platform/config"
	"github.com/deidexdd-hash/mysticbot/internal/platform/kafka"
	"github.com/deidexdd-hash/mysticbot/internal/platform/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/platform/postgres"
	"github.com/deidexdd-hash/mysticbot/internal/platform/redis"
	"github.com/deidexdd-hash/mysticbot/internal/profile/store"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/circuit"
)

const (
	eventBufferSize = 256
	topicPartitions = 3
)

func buildEngine(cfg config.EngineConfig) (*numerology.Engine, error) {
	reduction, err := numerology.ParseReductionPolicy(cfg.ReductionPolicy)
	if err != nil {
		return nil, fmt.Errorf("REDUCTION_POLICY: %w", err)
	}
	overflow, err := numerology.ParseOverflowPolicy(cfg.OverflowPolicy)
	if err != nil {
		return nil, fmt.Errorf("OVERFLOW_POLICY: %w", err)
	}
	gender, err := numerology.ParseGender(cfg.DefaultGender)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_GENDER: %w", err)
	}
	return numerology.New(
		numerology.WithReduction(reduction),
		numerology.WithOverflow(overflow),
		numerology.WithDefaultGender(gender),
	), nil
}

func loadTables(dir string) (numerology.Tables, error) {
	if dir == "" {
		return catalog.Default()
	}
	return catalog.LoadDir(dir)
}

// infra holds the backends selected by configuration.
type infra struct {
	profiles store.Store
	worker   *events.Worker
	checks   map[string]healthCheck
	closers  []func() error
}

func (i *infra) Close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		_ = i.closers[n]()
	}
}

func buildInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{checks: map[string]healthCheck{}}
	storeMetrics := metrics.New()

	profiles, err := buildStore(ctx, cfg, in)
	if err != nil {
		in.Close()
		return nil, err
	}
	in.profiles = store.NewInstrumented(profiles, cfg.ProfileStore, storeMetrics)

	sink, err := buildSink(ctx, cfg.Kafka, log, in)
	if err != nil {
		in.Close()
		return nil, err
	}
	in.worker = events.NewWorker(sink, eventBufferSize, log)
	return in, nil
}

func buildStore(ctx context.Context, cfg config.Server, in *infra) (store.Store, error) {
	switch cfg.ProfileStore {
	case config.StoreMemory:
		return store.NewInMemory(), nil

	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, fmt.Errorf("REDIS_URL is required for the redis profile store")
		}
		in.closers = append(in.closers, client.Close)
		in.checks["redis"] = client.Health
		return store.NewRedis(client.Client), nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, db.Close)
		in.checks["postgres"] = db.PingContext
		pg := store.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}
		return pg, nil

	default:
		return nil, fmt.Errorf("unknown PROFILE_STORE %q", cfg.ProfileStore)
	}
}

func buildSink(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger, in *infra) (events.Sink, error) {
	if len(cfg.Brokers) == 0 {
		return events.NewLogSink(log), nil
	}
	client, err := kafka.New(cfg)
	if err != nil {
		return nil, err
	}
	in.closers = append(in.closers, func() error {
		client.Close()
		return nil
	})
	in.checks["kafka"] = client.Ping
	if err := kafka.EnsureTopic(ctx, client, cfg.Topic, topicPartitions); err != nil {
		return nil, err
	}
	return events.NewFallbackSink(
		events.NewKafkaSink(client, cfg.Topic),
		events.NewLogSink(log),
		circuit.New("kafka"),
		log,
	), nil
}
