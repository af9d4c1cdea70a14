// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/college-site/cliparse"
	"github.com/danielhkuo/college-site/counter"
)

// Backend bundles the record store and the counter store opened from config.
type Backend struct {
	Records  RecordStore
	Counters counter.Store
}

// Close closes the counter store, then the record store.
func (b *Backend) Close() error {
	var errs []error
	if b.Counters != nil {
		errs = append(errs, b.Counters.Close())
	}
	if b.Records != nil {
		errs = append(errs, b.Records.Close())
	}
	return errors.Join(errs...)
}

// Open connects to cfg.DatabaseType, prepares schema or indexes, and builds
// the counter store. Counters share the record connection unless
// cfg.CounterBackend is "redis".
func Open(ctx context.Context, cfg cliparse.Config) (*Backend, error) {
	b := &Backend{}

	switch cfg.DatabaseType {
	case TypePostgres, TypeSQLite:
		conn, err := OpenSQL(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.Records = NewSQLStore(conn)
		b.Counters = counter.NewSQL(conn)

	case TypeMongo:
		store, err := OpenMongo(ctx, cfg.DatabaseURL, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		b.Records = store
		counters := counter.NewMongo(store.Database().Collection(CollectionVisitCounters))
		if err := counters.EnsureIndexes(ctx); err != nil {
			store.Close()
			return nil, err
		}
		b.Counters = counters

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CounterBackend == cliparse.CounterBackendRedis {
		client, err := counter.DialRedis(cfg.RedisURL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.Counters = counter.NewRedis(client, counter.DefaultRedisPrefix)
		slog.Info("counter store ready", "backend", "redis")
	}

	return b, nil
}

// OpenSQL opens a Postgres or SQLite database and creates the schema.
func OpenSQL(ctx context.Context, dbType, dsn string) (*sql.DB, error) {
	driver := "postgres"
	if dbType == TypeSQLite {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if dbType == TypeSQLite {
		// A single connection serializes writers; pragmas are per connection.
		conn.SetMaxOpenConns(1)
		if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("sqlite pragma failed: %w", err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "type", dbType)

	return conn, nil
}

// OpenMongo connects, pings, and creates indexes.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	store := NewMongoStore(client, database)
	if err := store.EnsureIndexes(ctx); err != nil {
		store.Close()
		return nil, err
	}
	slog.Info("Successfully connected to MongoDB", "database", database)

	return store, nil
}
