package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"

	"mindhaven.app/server/core/config"
)

// Collection names for the one logical document store.
const (
	CollectionLetters  = "letters"
	CollectionJournals = "journals"
	CollectionUsers    = "users"
	CollectionSessions = "sessions"
)

// DB wraps the ArangoDB connection and the application database handle.
type DB struct {
	client arangodb.Client
	db     arangodb.Database
	cfg    config.ArangoDBConfig
}

func New(ctx context.Context, cfg config.ArangoDBConfig) (*DB, error) {
	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	d := &DB{
		client: arangodb.NewClient(conn),
		cfg:    cfg,
	}

	if err := d.ensureDatabase(ctx); err != nil {
		return nil, err
	}
	if err := d.ensureCollections(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// Database returns the application database handle for store adapters.
func (d *DB) Database() arangodb.Database {
	return d.db
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) ensureDatabase(ctx context.Context) error {
	start := time.Now()

	exists, err := d.client.DatabaseExists(ctx, d.cfg.Database)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if !exists {
		_, err = d.client.CreateDatabase(ctx, d.cfg.Database, nil)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.InfoContext(ctx, "arangodb database created",
			"database", d.cfg.Database,
			"duration_ms", time.Since(start).Milliseconds())
	}

	db, err := d.client.GetDatabase(ctx, d.cfg.Database, nil)
	if err != nil {
		return fmt.Errorf("get database: %w", err)
	}
	d.db = db

	return nil
}

func (d *DB) ensureCollections(ctx context.Context) error {
	collections := []string{
		CollectionLetters,
		CollectionJournals,
		CollectionUsers,
		CollectionSessions,
	}

	for _, name := range collections {
		exists, err := d.db.CollectionExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check collection %s exists: %w", name, err)
		}
		if exists {
			continue
		}

		colType := arangodb.CollectionTypeDocument
		_, err = d.db.CreateCollectionV2(ctx, name, &arangodb.CreateCollectionPropertiesV2{
			Type: &colType,
		})
		if err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		slog.InfoContext(ctx, "arangodb collection created", "collection", name)
	}

	return nil
}
