package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/venoajie/trading-web-project/src/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Schema holds every application table. Tables are addressed by qualified
// name so connections work through pgbouncer without a search_path.
const Schema = "app_data"

// DB bundles the gorm handle with the pool underneath it so both can be
// released together on shutdown.
type DB struct {
	Gorm *gorm.DB
	SQL  *sql.DB
	Pool *pgxpool.Pool
}

func SetupDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.Databases.SQL.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Databases.SQL.MaxConns
	}
	if cfg.Databases.SQL.MinConns > 0 {
		poolConfig.MinConns = cfg.Databases.SQL.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := OpenGorm(postgres.New(postgres.Config{Conn: sqlDB}), Schema)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, err
	}

	return &DB{Gorm: gormDB, SQL: sqlDB, Pool: pool}, nil
}

// OpenGorm opens gorm over dialector with the settings the repositories rely
// on: driver errors translated to gorm sentinels, no default transaction per
// write since callers open their own. A non-empty dbSchema qualifies every
// table name with it.
func OpenGorm(dialector gorm.Dialector, dbSchema string) (*gorm.DB, error) {
	naming := schema.NamingStrategy{}
	if dbSchema != "" {
		naming.TablePrefix = dbSchema + "."
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NamingStrategy:         naming,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

func (db *DB) Close() {
	if db == nil {
		return
	}
	if db.SQL != nil {
		_ = db.SQL.Close()
	}
	if db.Pool != nil {
		db.Pool.Close()
	}
}
