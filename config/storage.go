package config

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/studysync-api/logger"
	"github.com/andrewpaige1/studysync-api/storage"
)

// OpenStorage builds the backend selected by cfg.StorageDriver. The returned
// closer releases connections and is never nil.
func OpenStorage(ctx context.Context, cfg Config, log *logger.Logger) (storage.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case DriverMemory:
		log.Warn("using in-memory storage; data will not survive a restart")
		return storage.NewMemory(), noop, nil

	case DriverFile:
		st, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using file storage", "dir", cfg.DataDir)
		return st, noop, nil

	case DriverSQL:
		db, err := OpenDatabase(cfg.DBURL)
		if err != nil {
			return nil, noop, err
		}
		st, err := storage.NewSQL(db)
		if err != nil {
			return nil, noop, err
		}
		closer := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		dialect := "sqlite"
		if IsPostgresDSN(cfg.DBURL) {
			dialect = "postgres"
		}
		log.Info("using sql storage", "dialect", dialect)
		return st, closer, nil

	case DriverRedis:
		st, err := storage.NewRedis(ctx, storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info("using redis storage", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return st, st.Close, nil
	}

	return nil, noop, fmt.Errorf("%w: unknown storage driver %q", ErrConfigInvalid, cfg.StorageDriver)
}
