package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/config"
	"github.com/carson-networks/budget-web/internal/storage/session"
	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

// Storage holds the persisted session tokens of every view session.
type Storage struct {
	Sessions sqlconfig.ISessionTable
	closeFn  func() error
}

// NewStorage opens the session backend selected by env.SessionBackend.
func NewStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	switch env.SessionBackend {
	case config.SessionBackendSQLite:
		return newSQLiteStorage(env.SQLitePath, logger)
	case config.SessionBackendRedis:
		return newRedisStorage(ctx, env, logger)
	case config.SessionBackendMemory:
		logger.Info("Storage.NewStorage.memory")
		return NewMemoryStorage(), nil
	}
	return nil, fmt.Errorf("unknown session backend %q", env.SessionBackend)
}

// NewMemoryStorage returns a Storage that keeps tokens in process memory.
func NewMemoryStorage() *Storage {
	return &Storage{Sessions: session.NewMemoryTable()}
}

func newSQLiteStorage(dbPath string, logger *logrus.Logger) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := sqlconfig.RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.WithField("path", dbPath).Info("Storage.NewStorage.sqlite")
	return &Storage{
		Sessions: sqlconfig.NewSessionsTable(db),
		closeFn:  db.Close,
	}, nil
}

func newRedisStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddress,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logger.WithField("addr", env.RedisAddress).Info("Storage.NewStorage.redis")
	return &Storage{
		Sessions: session.NewRedisTable(rdb, env.SessionTTL),
		closeFn:  rdb.Close,
	}, nil
}

// SessionStore binds the session table to one view session.
func (s *Storage) SessionStore(viewID string) *SessionStore {
	return &SessionStore{table: s.Sessions, viewID: viewID}
}

func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
