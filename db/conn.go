// Package db owns the process-wide database handle
package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"second-brain/api/internal/model"
	"second-brain/api/pkg/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnavailable = errors.New("database unavailable")

type Options struct {
	Driver         string
	DSN            string
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
}

// Store is the lazily connected database handle shared by every request.
// Concurrent callers that find it disconnected share a single connect
// attempt. A failed attempt is not remembered, the next caller retries.
type Store struct {
	opts  Options
	group singleflight.Group

	mu   sync.RWMutex
	conn *gorm.DB
}

func New(opts Options) *Store {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 45 * time.Second
	}

	return &Store{opts: opts}
}

// Connect makes sure the handle is connected and migrated.
func (s *Store) Connect(ctx context.Context) error {
	_, err := s.DB(ctx)
	return err
}

// DB returns the handle bound to ctx, connecting first if needed.
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()

	if conn != nil {
		return conn.WithContext(ctx), nil
	}

	ch := s.group.DoChan("connect", func() (any, error) {
		s.mu.RLock()
		conn := s.conn
		s.mu.RUnlock()

		if conn != nil {
			return conn, nil
		}

		conn, err := s.open()
		if err != nil {
			zap.L().Error("Failed to connect to database", zap.String("driver", s.opts.Driver), zap.Error(err))
			return nil, err
		}

		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()

		zap.L().Info("Connected to database", zap.String("driver", s.opts.Driver))
		return conn, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w, %w", ErrUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*gorm.DB).WithContext(ctx), nil
	}
}

// HealthCheck pings the database, connecting first if needed.
func (s *Store) HealthCheck(ctx context.Context) error {
	conn, err := s.DB(ctx)
	if err != nil {
		return err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("%w, %w", ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ConnectTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w, %w", ErrUnavailable, err)
	}

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}

	s.conn = nil
	return sqlDB.Close()
}

func (s *Store) open() (*gorm.DB, error) {
	dialector, err := s.dialector()
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w, failed to open database, %w", ErrUnavailable, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrUnavailable, err)
	}

	sqlDB.SetConnMaxIdleTime(s.opts.IdleTimeout)

	// SQLite allows a single writer, sharing one connection avoids "database is locked"
	if s.opts.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ConnectTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w, failed to ping database, %w", ErrUnavailable, err)
	}

	err = conn.WithContext(ctx).AutoMigrate(model.User{}, model.Content{}, model.ShareLink{})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w, failed to automigrate tables, %w", ErrUnavailable, err)
	}

	return conn, nil
}

func (s *Store) dialector() (gorm.Dialector, error) {
	if s.opts.DSN == "" {
		return nil, fmt.Errorf("%w, no database URL provided", ErrUnavailable)
	}

	switch s.opts.Driver {
	case DriverPostgres:
		return postgres.Open(s.opts.DSN), nil
	case DriverSQLite:
		// Inside a container a database file that isn't on a mounted volume
		// vanishes with the container
		if util.IsRunningInDocker() {
			if _, err := os.Stat(s.opts.DSN); errors.Is(err, os.ErrNotExist) {
				zap.L().Warn("SQLite database file not found, mount it with a docker volume to keep data", zap.String("path", s.opts.DSN))
			}
		}

		return sqlite.Open(s.opts.DSN), nil
	default:
		return nil, fmt.Errorf("%w, unknown database driver %q", ErrUnavailable, s.opts.Driver)
	}
}
