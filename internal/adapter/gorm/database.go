package gorm

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	paramAutoMigrate  = "autoMigrate"
	paramMaxOpenConns = "maxOpenConns"
)

type Options struct {
	AutoMigrate  bool
	MaxOpenConns int
}

// Open opens a database from a DSN. The "postgres", "postgresql" and "sqlite"
// schemes are supported. The autoMigrate and maxOpenConns query parameters are
// consumed here and never forwarded to the driver.
func Open(ctx context.Context, dsn *url.URL) (*gorm.DB, *Options, error) {
	opts := &Options{
		AutoMigrate:  true,
		MaxOpenConns: 10,
	}

	u := *dsn
	query := u.Query()

	if rawValue := query.Get(paramAutoMigrate); rawValue != "" {
		v, err := strconv.ParseBool(rawValue)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse '%s' parameter", paramAutoMigrate)
		}
		opts.AutoMigrate = v
	}

	if rawValue := query.Get(paramMaxOpenConns); rawValue != "" {
		v, err := strconv.ParseInt(rawValue, 10, 32)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse '%s' parameter", paramMaxOpenConns)
		}
		opts.MaxOpenConns = int(v)
	}

	query.Del(paramAutoMigrate)
	query.Del(paramMaxOpenConns)
	u.RawQuery = query.Encode()

	var dialector gorm.Dialector

	switch u.Scheme {
	case "postgres", "postgresql":
		dialector = postgres.Open(u.String())

	case "sqlite":
		path := u.Path
		if u.Host != "" {
			path = u.Host + u.Path
		}
		dialector = gormlite.Open(path)
		// sqlite only supports a single writer
		opts.MaxOpenConns = 1

	default:
		return nil, nil, errors.Errorf("unsupported database scheme '%s'", u.Scheme)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(ctx)),
	})
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(opts.MaxOpenConns)

	if u.Scheme == "sqlite" {
		for _, pragma := range []string{"PRAGMA journal_mode=wal", "PRAGMA busy_timeout=5000"} {
			if err := db.Exec(pragma).Error; err != nil {
				return nil, nil, errors.Wrapf(err, "could not execute '%s'", pragma)
			}
		}
	}

	return db, opts, nil
}

func gormLogLevel(ctx context.Context) logger.LogLevel {
	switch {
	case slog.Default().Enabled(ctx, slog.LevelInfo):
		return logger.Info
	case slog.Default().Enabled(ctx, slog.LevelWarn):
		return logger.Warn
	default:
		return logger.Error
	}
}
