package db

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
)

// Models lists every table the catalog owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Product{},
		&model.Season{},
	}
}

// Open selects the engine once from cfg, connects, and tunes the pool.
// It does not create the schema; call Migrate for that.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Type, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.Type == EngineSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gdb, nil
}

// Migrate creates missing tables, columns and indexes. Safe to run on every start.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// InitDB opens the configured engine and syncs the schema.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gdb, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		Close(gdb)
		return nil, err
	}
	zap.L().Info("database ready", zap.String("engine", cfg.Type))
	return gdb, nil
}

func Close(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.L().Warn("close database", zap.Error(err))
	}
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case EngineSQLite:
		dir := filepath.Dir(cfg.Filename)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir %q: %w", dir, err)
		}
		return sqlite.Open(BuildDSN(cfg)), nil
	case EnginePostgres:
		return postgres.Open(BuildDSN(cfg)), nil
	case EngineMySQL:
		return mysql.Open(BuildDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// BuildDSN renders the connection string for cfg.Type. An explicit URL is
// used as-is for the networked engines.
func BuildDSN(cfg config.DatabaseConfig) string {
	switch cfg.Type {
	case EnginePostgres:
		if cfg.URL != "" {
			return cfg.URL
		}
		sslMode := "disable"
		if cfg.SSL {
			sslMode = "require"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
	case EngineMySQL:
		// clientFoundRows makes RowsAffected count matched rows, so an update
		// that leaves a row unchanged still reports it as found
		if cfg.URL != "" {
			return withClientFoundRows(cfg.URL)
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		if cfg.SSL {
			dsn += "&tls=true"
		}
		return dsn
	default:
		// WAL and busy_timeout let readers proceed while a write is in flight
		q := url.Values{}
		q.Add("_pragma", "foreign_keys(1)")
		q.Add("_pragma", "journal_mode(WAL)")
		q.Add("_pragma", "busy_timeout(5000)")
		return cfg.Filename + "?" + q.Encode()
	}
}

func withClientFoundRows(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&clientFoundRows=true"
	}
	return dsn + "?clientFoundRows=true"
}
