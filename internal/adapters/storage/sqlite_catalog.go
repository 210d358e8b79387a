package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
)

const maxRetries = 3

// SQLiteCatalog implements ports.HookStore using GORM
type SQLiteCatalog struct {
	db   *gorm.DB
	path string
}

// Verify interface compliance at compile time
var _ ports.HookStore = (*SQLiteCatalog)(nil)

// ImportRecord describes the latest `catalog import`
type ImportRecord struct {
	HookCount  int
	ImportedAt time.Time
	Source     string
}

// gormLogger routes GORM output to the hookhub logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCatalog opens (creating if needed) the catalog database at dbPath
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `catalog import` run while TUI sessions read
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&HookModel{}, &CatalogImportModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Catalog database opened", "path", dbPath)
	return &SQLiteCatalog{db: db, path: dbPath}, nil
}

// Exists reports whether a catalog database file is present at dbPath
func Exists(dbPath string) bool {
	info, err := os.Stat(config.ExpandPath(dbPath))
	return err == nil && !info.IsDir()
}

// Name returns the database path
func (c *SQLiteCatalog) Name() string {
	return c.path
}

// Close closes the database connection
func (c *SQLiteCatalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements HookSource.Load, returning hooks in import order
func (c *SQLiteCatalog) Load(ctx context.Context) ([]domain.Hook, error) {
	var models []HookModel
	err := withRetry(func() error {
		return c.db.WithContext(ctx).Order("position ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to load hooks: %w", err)
	}

	hooks := make([]domain.Hook, 0, len(models))
	for _, model := range models {
		hook, err := hookModelToDomain(model)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, hook)
	}
	return hooks, nil
}

// Replace implements HookStore.Replace. The whole catalog is swapped in a
// single transaction so readers never see a partial import.
func (c *SQLiteCatalog) Replace(ctx context.Context, hooks []domain.Hook) error {
	return c.ReplaceFrom(ctx, "", hooks)
}

// ReplaceFrom is Replace that also records source in the import history
func (c *SQLiteCatalog) ReplaceFrom(ctx context.Context, source string, hooks []domain.Hook) error {
	models := make([]HookModel, 0, len(hooks))
	seen := make(map[string]bool, len(hooks))
	for i, hook := range hooks {
		if seen[hook.ID] {
			return fmt.Errorf("duplicate hook id %q", hook.ID)
		}
		seen[hook.ID] = true

		model, err := domainToHookModel(hook, i)
		if err != nil {
			return err
		}
		models = append(models, model)
	}

	return withRetry(func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&HookModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear hooks: %w", err)
			}

			if len(models) > 0 {
				if err := tx.CreateInBatches(&models, 100).Error; err != nil {
					return fmt.Errorf("failed to insert hooks: %w", err)
				}
			}

			record := CatalogImportModel{
				HookCount:  len(models),
				ImportedAt: time.Now().UTC(),
				Source:     source,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record import: %w", err)
			}

			logging.Logger.Info("Catalog replaced", "hooks", len(models), "source", source)
			return nil
		})
	}, maxRetries)
}

// LastImport returns the most recent import record, or nil when the
// catalog was never imported
func (c *SQLiteCatalog) LastImport(ctx context.Context) (*ImportRecord, error) {
	var model CatalogImportModel
	err := c.db.WithContext(ctx).Order("id DESC").Limit(1).Find(&model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read import history: %w", err)
	}
	if model.ID == 0 {
		return nil, nil
	}
	return &ImportRecord{
		HookCount:  model.HookCount,
		ImportedAt: model.ImportedAt,
		Source:     model.Source,
	}, nil
}

// Count returns the number of stored hooks
func (c *SQLiteCatalog) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(&HookModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count hooks: %w", err)
	}
	return n, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
