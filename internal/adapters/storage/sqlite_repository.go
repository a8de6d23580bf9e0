package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// SQLiteRepository implements ports.SiteRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SiteRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the perry logger for GORM
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

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PERRY_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&BlockedSiteModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blocked_sites schema: %w", err)
	}

	logging.Logger.Debug("Site repository opened", "path", dbPath)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Count implements SiteReader.Count
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BlockedSiteModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blocked sites: %w", err)
	}
	return count, nil
}

// Exists implements SiteReader.Exists
func (r *SQLiteRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BlockedSiteModel{}).
		Where("domain = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check site %s: %w", name, err)
	}
	return count > 0, nil
}

// List implements SiteReader.List, ordered by domain
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.BlockedSite, error) {
	var models []BlockedSiteModel
	if err := r.db.WithContext(ctx).Order("domain ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocked sites: %w", err)
	}

	result := make([]domain.BlockedSite, len(models))
	for i, m := range models {
		result[i] = blockedSiteModelToDomain(m)
	}
	return result, nil
}

// Add implements SiteWriter.Add. Existing domains keep their original source.
func (r *SQLiteRepository) Add(ctx context.Context, sites []domain.BlockedSite) error {
	if len(sites) == 0 {
		return nil
	}

	models := make([]BlockedSiteModel, len(sites))
	for i, s := range sites {
		models[i] = domainToBlockedSiteModel(s)
	}

	return withRetry(func() error {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models).Error
		if err != nil {
			return fmt.Errorf("failed to add blocked sites: %w", err)
		}
		return nil
	}, 3)
}

// Delete implements SiteWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, domains []string) (int64, error) {
	if len(domains) == 0 {
		return 0, nil
	}

	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("domain IN ?", domains).Delete(&BlockedSiteModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete blocked sites: %w", result.Error)
		}
		affected = result.RowsAffected
		return nil
	}, 3)
	return affected, err
}

// DeleteAll implements SiteWriter.DeleteAll
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&BlockedSiteModel{}).Error
		if err != nil {
			return fmt.Errorf("failed to clear blocked sites: %w", err)
		}
		return nil
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
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
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
