package markers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ResetMarker records that the weekly reset already ran on a calendar day.
// Date is formatted 2006-01-02 in the reset reference timezone.
type ResetMarker struct {
	Date      string `gorm:"primaryKey;size:10"`
	CreatedAt time.Time
}

func (ResetMarker) TableName() string {
	return "reset_markers"
}

// Store is a local durable flag store backed by SQLite. It lives outside the
// task store on purpose: the idempotency marker must survive restarts even
// when Firestore is unreachable.
type Store struct {
	db *gorm.DB
}

// NewStore opens (creating if needed) the marker database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "reset_markers.db"
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open marker db: %w", err)
	}
	if err := db.AutoMigrate(&ResetMarker{}); err != nil {
		return nil, fmt.Errorf("migrate marker db: %w", err)
	}
	return &Store{db: db}, nil
}

// Exists reports whether the marker for the given day is set.
func (s *Store) Exists(date string) (bool, error) {
	var count int64
	err := s.db.Model(&ResetMarker{}).Where("date = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Set records the marker for the given day. Setting an existing marker is a
// no-op.
func (s *Store) Set(date string) error {
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ResetMarker{Date: date}).Error
}

func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create marker db dir %q: %w", dir, err)
	}
	return nil
}
