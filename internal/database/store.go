package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shivani7798/JobSpy/internal/models"
)

// ListingRow is the listings table schema: the canonical field set plus an
// auto-increment key that records append order. Rows from prior runs are
// never touched; every invocation only inserts.
type ListingRow struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time

	Site            string `gorm:"not null"`
	Title           string `gorm:"not null"`
	Company         *string
	Location        *string
	JobType         *string
	MinAmount       *float64
	MaxAmount       *float64
	Interval        *string
	IsRemote        *bool
	DatePosted      *time.Time
	JobLevel        *string
	CompanyIndustry *string
	Description     *string `gorm:"type:text"`
}

func (ListingRow) TableName() string { return "listings" }

// Store is the local embedded database for accumulating listings across runs.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite file at path and migrates the listings
// table. The parent directory must already exist.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&ListingRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate listings table: %w", err)
	}
	return &Store{db: db}, nil
}

// Append inserts the result set at the end of the listings table, preserving
// row order. A nil or empty set is a no-op.
func (s *Store) Append(rs models.ResultSet) error {
	if len(rs) == 0 {
		return nil
	}
	rows := make([]ListingRow, len(rs))
	for i := range rs {
		rows[i] = toRow(&rs[i])
	}
	if err := s.db.CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("failed to append listings: %w", err)
	}
	return nil
}

// Count reports how many listings have accumulated across all runs.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&ListingRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

// All returns every stored listing in append order.
func (s *Store) All() ([]ListingRow, error) {
	var rows []ListingRow
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return rows, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRow(l *models.Listing) ListingRow {
	row := ListingRow{
		Site:            l.Site,
		Title:           l.Title,
		Company:         l.Company,
		Location:        l.Location,
		JobType:         l.JobType,
		MinAmount:       l.MinAmount,
		MaxAmount:       l.MaxAmount,
		Interval:        l.Interval,
		IsRemote:        l.IsRemote,
		JobLevel:        l.JobLevel,
		CompanyIndustry: l.CompanyIndustry,
		Description:     l.Description,
	}
	if l.DatePosted != nil {
		t := l.DatePosted.Time
		row.DatePosted = &t
	}
	return row
}
