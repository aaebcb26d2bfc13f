package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dsartorelli/book-site-backend/errs"
)

// ContentSlot is the key-value row collections are persisted into. Each
// collection occupies one row holding its full JSON serialization.
type ContentSlot struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time
}

func (ContentSlot) TableName() string {
	return "content_slots"
}

// PostgresSlot is the durable Slot implementation backed by a GORM connection.
type PostgresSlot struct {
	db *gorm.DB
}

// NewPostgresSlot migrates the content_slots table and returns the slot.
func NewPostgresSlot(db *gorm.DB) (*PostgresSlot, error) {
	if err := db.AutoMigrate(&ContentSlot{}); err != nil {
		return nil, fmt.Errorf("migrating content_slots: %w", err)
	}
	return &PostgresSlot{db: db}, nil
}

func (s *PostgresSlot) Get(key string) (string, error) {
	var slot ContentSlot
	err := s.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.ErrSlotEmpty
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSlotUnavailable, err)
	}
	return slot.Value, nil
}

func (s *PostgresSlot) Set(key, value string) error {
	slot := ContentSlot{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSlotUnavailable, err)
	}
	return nil
}

func (s *PostgresSlot) Remove(key string) error {
	if err := s.db.Delete(&ContentSlot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSlotUnavailable, err)
	}
	return nil
}
