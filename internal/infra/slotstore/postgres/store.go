package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// Store keeps slots in a Postgres table through gorm.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.Slot{}); err != nil {
		return nil, fmt.Errorf("migrate slots: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Driver() slotstore.Driver { return slotstore.DriverPostgres }

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.Slot
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	slot := models.Slot{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ slotstore.Store = (*Store)(nil)
