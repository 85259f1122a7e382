package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blobModel is the single-table schema behind GormStore: one row per
// collection key.
type blobModel struct {
	Key   string `gorm:"column:blob_key;primaryKey;size:64"`
	Value []byte `gorm:"column:blob_value"`
}

func (blobModel) TableName() string {
	return "kv_blobs"
}

// GormStore persists blobs in a relational table via gorm (sqlite or mysql).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&blobModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_blobs table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var model blobModel
	err := s.db.WithContext(ctx).First(&model, "blob_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	return model.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	model := blobModel{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blob_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob_value"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}
	return nil
}
