package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"lumina/backend/config"
)

// KVEntry is the single table backing the GORM store: one row per key,
// value is the JSON-encoded document.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:entry_key"`
	Value []byte `gorm:"column:entry_value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

type GormStore struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewGormStore(cfg *config.Config, logger *log.Logger) (*GormStore, error) {
	db, err := openGorm(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("could not migrate kv_entries: %w", err)
	}
	return &GormStore{DB: db, Logger: logger}, nil
}

// NewGormStoreWithDB wraps an already-open connection. Used by tests.
func NewGormStoreWithDB(db *gorm.DB, logger *log.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("could not migrate kv_entries: %w", err)
	}
	return &GormStore{DB: db, Logger: logger}, nil
}

func openGorm(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.StoreDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	return gorm.Open(postgres.Open(dsn), gormCfg)
}

func (g *GormStore) Get(ctx context.Context, key string) ([]byte, bool) {
	var entry KVEntry
	err := g.DB.WithContext(ctx).First(&entry, "entry_key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			g.Logger.Printf("store: read %q failed: %v", key, err)
		}
		return nil, false
	}
	return entry.Value, true
}

func (g *GormStore) Set(ctx context.Context, key string, value []byte) {
	err := g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value"}),
	}).Create(&KVEntry{Key: key, Value: value}).Error
	if err != nil {
		g.Logger.Printf("store: write %q failed: %v", key, err)
	}
}

func (g *GormStore) Remove(ctx context.Context, key string) {
	err := g.DB.WithContext(ctx).Delete(&KVEntry{}, "entry_key = ?", key).Error
	if err != nil {
		g.Logger.Printf("store: remove %q failed: %v", key, err)
	}
}
