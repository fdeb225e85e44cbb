package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/fs"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/memory"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/postgres"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/redis"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/s3"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/sqlite"
)

// OpenSlotStore abre o meio de armazenamento escolhido em STORAGE_DRIVER.
func OpenSlotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (slotstore.Store, error) {
	driver := slotstore.Driver(cfg.StorageDriver)

	var (
		store slotstore.Store
		err   error
	)

	switch driver {
	case slotstore.DriverMemory:
		store = memory.New(cfg.StorageQuotaBytes)
	case slotstore.DriverFilesystem, "":
		store, err = fs.New(cfg.DataDir)
	case slotstore.DriverSQLite:
		store, err = sqlite.New(cfg.SQLitePath)
	case slotstore.DriverPostgres:
		var gdb *gorm.DB
		gdb, err = NewGorm(cfg)
		if err == nil {
			store, err = postgres.New(gdb)
		}
	case slotstore.DriverRedis:
		store, err = redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case slotstore.DriverS3:
		store, err = s3.New(s3.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PathStyle:       cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("open %s slot store: %w", driver, err)
	}

	logger.Info("slot store ready", zap.String("driver", string(store.Driver())))
	return store, nil
}

func NewGorm(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}
