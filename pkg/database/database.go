// Package database opens the GORM connection and creates the schema.
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/config"
	"github.com/d60-Lab/social-schema/internal/model"
	"github.com/d60-Lab/social-schema/pkg/logger"
)

// InitDB 按配置打开数据库连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database

	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dbCfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(dbCfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(dbCfg.LogLevel, dbCfg.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbCfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dbCfg.Driver == config.DriverSQLite {
		// sqlite 单写者；同时保证 PRAGMA 作用于唯一连接
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		if dbCfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
		}
		if dbCfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
		}
		if dbCfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
		}
	}

	logger.Info("database connected", zap.String("driver", dbCfg.Driver))
	return db, nil
}

// Migrate 创建五张表及其外键约束
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
