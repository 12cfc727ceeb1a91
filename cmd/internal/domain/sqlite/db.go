package sqlite

import (
	"context"
	"simpleblog/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var tables = []any{&entity.Note{}, &entity.Comment{}, &entity.User{}}

func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(tables...)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Debugf("sqlite database ready at %s", dbPath)
	return db, nil
}

// Reset drops every table, recreates the schema and inserts the seed data.
// Development only: all stored notes, comments and users are lost.
func Reset(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.Migrator().DropTable(tables...); err != nil {
		return err
	}

	if err := tx.AutoMigrate(tables...); err != nil {
		return err
	}
	return Seed(ctx, db)
}

// IsEmpty reports whether no note, comment or user has been stored yet.
func IsEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	for _, table := range tables {
		var count int64
		if err := db.WithContext(ctx).Model(table).Count(&count).Error; err != nil {
			return false, err
		}

		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

// SeedIfEmpty runs Reset when every table is empty and reports whether it
// did. Any stored row, a registered user included, keeps the database as is.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	empty, err := IsEmpty(ctx, db)
	if err != nil || !empty {
		return false, err
	}
	return true, Reset(ctx, db)
}
