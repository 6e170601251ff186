package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookcatalog/internal/config"
	"bookcatalog/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// New opens the MySQL connection described by the config and migrates the
// books table. TranslateError turns driver-level unique constraint
// violations into gorm.ErrDuplicatedKey, which is the fallback guard for
// the ISBN check-then-insert window. NowFunc keeps created_at in UTC.
func New(cfg *config.Config) (*Database, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s:%d/%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the underlying connection pool is still reachable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
