package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the shared connection pool and runs migrations. Pooling
// discipline (checkout/checkin) is gorm's responsibility.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so
		// the service layer can map them to a conflict.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate is exported separately so tests can run it against other drivers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &ArticleModel{})
}
