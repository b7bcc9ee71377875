package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // CGO-free sqlite driver, registered as "sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver-specific constraint errors into gorm
	// sentinels; the schedule bootstrap relies on ErrDuplicatedKey.
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	// Anything else is treated as a SQLite path (local development, tests).
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}
