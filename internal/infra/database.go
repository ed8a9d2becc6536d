package infra

import (
	"fmt"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, bounds the pool,
// and ensures the schema. TranslateError lets the services detect unique
// violations as gorm.ErrDuplicatedKey instead of matching pg error codes.
func NewDatabase(dsn string, maxOpen, maxIdle int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates or verifies the five tables at startup. Everything is
// idempotent; there is deliberately no migration system.
func EnsureSchema(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on PostgreSQL < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Caixa{},
		&model.Venda{},
		&model.VendaManual{},
		&model.Retirada{},
		&model.FechamentoCaixa{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one caixa "aberto" at a time, enforced at the database so two
		// concurrent aberturas cannot both commit.
		{"partial unique index on open caixa", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_caixa_abertura_aberto') THEN
    CREATE UNIQUE INDEX uni_caixa_abertura_aberto
        ON caixa_abertura (status)
        WHERE status = 'aberto';
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
