// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"petrolog/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Rename the legacy analysis table BEFORE AutoMigrate so GORM extends
	// the existing rows instead of creating an empty zones table beside them.
	if err := migrateLegacyPetrophysicsTable(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Well{},
		&entities.WellLog{},
		&entities.Zone{},
		&entities.KBDocument{},
		&entities.KBChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateLegacyPetrophysicsTable renames petrophysics -> zones. Databases
// seeded by earlier builds stored zones under the old table name.
func migrateLegacyPetrophysicsTable(db *gorm.DB) error {
	var old, cur string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='petrophysics'`).Scan(&old).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if old == "" {
		// fresh DB, nothing to do
		return nil
	}
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='zones'`).Scan(&cur).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if cur != "" {
		// both present: zones wins, keep the legacy table untouched
		return nil
	}
	return db.Exec(`ALTER TABLE petrophysics RENAME TO zones`).Error
}
