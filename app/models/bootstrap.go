package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Bootstrap creates missing tables and columns. It never drops anything.
func Bootstrap(db *gorm.DB) error {
	if err := db.AutoMigrate(&Item{}, &MasterProduct{}); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	for _, t := range LookupTables() {
		if err := db.Table(t.Table).AutoMigrate(&Lookup{}); err != nil {
			return fmt.Errorf("bootstrap %s: %w", t.Table, err)
		}
	}
	return nil
}
