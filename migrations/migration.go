package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is the bookkeeping row recording which migrations ran and
// in which batch, so reruns are idempotent and rollbacks are grouped.
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Definition struct {
	Name string
	Up   func(*gorm.DB) error
	Down func(*gorm.DB) error
}

type Migrator struct {
	db          *gorm.DB
	definitions []Definition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{db: db}
}

func (m *Migrator) Add(defs ...Definition) {
	m.definitions = append(m.definitions, defs...)
}

// Migrate runs every pending migration in registration order, all of
// them under the same batch number.
func (m *Migrator) Migrate() error {
	log.Println("Running archive migrations...")

	batch := m.latestBatch() + 1

	for _, def := range m.definitions {
		if m.hasRun(def.Name) {
			continue
		}

		log.Printf("Migrating: %s", def.Name)

		tx := m.db.Begin()
		if err := def.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", def.Name, err)
		}
		if err := tx.Create(&Migration{Name: def.Name, Batch: batch}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", def.Name, err)
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", def.Name, err)
		}
	}

	log.Println("Migrations completed")
	return nil
}

// Rollback reverts the given number of batches, newest first.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	for batch := m.latestBatch(); steps > 0 && batch > 0; steps, batch = steps-1, batch-1 {
		var applied []Migration
		m.db.Where("batch = ?", batch).Order("id DESC").Find(&applied)

		for _, record := range applied {
			def := m.definition(record.Name)
			if def == nil || def.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			log.Printf("Rolling back: %s", record.Name)

			tx := m.db.Begin()
			if err := def.Down(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
			}
			if err := tx.Delete(&record).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
			}
			if err := tx.Commit().Error; err != nil {
				return fmt.Errorf("failed to commit rollback of %s: %w", record.Name, err)
			}
		}
	}

	log.Println("Rollback completed")
	return nil
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) latestBatch() int {
	var latest Migration
	m.db.Order("batch DESC").First(&latest)
	return latest.Batch
}

func (m *Migrator) definition(name string) *Definition {
	for i := range m.definitions {
		if m.definitions[i].Name == name {
			return &m.definitions[i]
		}
	}
	return nil
}
