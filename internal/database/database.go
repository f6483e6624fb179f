package database

import (
	"wm-genai-governance/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the SQLite database that backs the read-only registry tables.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	DB = db
	return db, nil
}

// Migrate creates the registry tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GovernedModel{},
		&models.ComplianceMapping{},
		&models.EvaluationRun{},
		&models.DemoDefinition{},
	)
}

// Ping reports whether the database answers.
func Ping() bool {
	if DB == nil {
		return false
	}
	sqlDB, err := DB.DB()
	return err == nil && sqlDB.Ping() == nil
}

// Reset drops and recreates the registry tables so fixtures can be reseeded on every start.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.GovernedModel{},
		&models.ComplianceMapping{},
		&models.EvaluationRun{},
		&models.DemoDefinition{},
	); err != nil {
		return err
	}
	return Migrate(db)
}
