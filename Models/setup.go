package Models

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AdminID is the one privileged account, seeded on first run.
const AdminID uint = 1

// Connect opens the sqlite database, migrates the schema and makes sure the
// admin account exists. The returned handle is pooled and safe to share.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&User{},
		&Task{},
		&ScheduleEntry{},
		&CalendarEvent{},
	); err != nil {
		return nil, err
	}

	if err := ensureAdmin(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureAdmin inserts the fixed admin account if it is missing. Nothing
// beyond the username/password pair is seeded.
func ensureAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Where("username = ?", "admin1").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := User{Username: "admin1", Password: "admin123"}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin account restored.")
	return nil
}
