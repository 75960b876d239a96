package database

import (
	"tour-insight/app/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Tour{},
		&model.User{},
	)
}
