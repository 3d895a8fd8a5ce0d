package repository

import "gorm.io/gorm"

// Migrate creates the four record tables if they do not exist yet. Called
// once at process start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&equipmentModel{},
		&customerModel{},
		&inventoryModel{},
		&rentalModel{},
	)
}
