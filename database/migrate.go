package database

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.RefreshToken{},
		&models.User{},
		&models.Company{},
		&models.EmployerProfile{},
		&models.JobPost{},
	)
	if err != nil {
		return err
	}

	logger.Info("AutoMigrate completed")
	return nil
}
