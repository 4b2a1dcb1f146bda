package database

import (
	"stockcount-backend/internal/config"
	"stockcount-backend/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which handlers map to 409.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal("could not connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	if err := SeedAdminUser(DB, cfg.AdminPassword); err != nil {
		zap.L().Fatal("admin seed failed", zap.Error(err))
	}

	zap.L().Info("database ready")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WhsGroup{},
		&models.Location{},
		&models.BinMapping{},
		&models.CountPerson{},
		&models.FreezeData{},
		&models.Counting{},
	)
}

// SeedAdminUser makes sure the built-in admin login exists. It is never
// deleted afterwards; the user handlers refuse to remove it.
func SeedAdminUser(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("user_name = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		UserName:     "admin",
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	zap.L().Info("admin user seeded")
	return nil
}
