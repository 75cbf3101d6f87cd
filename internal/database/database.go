package database

import (
	"fmt"

	"quiz-admin-backend/internal/config"
	"quiz-admin-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *zap.SugaredLogger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB, log *zap.SugaredLogger) {
	err := db.AutoMigrate(
		&models.Identity{},
		&models.UserRecord{},
		&models.GlobalConfig{},
		&models.LiveSession{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Info("database migrated")
}

// SeedOperator creates the operator identity on first boot so the panel is
// reachable before any other account exists. A no-op unless
// OPERATOR_PASSWORD is set and the identity is absent.
func SeedOperator(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) {
	if cfg.OperatorPassword == "" {
		return
	}

	var existing models.Identity
	if err := db.First(&existing, "email = ?", cfg.OperatorEmail).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OperatorPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash operator password: %v", err)
	}

	identity := models.Identity{
		UID:          uuid.NewString(),
		Email:        cfg.OperatorEmail,
		DisplayName:  "Operator",
		PasswordHash: string(hash),
	}
	if err := db.Create(&identity).Error; err != nil {
		log.Fatalf("failed to seed operator identity: %v", err)
	}
	log.Infof("seeded operator identity %s", cfg.OperatorEmail)
}
