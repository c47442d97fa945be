package config

import (
	"log"
	"os"

	"lunch-roulette-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback. Resolved on
// every call, not at package init, so a secret loaded from .env in main
// is picked up.
func JWTSecret() []byte {
	return []byte(Env("JWT_SECRET", "lunch_roulette_super_secret_2026"))
}

// Env returns the value of an environment variable or a fallback.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(Env("DB_PATH", "lunch_roulette.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.Favorite{},
		&models.Team{},
		&models.TeamMember{},
		&models.VoteSession{},
		&models.VoteCandidate{},
		&models.Vote{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
