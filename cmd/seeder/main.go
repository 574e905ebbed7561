package main

import (
	"log"

	"github.com/chans00n/myfc-app-sub001/internal/config"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.NotificationPreferences{},
	)

	user, err := seeds.GetOrCreateDemoUser()
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	seeds.SeedWorkouts(user.ID)

	log.Println("Seeding complete")
}
