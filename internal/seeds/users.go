package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
)

func GetOrCreateDemoUser() (models.User, error) {
	log.Println("Checking demo user...")

	username := "demo"
	email := "demo@myfc.app"

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	if err == nil {
		log.Printf("   Demo user found: %s", user.Username)
		return user, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("DemoFitness2026!"), bcrypt.DefaultCost)

	user = models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
		Name:      "Demo Athlete",
		Bio:       "Seeded account for local development.",
		Image:     "https://api.dicebear.com/7.x/identicon/svg?seed=myfc-demo",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   Demo user created: %s", user.Username)
	return user, nil
}
