package database

import (
	"fmt"
	"log"

	config "github.com/skillswap-app/skillswap_api/configs"
	"github.com/skillswap-app/skillswap_api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.SessionRequest{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedSkills loads the fixed skill catalog. Skill names are not
// user-definable, so the catalog is the single source of truth for what a
// member may teach or learn.
func SeedSkills() {
	catalog := []models.Skill{
		{ID: 1, Name: "JavaScript", Category: "Programming"},
		{ID: 2, Name: "Python", Category: "Programming"},
		{ID: 3, Name: "React", Category: "Web Development"},
		{ID: 4, Name: "Node.js", Category: "Web Development"},
		{ID: 5, Name: "UI/UX Design", Category: "Design"},
		{ID: 6, Name: "Graphic Design", Category: "Design"},
		{ID: 7, Name: "Digital Marketing", Category: "Marketing"},
		{ID: 8, Name: "Content Writing", Category: "Writing"},
		{ID: 9, Name: "Data Analysis", Category: "Data Science"},
		{ID: 10, Name: "Machine Learning", Category: "Data Science"},
		{ID: 11, Name: "Mobile Development", Category: "Programming"},
		{ID: 12, Name: "DevOps", Category: "Programming"},
	}

	for _, skill := range catalog {
		var count int64
		if err := DB.Model(&models.Skill{}).Where("id = ?", skill.ID).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check skill catalog: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&skill).Error; err != nil {
			log.Fatalf("🔥 Failed to seed skill catalog: %v", err)
		}
	}

	log.Println("✅ Skill catalog seeded successfully")
}
