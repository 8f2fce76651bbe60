package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/database"
	"github.com/skillswap-app/skillswap_api/models"
	"github.com/skillswap-app/skillswap_api/services"
)

func GetSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	database.DB.Order("id asc").Find(&skills)

	return c.JSON(skills)
}

func GetTimeSlots(c *fiber.Ctx) error {
	return c.JSON(services.TimeSlots)
}
