package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/database"
	"github.com/skillswap-app/skillswap_api/models"
	"github.com/skillswap-app/skillswap_api/services"
)

// GetCommunity returns the member roster partitioned against the viewer's
// learning skills. With ?q= the matched+other concatenation is instead
// filtered by teaching skill, mirroring the dashboard search.
func GetCommunity(c *fiber.Ctx) error {
	viewerID := currentUserID(c)

	var viewer models.User
	if err := database.DB.Where("id = ?", viewerID).First(&viewer).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var roster []models.User
	if err := database.DB.
		Where("id <> ? AND onboarding_completed = ?", viewerID, true).
		Order("created_at asc").
		Find(&roster).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	matched, other := services.PartitionMembers(viewer.LearningSkills, roster)

	if query := c.Query("q"); query != "" {
		results := services.FilterByTeachingSkill(query, append(matched, other...))
		return c.JSON(fiber.Map{"results": results})
	}

	return c.JSON(fiber.Map{
		"matched": matched,
		"other":   other,
	})
}
