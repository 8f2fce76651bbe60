package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lib/pq"
	"github.com/skillswap-app/skillswap_api/database"
	"github.com/skillswap-app/skillswap_api/models"
	"github.com/skillswap-app/skillswap_api/services"
)

func currentUserID(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["user_id"].(string)
}

type UpdateProfileRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=2,max=100"`
	Bio                 *string `json:"bio" validate:"omitempty,max=500"`
	Country             *string `json:"country" validate:"omitempty,len=2"`
	ProfilePictureURL   *string `json:"profile_picture_url"`
	TimeZone            *string `json:"time_zone" validate:"omitempty,timezone"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
}

func GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.TimeZone != nil {
		user.TimeZone = req.TimeZone
	}
	if req.OnboardingCompleted != nil {
		user.OnboardingCompleted = *req.OnboardingCompleted
	}

	database.DB.Save(&user)

	return c.JSON(user)
}

type UpdateSkillsRequest struct {
	TeachingSkills *[]string `json:"teaching_skills" validate:"omitempty,max=5,dive,required"`
	LearningSkills *[]string `json:"learning_skills" validate:"omitempty,max=5,dive,required"`
}

// UpdateSkills replaces either or both skill lists. Entries must come from
// the seeded catalog; each list is capped at five skills.
func UpdateSkills(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, list := range []*[]string{req.TeachingSkills, req.LearningSkills} {
		if list == nil {
			continue
		}
		for _, name := range *list {
			var count int64
			database.DB.Model(&models.Skill{}).Where("name = ?", name).Count(&count)
			if count == 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown skill: " + name})
			}
		}
	}

	if req.TeachingSkills != nil {
		user.TeachingSkills = pq.StringArray(*req.TeachingSkills)
	}
	if req.LearningSkills != nil {
		user.LearningSkills = pq.StringArray(*req.LearningSkills)
	}

	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "Skills updated successfully"})
}

type ToggleSlotRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" validate:"required"`
}

// ToggleMyAvailabilitySlot flips a single slot for a date. Toggling a slot
// whose hour has already passed in the member's time zone leaves the day
// unchanged rather than failing.
func ToggleMyAvailabilitySlot(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req ToggleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, ok := services.SlotHour(req.TimeSlot); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown time slot: " + req.TimeSlot})
	}

	loc := user.Location()
	toggled := services.ToggleSlot(user.Availability[req.Date], req.TimeSlot, req.Date, time.Now().In(loc), loc)
	updated := services.SaveAvailability(user.Availability, req.Date, toggled)

	if err := database.DB.Model(&user).Update("availability", updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.JSON(fiber.Map{
		"date":       req.Date,
		"time_slots": toggled,
	})
}

type SaveAvailabilityRequest struct {
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots []string `json:"time_slots" validate:"required"`
}

func GetMyAvailability(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user.Availability)
}

// SaveMyAvailability replaces the slot list for one calendar date. The write
// touches exactly the availability column; an empty time_slots list is stored
// under its date key rather than dropping the key.
func SaveMyAvailability(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req SaveAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, slot := range req.TimeSlots {
		if _, ok := services.SlotHour(slot); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown time slot: " + slot})
		}
	}

	slots := append([]string(nil), req.TimeSlots...)
	services.SortSlots(slots)
	updated := services.SaveAvailability(user.Availability, req.Date, slots)

	if err := database.DB.Model(&user).Update("availability", updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.JSON(fiber.Map{
		"message":      "Availability updated successfully",
		"availability": updated,
	})
}
