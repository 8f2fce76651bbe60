package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap_api/database"
	"github.com/skillswap-app/skillswap_api/models"
	"github.com/skillswap-app/skillswap_api/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateSessionRequestBody struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// CreateSessionRequest lets the authenticated student propose a session for
// one of the teacher's published slots. The request starts out pending; only
// the teacher moves it from there.
func CreateSessionRequest(c *fiber.Ctx) error {
	studentID, _ := uuid.Parse(currentUserID(c))

	var body CreateSessionRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(body.TeacherID)

	if teacherID == studentID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot request a session with yourself"})
	}

	var teacher models.User
	if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	if !teacher.Availability.Has(body.Date, body.TimeSlot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrSlotNotPublished.Error()})
	}

	request, err := services.NewSessionRequest(studentID, teacherID, body.Date, body.TimeSlot, body.Message)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session request sent successfully",
		"request": request,
	})
}

func GetSentRequests(c *fiber.Ctx) error {
	if c.Params("userId") != currentUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only list your own requests"})
	}

	var requests []models.SessionRequest
	if err := database.DB.Preload("Teacher").
		Where("student_id = ?", c.Params("userId")).
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load session requests"})
	}

	return c.JSON(requests)
}

func GetReceivedRequests(c *fiber.Ctx) error {
	if c.Params("userId") != currentUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only list your own requests"})
	}

	var requests []models.SessionRequest
	if err := database.DB.Preload("Student").
		Where("teacher_id = ?", c.Params("userId")).
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load session requests"})
	}

	return c.JSON(requests)
}

// AcceptSessionRequest moves a pending request to accepted and mints its
// scheduling artifacts. The row lock keeps the transition single-writer when
// two clients race; the loser gets the already-responded error.
func AcceptSessionRequest(c *fiber.Ctx) error {
	callerID, _ := uuid.Parse(currentUserID(c))
	requestID := c.Params("requestId")

	var request models.SessionRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}
		if err := services.CanRespond(request, callerID); err != nil {
			return err
		}

		var teacher models.User
		if err := tx.First(&teacher, "id = ?", request.TeacherID).Error; err != nil {
			return err
		}

		artifacts, err := services.BuildSessionArtifacts(request.ID.String(), request.Date, request.TimeSlot, teacher.Location())
		if err != nil {
			return err
		}

		request.Status = models.RequestStatusAccepted
		request.MeetLink = &artifacts.MeetLink
		links := artifacts.CalendarLinks
		request.CalendarLinks = &links
		request.EventID = &artifacts.EventID
		return tx.Save(&request).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Request accepted successfully",
		"meet_link":      request.MeetLink,
		"calendar_links": request.CalendarLinks,
		"event_id":       request.EventID,
	})
}

func DeclineSessionRequest(c *fiber.Ctx) error {
	callerID, _ := uuid.Parse(currentUserID(c))
	requestID := c.Params("requestId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request models.SessionRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}
		if err := services.CanRespond(request, callerID); err != nil {
			return err
		}

		request.Status = models.RequestStatusDeclined
		return tx.Save(&request).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Request declined successfully"})
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	case errors.Is(err, services.ErrNotRequestTeacher):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}
}
