package countperson

import (
	"strings"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CountPersonResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"fullName"`
	CreatedAt string `json:"createdAt"`
}

type CreateCountPersonRequest struct {
	FullName string `json:"fullName"`
}

func personResponse(p *models.CountPerson) CountPersonResponse {
	return CountPersonResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListCountPersonsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var persons []models.CountPerson
		if err := database.DB.Order("full_name ASC").Find(&persons).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list count persons")
		}

		res := make([]CountPersonResponse, 0, len(persons))
		for i := range persons {
			res = append(res, personResponse(&persons[i]))
		}
		return c.JSON(res)
	}
}

func GetCountPersonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var person models.CountPerson
		if err := database.DB.First(&person, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Count person not found")
		}
		return c.JSON(personResponse(&person))
	}
}

func CreateCountPersonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCountPersonRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if body.FullName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Full name is required")
		}

		person := models.CountPerson{FullName: body.FullName}
		if err := database.DB.Create(&person).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create count person")
		}

		return c.Status(fiber.StatusCreated).JSON(personResponse(&person))
	}
}

func UpdateCountPersonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var person models.CountPerson
		if err := database.DB.First(&person, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Count person not found")
		}

		var body CreateCountPersonRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if body.FullName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Full name is required")
		}

		person.FullName = body.FullName
		if err := database.DB.Save(&person).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update count person")
		}
		return c.JSON(personResponse(&person))
	}
}

func DeleteCountPersonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var person models.CountPerson
		if err := database.DB.First(&person, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Count person not found")
		}

		if err := database.DB.Delete(&person).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete count person")
		}
		return c.JSON(fiber.Map{"message": "Count person deleted successfully"})
	}
}
