package location

import (
	"strings"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LocationResponse struct {
	ID          uint   `json:"id"`
	WhsID       uint   `json:"whsId"`
	BinLocation string `json:"binLocation"`
	CreatedAt   string `json:"createdAt"`
}

type CreateLocationRequest struct {
	WhsID       uint   `json:"whsId"`
	BinLocation string `json:"binLocation"`
}

func locationResponse(l *models.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		WhsID:       l.WhsID,
		BinLocation: l.BinLocation,
		CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListLocationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Location{})

		if whsID := c.QueryInt("whsId", 0); whsID > 0 {
			query = query.Where("whs_id = ?", whsID)
		}

		var locations []models.Location
		if err := query.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
		}

		res := make([]LocationResponse, 0, len(locations))
		for i := range locations {
			res = append(res, locationResponse(&locations[i]))
		}
		return c.JSON(res)
	}
}

func GetLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := database.DB.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}
		return c.JSON(locationResponse(&loc))
	}
}

func CreateLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.BinLocation = strings.TrimSpace(body.BinLocation)
		if body.WhsID == 0 || body.BinLocation == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse id and bin location are required")
		}

		var whs models.WhsGroup
		if err := database.DB.First(&whs, body.WhsID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		loc := models.Location{
			WhsID:       body.WhsID,
			BinLocation: body.BinLocation,
		}
		if err := database.DB.Create(&loc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create location")
		}

		return c.Status(fiber.StatusCreated).JSON(locationResponse(&loc))
	}
}

func UpdateLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := database.DB.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}

		var body CreateLocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.BinLocation = strings.TrimSpace(body.BinLocation)
		if body.WhsID == 0 || body.BinLocation == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse id and bin location are required")
		}

		loc.WhsID = body.WhsID
		loc.BinLocation = body.BinLocation
		if err := database.DB.Save(&loc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update location")
		}
		return c.JSON(locationResponse(&loc))
	}
}

func DeleteLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := database.DB.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}

		if err := database.DB.Delete(&loc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete location")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
