package warehouse

import (
	"strings"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type WhsGroupResponse struct {
	ID        uint   `json:"id"`
	WhsName   string `json:"whsName"`
	CreatedAt string `json:"createdAt"`
}

type CreateWhsGroupRequest struct {
	WhsName string `json:"whsName"`
}

func whsResponse(w *models.WhsGroup) WhsGroupResponse {
	return WhsGroupResponse{
		ID:        w.ID,
		WhsName:   w.WhsName,
		CreatedAt: w.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListWarehousesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var warehouses []models.WhsGroup
		if err := database.DB.Find(&warehouses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list warehouses")
		}

		res := make([]WhsGroupResponse, 0, len(warehouses))
		for i := range warehouses {
			res = append(res, whsResponse(&warehouses[i]))
		}
		return c.JSON(res)
	}
}

func GetWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var warehouse models.WhsGroup
		if err := database.DB.First(&warehouse, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}
		return c.JSON(whsResponse(&warehouse))
	}
}

func CreateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWhsGroupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.WhsName = strings.TrimSpace(body.WhsName)
		if body.WhsName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse name is required")
		}

		warehouse := models.WhsGroup{WhsName: body.WhsName}
		if err := database.DB.Create(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create warehouse")
		}

		return c.Status(fiber.StatusCreated).JSON(whsResponse(&warehouse))
	}
}

func UpdateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var warehouse models.WhsGroup
		if err := database.DB.First(&warehouse, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		var body CreateWhsGroupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.WhsName = strings.TrimSpace(body.WhsName)
		if body.WhsName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse name is required")
		}

		warehouse.WhsName = body.WhsName
		if err := database.DB.Save(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update warehouse")
		}
		return c.JSON(whsResponse(&warehouse))
	}
}

func DeleteWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var warehouse models.WhsGroup
		if err := database.DB.First(&warehouse, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		if err := database.DB.Delete(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete warehouse")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
