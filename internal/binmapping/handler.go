package binmapping

import (
	"errors"
	"strings"

	"stockcount-backend/internal/auth"
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/scan"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BinMappingResponse struct {
	ID        uint   `json:"id"`
	BinID     uint   `json:"binId"`
	Sku       string `json:"sku"`
	BatchNo   string `json:"batchNo"`
	UserID    uint   `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

type CreateBinMappingRequest struct {
	BinID   uint   `json:"binId"`
	Sku     string `json:"sku"`
	BatchNo string `json:"batchNo"`
}

type ScanLabelRequest struct {
	BinID       uint   `json:"binId"`
	ScannedData string `json:"scannedData"`
}

func mappingResponse(m *models.BinMapping) BinMappingResponse {
	return BinMappingResponse{
		ID:        m.ID,
		BinID:     m.BinID,
		Sku:       m.Sku,
		BatchNo:   m.BatchNo,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListBinMappingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.BinMapping{})

		if binID := c.QueryInt("binId", 0); binID > 0 {
			query = query.Where("bin_id = ?", binID)
		}

		var mappings []models.BinMapping
		if err := query.Find(&mappings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list bin mappings")
		}

		res := make([]BinMappingResponse, 0, len(mappings))
		for i := range mappings {
			res = append(res, mappingResponse(&mappings[i]))
		}
		return c.JSON(res)
	}
}

func GetBinMappingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var mapping models.BinMapping
		if err := database.DB.First(&mapping, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bin mapping not found")
		}
		return c.JSON(mappingResponse(&mapping))
	}
}

// createMapping does the duplicate pre-check and insert shared by the scan and
// manual-create endpoints. The unique index is the backstop for the race
// between check and insert.
func createMapping(binID uint, sku, batchNo string, userID uint) (*models.BinMapping, error) {
	var count int64
	if err := database.DB.Model(&models.BinMapping{}).
		Where("bin_id = ? AND sku = ? AND batch_no = ?", binID, sku, batchNo).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not check for duplicates")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "This SKU and batch number already mapped to this bin location")
	}

	mapping := models.BinMapping{
		BinID:   binID,
		Sku:     sku,
		BatchNo: batchNo,
		UserID:  userID,
	}
	if err := database.DB.Create(&mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "This SKU and batch number already mapped to this bin location")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not create bin mapping")
	}
	return &mapping, nil
}

// ScanLabelHandler maps a scanned |SKU|batchNumber| label to a bin.
func ScanLabelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body ScanLabelRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.BinID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bin id is required")
		}

		sku, batchNo, err := scan.ParseLabel(body.ScannedData)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid label format. Expected: |SKU|batchNumber|")
		}

		mapping, err := createMapping(body.BinID, sku, batchNo, userID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(mappingResponse(mapping))
	}
}

func CreateBinMappingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateBinMappingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Sku = strings.TrimSpace(body.Sku)
		body.BatchNo = strings.TrimSpace(body.BatchNo)
		if body.BinID == 0 || body.Sku == "" || body.BatchNo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Bin id, SKU and batch number are required")
		}

		mapping, err := createMapping(body.BinID, body.Sku, body.BatchNo, userID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(mappingResponse(mapping))
	}
}

func DeleteBinMappingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var mapping models.BinMapping
		if err := database.DB.First(&mapping, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bin mapping not found")
		}

		if err := database.DB.Delete(&mapping).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete bin mapping")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
