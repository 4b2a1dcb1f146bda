package freezedata

import (
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FreezeDataResponse struct {
	ID        uint    `json:"id"`
	WhsID     uint    `json:"whsId"`
	BinID     *uint   `json:"binId"`
	Sku       string  `json:"sku"`
	BatchNo   *string `json:"batchNo"`
	Qty       float64 `json:"qty"`
	Uom       string  `json:"uom"`
	UnitPrice float64 `json:"unitPrice"`
	CreatedAt string  `json:"createdAt"`
}

type ImportRequest struct {
	WhsID      uint   `json:"whsId"`
	TsvContent string `json:"tsvContent"`
}

func freezeResponse(f *models.FreezeData) FreezeDataResponse {
	return FreezeDataResponse{
		ID:        f.ID,
		WhsID:     f.WhsID,
		BinID:     f.BinID,
		Sku:       f.Sku,
		BatchNo:   f.BatchNo,
		Qty:       f.Qty,
		Uom:       f.Uom,
		UnitPrice: f.UnitPrice,
		CreatedAt: f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListFreezeDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.FreezeData{})

		if whsID := c.QueryInt("whsId", 0); whsID > 0 {
			query = query.Where("whs_id = ?", whsID)
		}

		var data []models.FreezeData
		if err := query.Order("sku ASC, batch_no ASC").Find(&data).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list freeze data")
		}

		res := make([]FreezeDataResponse, 0, len(data))
		for i := range data {
			res = append(res, freezeResponse(&data[i]))
		}
		return c.JSON(res)
	}
}

func GetFreezeDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var data models.FreezeData
		if err := database.DB.First(&data, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Freeze data not found")
		}
		return c.JSON(freezeResponse(&data))
	}
}

// ImportFreezeDataHandler replaces a warehouse's entire baseline with the
// uploaded TSV. Delete and insert run in one transaction, so a failed import
// keeps the previous baseline.
func ImportFreezeDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ImportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.WhsID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse id is required")
		}

		rows, importErrors := ParseTSV(body.TsvContent)

		var deletedCount int64
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			result := tx.Where("whs_id = ?", body.WhsID).Delete(&models.FreezeData{})
			if result.Error != nil {
				return result.Error
			}
			deletedCount = result.RowsAffected

			for _, row := range rows {
				data := models.FreezeData{
					WhsID:     body.WhsID,
					Sku:       row.Sku,
					Qty:       row.Qty,
					Uom:       row.Uom,
					UnitPrice: row.UnitPrice,
				}
				if row.BatchNo != "" {
					batch := row.BatchNo
					data.BatchNo = &batch
				}
				if err := tx.Create(&data).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Import failed")
		}

		zap.L().Info("freeze data imported",
			zap.Uint("whs_id", body.WhsID),
			zap.Int("imported", len(rows)),
			zap.Int64("deleted", deletedCount),
			zap.Int("line_errors", len(importErrors)))

		var errs []string
		if len(importErrors) > 0 {
			errs = importErrors
		}
		return c.JSON(fiber.Map{
			"message":       "Import completed",
			"whsId":         body.WhsID,
			"importedCount": len(rows),
			"deletedCount":  deletedCount,
			"errors":        errs,
		})
	}
}

// DeleteByWarehouseHandler drops every baseline row for one warehouse.
func DeleteByWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		whsID := c.Params("whsId")

		result := database.DB.Where("whs_id = ?", whsID).Delete(&models.FreezeData{})
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete freeze data")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No freeze data found for this warehouse")
		}

		return c.JSON(fiber.Map{
			"message":      "Freeze data deleted successfully",
			"deletedCount": result.RowsAffected,
		})
	}
}

func DeleteFreezeDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var data models.FreezeData
		if err := database.DB.First(&data, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Freeze data not found")
		}

		if err := database.DB.Delete(&data).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete freeze data")
		}
		return c.JSON(fiber.Map{"message": "Freeze data deleted successfully"})
	}
}
