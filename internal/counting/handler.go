package counting

import (
	"errors"
	"fmt"
	"time"

	"stockcount-backend/internal/auth"
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CountingResponse struct {
	ID             uint    `json:"id"`
	WhsID          uint    `json:"whsId"`
	BinID          *uint   `json:"binId"`
	Sku            string  `json:"sku"`
	BatchNo        *string `json:"batchNo"`
	Qty            float64 `json:"qty"`
	CountPersonID  uint    `json:"countPersonId"`
	ScanPersonID   uint    `json:"scanPersonId"`
	ScanPersonName string  `json:"scanPersonName"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      *string `json:"updatedAt"`
	UpdatedBy      *uint   `json:"updatedBy"`
	UpdatedByName  *string `json:"updatedByName"`
}

type CreateCountingRequest struct {
	WhsID         uint    `json:"whsId"`
	BinID         *uint   `json:"binId"`
	Sku           string  `json:"sku"`
	BatchNo       *string `json:"batchNo"`
	Qty           float64 `json:"qty"`
	CountPersonID uint    `json:"countPersonId"`
}

type UpdateCountingRequest struct {
	Qty float64 `json:"qty"`
}

// userNames resolves user ids to full names in one query.
func userNames(ids []uint) map[uint]string {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	var users []models.User
	if err := database.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return names
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names
}

func countingResponse(rec *models.Counting, names map[uint]string) CountingResponse {
	res := CountingResponse{
		ID:             rec.ID,
		WhsID:          rec.WhsID,
		BinID:          rec.BinID,
		Sku:            rec.Sku,
		BatchNo:        rec.BatchNo,
		Qty:            rec.Qty,
		CountPersonID:  rec.CountPersonID,
		ScanPersonID:   rec.ScanPersonID,
		ScanPersonName: names[rec.ScanPersonID],
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedBy:      rec.UpdatedBy,
	}
	if rec.UpdatedAt != nil {
		s := rec.UpdatedAt.Format("2006-01-02 15:04:05")
		res.UpdatedAt = &s
	}
	if rec.UpdatedBy != nil {
		if name, ok := names[*rec.UpdatedBy]; ok {
			res.UpdatedByName = &name
		}
	}
	return res
}

func nameIDs(records []models.Counting) []uint {
	ids := make([]uint, 0, len(records)*2)
	for _, rec := range records {
		ids = append(ids, rec.ScanPersonID)
		if rec.UpdatedBy != nil {
			ids = append(ids, *rec.UpdatedBy)
		}
	}
	return ids
}

func ListCountingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Counting{})

		if whsID := c.QueryInt("whsId", 0); whsID > 0 {
			query = query.Where("whs_id = ?", whsID)
		}
		if binID := c.QueryInt("binId", 0); binID > 0 {
			query = query.Where("bin_id = ?", binID)
		}

		var records []models.Counting
		if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list counting records")
		}

		names := userNames(nameIDs(records))
		res := make([]CountingResponse, 0, len(records))
		for i := range records {
			res = append(res, countingResponse(&records[i], names))
		}
		return c.JSON(res)
	}
}

func GetCountingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var rec models.Counting
		if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Counting record not found")
		}

		names := userNames(nameIDs([]models.Counting{rec}))
		return c.JSON(countingResponse(&rec, names))
	}
}

func CreateCountingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scanPersonID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateCountingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Sku == "" {
			return fiber.NewError(fiber.StatusBadRequest, "SKU is required")
		}

		var whsCount int64
		database.DB.Model(&models.WhsGroup{}).Where("id = ?", body.WhsID).Count(&whsCount)
		if whsCount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse not found")
		}

		if body.BinID != nil {
			var binCount int64
			database.DB.Model(&models.Location{}).Where("id = ?", *body.BinID).Count(&binCount)
			if binCount == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Bin location not found")
			}
		}

		var personCount int64
		database.DB.Model(&models.CountPerson{}).Where("id = ?", body.CountPersonID).Count(&personCount)
		if personCount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Count person not found")
		}

		// One count per (warehouse, sku, batch). Batch comparison must treat
		// NULL as equal to NULL, so the query branches on the pointer.
		dupQuery := database.DB.Where("whs_id = ? AND sku = ?", body.WhsID, body.Sku)
		if body.BatchNo == nil {
			dupQuery = dupQuery.Where("batch_no IS NULL")
		} else {
			dupQuery = dupQuery.Where("batch_no = ?", *body.BatchNo)
		}
		var duplicate models.Counting
		if err := dupQuery.First(&duplicate).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, duplicateMessage(body.Sku, body.BatchNo, duplicate.ID))
		}

		rec := models.Counting{
			WhsID:         body.WhsID,
			BinID:         body.BinID,
			Sku:           body.Sku,
			BatchNo:       body.BatchNo,
			Qty:           body.Qty,
			CountPersonID: body.CountPersonID,
			ScanPersonID:  scanPersonID,
		}
		if err := database.DB.Create(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Duplicate counting record, please check")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create counting record")
		}

		names := userNames([]uint{rec.ScanPersonID})
		return c.Status(fiber.StatusCreated).JSON(countingResponse(&rec, names))
	}
}

func duplicateMessage(sku string, batchNo *string, existingID uint) string {
	batch := "(none)"
	if batchNo != nil {
		batch = *batchNo
	}
	return fmt.Sprintf("SKU '%s' Batch '%s' already counted (ID: %d)", sku, batch, existingID)
}

// UpdateCountingHandler changes the quantity only and records who did it.
func UpdateCountingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		updatedBy, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var rec models.Counting
		if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Counting record not found")
		}

		var body UpdateCountingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		now := time.Now()
		rec.Qty = body.Qty
		rec.UpdatedAt = &now
		rec.UpdatedBy = &updatedBy
		if err := database.DB.Save(&rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update counting record")
		}

		names := userNames(nameIDs([]models.Counting{rec}))
		return c.JSON(countingResponse(&rec, names))
	}
}

func DeleteCountingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var rec models.Counting
		if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Counting record not found")
		}

		if err := database.DB.Delete(&rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete counting record")
		}
		return c.JSON(fiber.Map{"message": "Counting record deleted successfully"})
	}
}
