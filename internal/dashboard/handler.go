package dashboard

import (
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type warehouseStatResponse struct {
	WhsID              uint    `json:"whsId"`
	WhsName            string  `json:"whsName"`
	TotalItems         int     `json:"totalItems"`
	CountedItems       int     `json:"countedItems"`
	VarianceItems      int     `json:"varianceItems"`
	ProgressPercentage float64 `json:"progressPercentage"`
	TotalLocations     int     `json:"totalLocations"`
	CountedLocations   int     `json:"countedLocations"`
	Status             string  `json:"status"`
}

type locationStatResponse struct {
	BinID              uint    `json:"binId"`
	BinLocation        string  `json:"binLocation"`
	TotalItems         int     `json:"totalItems"`
	CountedItems       int     `json:"countedItems"`
	VarianceItems      int     `json:"varianceItems"`
	ProgressPercentage float64 `json:"progressPercentage"`
	Status             string  `json:"status"`
}

type varianceDetailResponse struct {
	Sku                string  `json:"sku"`
	BatchNo            *string `json:"batchNo"`
	BinLocation        string  `json:"binLocation"`
	FreezeQty          float64 `json:"freezeQty"`
	CountQty           float64 `json:"countQty"`
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variancePercentage"`
}

func binLabelMap(locations []models.Location) map[uint]string {
	labels := make(map[uint]string, len(locations))
	for _, l := range locations {
		labels[l.ID] = l.BinLocation
	}
	return labels
}

func filterByWarehouse[T any](items []T, whsID func(*T) uint, id uint) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if whsID(&items[i]) == id {
			out = append(out, items[i])
		}
	}
	return out
}

// StatisticsHandler: GET /api/dashboard/statistics — company-wide progress
// plus one aggregate row per warehouse.
func StatisticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var freeze []models.FreezeData
		if err := database.DB.Find(&freeze).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load freeze data")
		}
		var counts []models.Counting
		if err := database.DB.Find(&counts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load counting records")
		}
		var warehouses []models.WhsGroup
		if err := database.DB.Find(&warehouses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load warehouses")
		}

		totalCounted := 0
		for i := range freeze {
			if findMatch(&freeze[i], counts) != nil {
				totalCounted++
			}
		}
		overallProgress := ProgressPercentage(totalCounted, len(freeze))

		warehouseStats := make([]warehouseStatResponse, 0, len(warehouses))
		for _, whs := range warehouses {
			whsFreeze := filterByWarehouse(freeze, func(f *models.FreezeData) uint { return f.WhsID }, whs.ID)
			whsCounts := filterByWarehouse(counts, func(c *models.Counting) uint { return c.WhsID }, whs.ID)

			stat := ComputeWarehouseStat(whsFreeze, whsCounts)
			warehouseStats = append(warehouseStats, warehouseStatResponse{
				WhsID:              whs.ID,
				WhsName:            whs.WhsName,
				TotalItems:         stat.TotalItems,
				CountedItems:       stat.CountedItems,
				VarianceItems:      stat.VarianceItems,
				ProgressPercentage: ProgressPercentage(stat.CountedItems, stat.TotalItems),
				TotalLocations:     stat.TotalLocations,
				CountedLocations:   stat.CountedLocations,
				Status:             WarehouseStatus(stat.TotalItems, stat.CountedItems),
			})
		}

		return c.JSON(fiber.Map{
			"overall": fiber.Map{
				"totalFreezeItems":   len(freeze),
				"totalCountedItems":  totalCounted,
				"progressPercentage": overallProgress,
				"status":             OverallStatus(overallProgress),
			},
			"warehouses": warehouseStats,
		})
	}
}

// WarehouseDetailHandler: GET /api/dashboard/warehouse/:whsId — per-location
// breakdown and variance list for one warehouse.
func WarehouseDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		whsID := c.Params("whsId")

		var warehouse models.WhsGroup
		if err := database.DB.First(&warehouse, "id = ?", whsID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		var freeze []models.FreezeData
		if err := database.DB.Where("whs_id = ?", warehouse.ID).Find(&freeze).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load freeze data")
		}
		var counts []models.Counting
		if err := database.DB.Where("whs_id = ?", warehouse.ID).Find(&counts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load counting records")
		}
		var locations []models.Location
		if err := database.DB.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load locations")
		}
		labels := binLabelMap(locations)

		locStats := ComputeLocationStats(freeze, counts, labels)
		locRes := make([]locationStatResponse, 0, len(locStats))
		for _, loc := range locStats {
			locRes = append(locRes, locationStatResponse{
				BinID:              loc.BinID,
				BinLocation:        loc.BinLocation,
				TotalItems:         loc.TotalItems,
				CountedItems:       loc.CountedItems,
				VarianceItems:      loc.VarianceItems,
				ProgressPercentage: ProgressPercentage(loc.CountedItems, loc.TotalItems),
				Status:             WarehouseStatus(loc.TotalItems, loc.CountedItems),
			})
		}

		details := ComputeVarianceDetails(freeze, counts, labels)
		varRes := make([]varianceDetailResponse, 0, len(details))
		for _, d := range details {
			varRes = append(varRes, varianceDetailResponse{
				Sku:                d.Sku,
				BatchNo:            d.BatchNo,
				BinLocation:        d.BinLocation,
				FreezeQty:          d.FreezeQty,
				CountQty:           d.CountQty,
				Variance:           d.Variance,
				VariancePercentage: d.VariancePercentage,
			})
		}

		return c.JSON(fiber.Map{
			"warehouse": fiber.Map{
				"whsId":   warehouse.ID,
				"whsName": warehouse.WhsName,
			},
			"locations": locRes,
			"variances": varRes,
		})
	}
}
