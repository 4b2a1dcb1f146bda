package dashboard

import (
	"math"
	"sort"

	"stockcount-backend/internal/models"
)

// Status labels at warehouse/location level.
const (
	StatusNoData     = "no baseline data"
	StatusNotStarted = "not started"
	StatusComplete   = "fully counted"
	StatusInProgress = "in progress"
)

// NoLocationLabel is the bucket for baseline rows without a bin.
const NoLocationLabel = "No Location"

type WarehouseStat struct {
	TotalItems       int
	CountedItems     int
	VarianceItems    int
	TotalLocations   int
	CountedLocations int
}

type LocationStat struct {
	BinID         uint
	BinLocation   string
	TotalItems    int
	CountedItems  int
	VarianceItems int
}

type VarianceDetail struct {
	Sku                string
	BatchNo            *string
	BinLocation        string
	FreezeQty          float64
	CountQty           float64
	Variance           float64
	VariancePercentage float64
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// matches reports whether a counting row is the count of the given baseline
// row. Nulls match nulls on bin and batch, which deliberately differs from SQL
// null semantics.
func matches(f *models.FreezeData, c *models.Counting) bool {
	return c.WhsID == f.WhsID &&
		uintPtrEqual(c.BinID, f.BinID) &&
		c.Sku == f.Sku &&
		strPtrEqual(c.BatchNo, f.BatchNo)
}

// findMatch returns the first counting row matching the baseline row, or nil.
func findMatch(f *models.FreezeData, counts []models.Counting) *models.Counting {
	for i := range counts {
		if matches(f, &counts[i]) {
			return &counts[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProgressPercentage is counted/total as a percentage, 2 decimals, 0 when the
// baseline is empty.
func ProgressPercentage(counted, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(counted) / float64(total) * 100)
}

func WarehouseStatus(total, counted int) string {
	switch {
	case total == 0:
		return StatusNoData
	case counted == 0:
		return StatusNotStarted
	case counted == total:
		return StatusComplete
	default:
		return StatusInProgress
	}
}

func OverallStatus(progress float64) string {
	switch {
	case progress == 0:
		return StatusNotStarted
	case progress == 100:
		return "completed"
	default:
		return StatusInProgress
	}
}

// ComputeWarehouseStat aggregates one warehouse's baseline against its
// counting rows. Both slices must already be filtered to the warehouse.
func ComputeWarehouseStat(freeze []models.FreezeData, counts []models.Counting) WarehouseStat {
	stat := WarehouseStat{TotalItems: len(freeze)}

	totalBins := make(map[uint]struct{})
	countedBins := make(map[uint]struct{})

	for i := range freeze {
		f := &freeze[i]

		if match := findMatch(f, counts); match != nil {
			stat.CountedItems++
			if match.Qty != f.Qty {
				stat.VarianceItems++
			}
		}

		if f.BinID == nil {
			continue
		}
		totalBins[*f.BinID] = struct{}{}

		// A location counts as visited when any count exists for it,
		// regardless of sku/batch or quantity match.
		for j := range counts {
			c := &counts[j]
			if c.WhsID == f.WhsID && uintPtrEqual(c.BinID, f.BinID) {
				countedBins[*f.BinID] = struct{}{}
				break
			}
		}
	}

	stat.TotalLocations = len(totalBins)
	stat.CountedLocations = len(countedBins)
	return stat
}

// ComputeLocationStats groups one warehouse's baseline by bin (null bin under
// the "No Location" bucket) and aggregates each group independently. Result is
// sorted by bin label ascending.
func ComputeLocationStats(freeze []models.FreezeData, counts []models.Counting, binLabels map[uint]string) []LocationStat {
	groups := make(map[uint][]*models.FreezeData)
	for i := range freeze {
		key := uint(0)
		if freeze[i].BinID != nil {
			key = *freeze[i].BinID
		}
		groups[key] = append(groups[key], &freeze[i])
	}

	stats := make([]LocationStat, 0, len(groups))
	for binID, rows := range groups {
		label := NoLocationLabel
		if binID != 0 {
			var ok bool
			if label, ok = binLabels[binID]; !ok {
				label = "Unknown"
			}
		}

		stat := LocationStat{
			BinID:       binID,
			BinLocation: label,
			TotalItems:  len(rows),
		}
		for _, f := range rows {
			if match := findMatch(f, counts); match != nil {
				stat.CountedItems++
				if match.Qty != f.Qty {
					stat.VarianceItems++
				}
			}
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].BinLocation < stats[j].BinLocation
	})
	return stats
}

// ComputeVarianceDetails lists every matched baseline/counting pair whose
// quantities disagree, sorted by absolute variance descending.
func ComputeVarianceDetails(freeze []models.FreezeData, counts []models.Counting, binLabels map[uint]string) []VarianceDetail {
	details := make([]VarianceDetail, 0)

	for i := range freeze {
		f := &freeze[i]
		match := findMatch(f, counts)
		if match == nil || match.Qty == f.Qty {
			continue
		}

		label := NoLocationLabel
		if f.BinID != nil {
			var ok bool
			if label, ok = binLabels[*f.BinID]; !ok {
				label = "Unknown"
			}
		}

		detail := VarianceDetail{
			Sku:         f.Sku,
			BatchNo:     f.BatchNo,
			BinLocation: label,
			FreezeQty:   f.Qty,
			CountQty:    match.Qty,
			Variance:    math.Abs(match.Qty - f.Qty),
		}
		if f.Qty > 0 {
			detail.VariancePercentage = round2(math.Abs((match.Qty - f.Qty) / f.Qty * 100))
		}
		details = append(details, detail)
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Variance > details[j].Variance
	})
	return details
}
