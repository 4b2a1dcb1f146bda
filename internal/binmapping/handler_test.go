package binmapping_test

import (
	"net/http"
	"testing"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCreatesMapping(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	user, token := testutil.CreateUser(t, cfg, "scanner", models.RoleStaff)

	var res map[string]any
	resp := testutil.Request(t, app, "POST", "/api/bin-mappings/scan", token,
		map[string]any{"binId": 1, "scannedData": "|SKU1|BATCH1|"}, &res)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SKU1", res["sku"])
	assert.Equal(t, "BATCH1", res["batchNo"])
	assert.Equal(t, float64(user.ID), res["userId"])

	var count int64
	database.DB.Model(&models.BinMapping{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestScanDuplicateConflicts(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "scanner", models.RoleStaff)

	body := map[string]any{"binId": 1, "scannedData": "|SKU1|BATCH1|"}
	resp := testutil.Request(t, app, "POST", "/api/bin-mappings/scan", token, body, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutil.Request(t, app, "POST", "/api/bin-mappings/scan", token, body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	database.DB.Model(&models.BinMapping{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestScanMalformedLabel(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "scanner", models.RoleStaff)

	for _, raw := range []string{"|SKU1|", "", "|||", "no-pipes-here"} {
		resp := testutil.Request(t, app, "POST", "/api/bin-mappings/scan", token,
			map[string]any{"binId": 1, "scannedData": raw}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "raw=%q", raw)
	}

	var count int64
	database.DB.Model(&models.BinMapping{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListFilterByBin(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	user, token := testutil.CreateUser(t, cfg, "scanner", models.RoleStaff)

	require.NoError(t, database.DB.Create(&models.BinMapping{BinID: 1, Sku: "A", BatchNo: "B1", UserID: user.ID}).Error)
	require.NoError(t, database.DB.Create(&models.BinMapping{BinID: 2, Sku: "A", BatchNo: "B1", UserID: user.ID}).Error)

	var res []map[string]any
	resp := testutil.Request(t, app, "GET", "/api/bin-mappings?binId=2", token, nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, res, 1)
	assert.Equal(t, float64(2), res[0]["binId"])
}
