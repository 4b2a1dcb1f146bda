package freezedata_test

import (
	"net/http"
	"testing"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCreatesBaseline(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "boss", models.RoleAdmin)

	var res map[string]any
	resp := testutil.Request(t, app, "POST", "/api/freeze-data/import", token, map[string]any{
		"whsId":      1,
		"tsvContent": "SKU\tBatch\tQty\nSKU1\tBATCH1\t10.5\nSKU2\tBATCH2\t3",
	}, &res)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Import completed", res["message"])
	assert.Equal(t, 2.0, res["importedCount"])
	assert.Equal(t, 0.0, res["deletedCount"])
	assert.Nil(t, res["errors"])

	var count int64
	database.DB.Model(&models.FreezeData{}).Where("whs_id = ?", 1).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestImportReplacesPreviousBaseline(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "boss", models.RoleAdmin)

	resp := testutil.Request(t, app, "POST", "/api/freeze-data/import", token, map[string]any{
		"whsId":      1,
		"tsvContent": "header\nOLD\tBATCH\t1",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]any
	resp = testutil.Request(t, app, "POST", "/api/freeze-data/import", token, map[string]any{
		"whsId":      1,
		"tsvContent": "header\nNEW\tBATCH\t2",
	}, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, res["deletedCount"])
	assert.Equal(t, 1.0, res["importedCount"])

	var rows []models.FreezeData
	require.NoError(t, database.DB.Where("whs_id = ?", 1).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "NEW", rows[0].Sku)
}

func TestImportReportsLineErrors(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "boss", models.RoleAdmin)

	var res map[string]any
	resp := testutil.Request(t, app, "POST", "/api/freeze-data/import", token, map[string]any{
		"whsId":      1,
		"tsvContent": "header\nSKU1\tBATCH1\t10\nSKU2\tBATCH2\tnope",
	}, &res)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, res["importedCount"])

	errs, ok := res["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Line 3")
}

func TestImportRequiresWarehouse(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "boss", models.RoleAdmin)

	resp := testutil.Request(t, app, "POST", "/api/freeze-data/import", token,
		map[string]any{"tsvContent": "header\nSKU1\tB\t1"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportIsAdminOnly(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "clerk", models.RoleStaff)

	resp := testutil.Request(t, app, "POST", "/api/freeze-data/import", token, map[string]any{
		"whsId":      1,
		"tsvContent": "header\nSKU1\tB\t1",
	}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteByWarehouse(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "boss", models.RoleAdmin)

	require.NoError(t, database.DB.Create(&models.FreezeData{WhsID: 1, Sku: "A", Qty: 1}).Error)

	var res map[string]any
	resp := testutil.Request(t, app, "DELETE", "/api/freeze-data/warehouse/1", token, nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, res["deletedCount"])

	// Nothing left to delete for this warehouse.
	resp = testutil.Request(t, app, "DELETE", "/api/freeze-data/warehouse/1", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
