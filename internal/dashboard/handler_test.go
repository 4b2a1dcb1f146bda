package dashboard_test

import (
	"fmt"
	"net/http"
	"testing"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "clerk", models.RoleStaff)

	var res map[string]any
	resp := testutil.Request(t, app, "GET", "/api/dashboard/statistics", token, nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	overall := res["overall"].(map[string]any)
	assert.Equal(t, 0.0, overall["totalFreezeItems"])
	assert.Equal(t, 0.0, overall["progressPercentage"])
	assert.Equal(t, "not started", overall["status"])
}

func TestStatisticsPerWarehouse(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	user, token := testutil.CreateUser(t, cfg, "clerk", models.RoleStaff)

	whs := models.WhsGroup{WhsName: "WH-A"}
	require.NoError(t, database.DB.Create(&whs).Error)
	person := models.CountPerson{FullName: "Counter"}
	require.NoError(t, database.DB.Create(&person).Error)

	require.NoError(t, database.DB.Create(&models.FreezeData{WhsID: whs.ID, Sku: "A", Qty: 10}).Error)
	require.NoError(t, database.DB.Create(&models.FreezeData{WhsID: whs.ID, Sku: "B", Qty: 5}).Error)
	require.NoError(t, database.DB.Create(&models.Counting{
		WhsID: whs.ID, Sku: "A", Qty: 8, CountPersonID: person.ID, ScanPersonID: user.ID,
	}).Error)

	var res map[string]any
	resp := testutil.Request(t, app, "GET", "/api/dashboard/statistics", token, nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	overall := res["overall"].(map[string]any)
	assert.Equal(t, 2.0, overall["totalFreezeItems"])
	assert.Equal(t, 1.0, overall["totalCountedItems"])
	assert.Equal(t, 50.0, overall["progressPercentage"])
	assert.Equal(t, "in progress", overall["status"])

	warehouses := res["warehouses"].([]any)
	require.Len(t, warehouses, 1)
	stat := warehouses[0].(map[string]any)
	assert.Equal(t, "WH-A", stat["whsName"])
	assert.Equal(t, 1.0, stat["countedItems"])
	assert.Equal(t, 1.0, stat["varianceItems"])
	assert.Equal(t, "in progress", stat["status"])
}

func TestWarehouseDetail(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	user, token := testutil.CreateUser(t, cfg, "clerk", models.RoleStaff)

	whs := models.WhsGroup{WhsName: "WH-A"}
	require.NoError(t, database.DB.Create(&whs).Error)
	bin := models.Location{WhsID: whs.ID, BinLocation: "A-01"}
	require.NoError(t, database.DB.Create(&bin).Error)
	person := models.CountPerson{FullName: "Counter"}
	require.NoError(t, database.DB.Create(&person).Error)

	require.NoError(t, database.DB.Create(&models.FreezeData{WhsID: whs.ID, BinID: &bin.ID, Sku: "A", Qty: 10}).Error)
	require.NoError(t, database.DB.Create(&models.Counting{
		WhsID: whs.ID, BinID: &bin.ID, Sku: "A", Qty: 8, CountPersonID: person.ID, ScanPersonID: user.ID,
	}).Error)

	var res map[string]any
	resp := testutil.Request(t, app, "GET", fmt.Sprintf("/api/dashboard/warehouse/%d", whs.ID), token, nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	locations := res["locations"].([]any)
	require.Len(t, locations, 1)
	loc := locations[0].(map[string]any)
	assert.Equal(t, "A-01", loc["binLocation"])
	assert.Equal(t, 1.0, loc["countedItems"])

	variances := res["variances"].([]any)
	require.Len(t, variances, 1)
	v := variances[0].(map[string]any)
	assert.Equal(t, "A", v["sku"])
	assert.Equal(t, 2.0, v["variance"])
	assert.Equal(t, 20.0, v["variancePercentage"])
}

func TestWarehouseDetailUnknownWarehouse(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "clerk", models.RoleStaff)

	resp := testutil.Request(t, app, "GET", "/api/dashboard/warehouse/999", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
