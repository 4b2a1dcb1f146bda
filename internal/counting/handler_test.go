package counting_test

import (
	"fmt"
	"net/http"
	"testing"

	"stockcount-backend/internal/database"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMasterData(t *testing.T) (whs models.WhsGroup, person models.CountPerson) {
	t.Helper()
	whs = models.WhsGroup{WhsName: "WH-A"}
	require.NoError(t, database.DB.Create(&whs).Error)
	person = models.CountPerson{FullName: "Counter One"}
	require.NoError(t, database.DB.Create(&person).Error)
	return whs, person
}

func TestCreateCounting(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	user, token := testutil.CreateUser(t, cfg, "staff1", models.RoleStaff)
	whs, person := seedMasterData(t)

	var res map[string]any
	resp := testutil.Request(t, app, "POST", "/api/counting", token, map[string]any{
		"whsId":         whs.ID,
		"sku":           "SKU1",
		"batchNo":       "BATCH1",
		"qty":           12.5,
		"countPersonId": person.ID,
	}, &res)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SKU1", res["sku"])
	assert.Equal(t, 12.5, res["qty"])
	assert.Equal(t, float64(user.ID), res["scanPersonId"])
	assert.Equal(t, user.FullName, res["scanPersonName"])
	assert.Nil(t, res["updatedAt"])
}

func TestCreateCountingDuplicateNamesExistingID(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "staff1", models.RoleStaff)
	whs, person := seedMasterData(t)

	body := map[string]any{
		"whsId":         whs.ID,
		"sku":           "SKU1",
		"batchNo":       "BATCH1",
		"qty":           5,
		"countPersonId": person.ID,
	}

	var first map[string]any
	resp := testutil.Request(t, app, "POST", "/api/counting", token, body, &first)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	existingID := uint(first["id"].(float64))

	var conflict map[string]any
	resp = testutil.Request(t, app, "POST", "/api/counting", token, body, &conflict)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, conflict["error"], fmt.Sprintf("ID: %d", existingID))

	var count int64
	database.DB.Model(&models.Counting{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCountingValidatesReferences(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "staff1", models.RoleStaff)
	whs, person := seedMasterData(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"unknown warehouse", fiber.Map{"whsId": 999, "sku": "S", "qty": 1, "countPersonId": person.ID}},
		{"unknown bin", fiber.Map{"whsId": whs.ID, "binId": 999, "sku": "S", "qty": 1, "countPersonId": person.ID}},
		{"unknown count person", fiber.Map{"whsId": whs.ID, "sku": "S", "qty": 1, "countPersonId": 999}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Request(t, app, "POST", "/api/counting", token, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestUpdateCountingStampsUpdater(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "staff1", models.RoleStaff)
	editor, editorToken := testutil.CreateUser(t, cfg, "staff2", models.RoleStaff)
	whs, person := seedMasterData(t)

	var created map[string]any
	resp := testutil.Request(t, app, "POST", "/api/counting", token, map[string]any{
		"whsId":         whs.ID,
		"sku":           "SKU1",
		"qty":           5,
		"countPersonId": person.ID,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int(created["id"].(float64))

	var updated map[string]any
	resp = testutil.Request(t, app, "PUT", fmt.Sprintf("/api/counting/%d", id), editorToken,
		map[string]any{"qty": 7}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 7.0, updated["qty"])
	assert.Equal(t, float64(editor.ID), updated["updatedBy"])
	assert.Equal(t, editor.FullName, updated["updatedByName"])
	assert.NotNil(t, updated["updatedAt"])

	// Only the quantity is writable through update.
	assert.Equal(t, "SKU1", updated["sku"])
}

func TestUpdateCountingNotFound(t *testing.T) {
	app, cfg := testutil.NewApp(t)
	_, token := testutil.CreateUser(t, cfg, "staff1", models.RoleStaff)

	resp := testutil.Request(t, app, "PUT", "/api/counting/999", token, map[string]any{"qty": 7}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
