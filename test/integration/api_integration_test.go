package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuboard/internal/client"
	"menuboard/internal/handler"
	"menuboard/internal/model"
	"menuboard/internal/repository"
	"menuboard/internal/router"
	"menuboard/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer wires repository, service, handler and router over the test
// database and exposes them through an httptest server.
func startServer(t *testing.T, db *TestDB, prefix string) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	repo := repository.NewMenuItemRepository(db.Pool, logger)
	svc := service.NewMenuService(repo, logger)
	h := handler.NewMenuHandler(svc, logger)
	mux := router.New(h, router.Config{RoutePrefix: prefix}, logger)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func seedMenu(t *testing.T, db *TestDB, items []model.MenuItem) {
	t.Helper()

	repo := repository.NewMenuItemRepository(db.Pool, zerolog.Nop())
	require.NoError(t, repo.InsertMany(context.Background(), items))
}

func TestAPI_ListMenu(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	seeded := SampleMenu()
	seedMenu(t, db, seeded)
	server := startServer(t, db, "/api/menu")

	resp, err := http.Get(server.URL + "/api/menu")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []model.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)

	// Every field intact, no filtering or reordering beyond storage order
	byID := map[int64]model.MenuItem{}
	for _, item := range items {
		byID[item.ID] = item
	}
	for _, want := range seeded {
		got := byID[want.ID]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Image, got.Image)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Label, got.Label)
		assert.Equal(t, want.Price, got.Price)
		assert.Equal(t, want.Description, got.Description)
	}
}

func TestAPI_GetPrice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	seedMenu(t, db, SampleMenu())
	server := startServer(t, db, "/api/menu")

	t.Run("Existing item returns price only", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/menu/7")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body model.PriceResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "9.99", body.Price)
	})

	t.Run("Nonexistent id returns 404, never 200 or 500", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/menu/999")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body model.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Error)
	})
}

func TestAPI_UpdatePrice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	seedMenu(t, db, SampleMenu())
	server := startServer(t, db, "/api/menu")

	putPrice := func(t *testing.T, url, price string) *http.Response {
		payload, err := json.Marshal(model.UpdatePriceRequest{Price: price})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Update is visible in subsequent reads", func(t *testing.T) {
		resp := putPrice(t, server.URL+"/api/menu/7", "12.50")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		getResp, err := http.Get(server.URL + "/api/menu/7")
		require.NoError(t, err)
		defer getResp.Body.Close()

		var body model.PriceResponse
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&body))
		assert.Equal(t, "12.50", body.Price)

		// Other fields untouched
		listResp, err := http.Get(server.URL + "/api/menu")
		require.NoError(t, err)
		defer listResp.Body.Close()

		var items []model.MenuItem
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&items))
		for _, item := range items {
			if item.ID == 7 {
				assert.Equal(t, "Garlic Bread", item.Name)
				assert.Equal(t, "Starters", item.Category)
			}
		}
	})

	t.Run("Update with no matching id still succeeds", func(t *testing.T) {
		resp := putPrice(t, server.URL+"/api/menu/999", "12.50")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Non-numeric id matches nothing and succeeds", func(t *testing.T) {
		resp := putPrice(t, server.URL+"/api/menu/abc", "12.50")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

// The same binary serves the alternate route prefix the original project
// duplicated a whole server for.
func TestAPI_AlternatePrefix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	seedMenu(t, db, SampleMenu())
	server := startServer(t, db, "/restaurant/menu")

	resp, err := http.Get(server.URL + "/restaurant/menu")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []model.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 2)
}

// alertRecorder captures editor alerts.
type alertRecorder struct {
	alerts []string
}

func (a *alertRecorder) Alert(message string) {
	a.alerts = append(a.alerts, message)
}

// End-to-end edit workflow through the real client, service and store.
func TestAPI_EditWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	seedMenu(t, db, SampleMenu())
	server := startServer(t, db, "/api/menu")

	ctx := context.Background()
	logger := zerolog.Nop()
	api := client.New(server.URL, "/api/menu", logger)
	recorder := &alertRecorder{}
	editor := client.NewEditor(api, recorder, logger)

	require.NoError(t, editor.Refresh(ctx))

	t.Run("Unchanged price short-circuits before any write", func(t *testing.T) {
		require.True(t, editor.StartEdit(7))
		editor.Input("9.99")
		require.NoError(t, editor.Save(ctx))

		assert.Equal(t, []string{"Price is the same as before."}, recorder.alerts)

		price, err := api.GetPrice(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "9.99", price)
	})

	t.Run("Changed price commits and returns to viewing", func(t *testing.T) {
		recorder.alerts = nil

		editor.Input("12.50")
		require.NoError(t, editor.Save(ctx))

		assert.Equal(t, []string{"Price updated for item with ID => 7"}, recorder.alerts)

		_, editing := editor.Editing()
		assert.False(t, editing)

		price, err := api.GetPrice(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "12.50", price)
	})
}
