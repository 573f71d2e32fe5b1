package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"server/config"
	"server/internal/app"
	draftController "server/internal/controllers/drafts"
	"server/internal/handlers/middleware"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRowStore struct {
	rows [][]interface{}
}

func (m *memoryRowStore) Append(ctx context.Context, sheet string, rows [][]interface{}) error {
	m.rows = append(m.rows, rows...)
	return nil
}

func (m *memoryRowStore) ReadAll(ctx context.Context, sheet string) ([][]interface{}, error) {
	return m.rows, nil
}

func (m *memoryRowStore) DeleteRow(ctx context.Context, sheetID int64, rowIndex int64) error {
	m.rows = append(m.rows[:rowIndex], m.rows[rowIndex+1:]...)
	return nil
}

func newDraftTestApp(store *memoryRowStore) *fiber.App {
	store.rows = [][]interface{}{make([]interface{}, 29)} // header row

	repo := repositories.NewDraft(store, "Borrador", 0)
	application := app.App{
		Config:          config.Config{SheetDrafts: "Borrador"},
		Middleware:      middleware.New(config.Config{}),
		DraftController: draftController.New(repo),
	}

	server := fiber.New()
	api := server.Group("/api")
	NewDraftHandler(application, api).Register()

	return server
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&decoded))
	return decoded
}

func TestSaveDraft(t *testing.T) {
	store := &memoryRowStore{}
	server := newDraftTestApp(store)

	payload := `{"draftId":"ana-5551234","nombre":"Ana","apellidos":"Ruiz","telefono":"555-1234"}`
	request := httptest.NewRequest(fiber.MethodPost, "/api/save-draft", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	response, err := server.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body := decodeBody(t, response.Body)
	assert.Equal(t, "ana-5551234", body["draftId"])
	assert.NotEmpty(t, body["timestamp"])

	require.Len(t, store.rows, 2) // header + draft
}

func TestSaveDraft_MissingDraftID(t *testing.T) {
	server := newDraftTestApp(&memoryRowStore{})

	request := httptest.NewRequest(fiber.MethodPost, "/api/save-draft", strings.NewReader(`{"nombre":"Ana"}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := server.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestListDrafts_Empty(t *testing.T) {
	server := newDraftTestApp(&memoryRowStore{})

	response, err := server.Test(httptest.NewRequest(fiber.MethodGet, "/api/list-drafts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body := decodeBody(t, response.Body)
	assert.Equal(t, "No hay borradores guardados", body["message"])
	assert.Equal(t, float64(0), body["total"])
}

func TestLoadDraft_RoundTrip(t *testing.T) {
	store := &memoryRowStore{}
	server := newDraftTestApp(store)

	payload := `{"draftId":"ana-5551234","nombre":"Ana","extraField":"kept"}`
	request := httptest.NewRequest(fiber.MethodPost, "/api/save-draft", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	_, err := server.Test(request)
	require.NoError(t, err)

	response, err := server.Test(httptest.NewRequest(fiber.MethodGet, "/api/load-draft/ana-5551234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body := decodeBody(t, response.Body)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Ana", data["nombre"])
	// Unknown fields survive the round trip because the raw payload is
	// what gets persisted.
	assert.Equal(t, "kept", data["extraField"])
}

func TestLoadDraft_NotFound(t *testing.T) {
	server := newDraftTestApp(&memoryRowStore{})

	response, err := server.Test(httptest.NewRequest(fiber.MethodGet, "/api/load-draft/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestDeleteDraft(t *testing.T) {
	store := &memoryRowStore{}
	server := newDraftTestApp(store)

	payload := `{"draftId":"ana-5551234","nombre":"Ana"}`
	request := httptest.NewRequest(fiber.MethodPost, "/api/save-draft", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	_, err := server.Test(request)
	require.NoError(t, err)

	response, err := server.Test(httptest.NewRequest(fiber.MethodDelete, "/api/delete-draft/ana-5551234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	require.Len(t, store.rows, 1) // only the header remains

	response, err = server.Test(httptest.NewRequest(fiber.MethodDelete, "/api/delete-draft/ana-5551234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}
