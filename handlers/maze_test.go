package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	InitMazeGenerator()

	app := fiber.New()
	app.Post("/api/mazes/generate", HandleGenerateMazes)
	app.Get("/api/mazes", HandleListMazes)
	app.Get("/api/mazes/:name", HandleLoadMaze)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestHandleGenerateMazes(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()

	payload := fmt.Sprintf(`{"num_mazes": 2, "num_walls": 3, "folder": %q, "seed": 42}`, dir)
	req := httptest.NewRequest("POST", "/api/mazes/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, dir, body["folder"])
}

func TestHandleGenerateMazesBadBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/mazes/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleListMazes(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()

	payload := fmt.Sprintf(`{"num_mazes": 1, "num_walls": 2, "folder": %q}`, dir)
	req := httptest.NewRequest("POST", "/api/mazes/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/mazes?folder="+dir, nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(1), body["count"])
	files, ok := body["files"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "maze_1.json", files[0])
}

func TestHandleLoadMaze(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()

	payload := fmt.Sprintf(`{"num_mazes": 1, "num_walls": 2, "folder": %q}`, dir)
	req := httptest.NewRequest("POST", "/api/mazes/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/mazes/maze_1.json?folder="+dir+"&robot=panda", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	maze, ok := body["maze"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "maze_1.json", maze["file"])
	assert.Equal(t, float64(16), maze["size"])

	robot, ok := body["robot"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "panda", robot["model"])
}

func TestHandleLoadMazeNotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/mazes/missing.json?folder="+t.TempDir(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleLoadMazeRejectsTraversal(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/mazes/..%2Fsecret.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
