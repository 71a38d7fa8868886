package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/services"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

// 01:30 UTC on March 10 is still March 9 on the business calendar.
var testNow = time.Date(2026, time.March, 10, 1, 30, 0, 0, time.UTC)

const testBusinessDay = "2026-03-09"

type testAppOptions struct {
	accessKey string
	config    AppConfig
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithOptions(t, testAppOptions{})
}

func newTestAppWithOptions(t *testing.T, options testAppOptions) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "liftlog-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	var keyHash []byte
	if options.accessKey != "" {
		hash, err := services.HashAccessKey(options.accessKey)
		if err != nil {
			t.Fatalf("hash access key: %v", err)
		}
		keyHash = []byte(hash)
	}

	handler, err := NewHandler(database, HandlerOptions{
		AccessKeyHash: keyHash,
		SecretKey:     testSecretKey,
		Clock:         services.FixedClock(testNow),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return NewApp(handler, options.config), database
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(raw))
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := map[string]any{}
	decodeBody(t, response, &payload)
	message, _ := payload["error"].(string)
	return message
}

type createdResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

func createExercise(t *testing.T, app *fiber.App, payload map[string]any) uint {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/exercises", payload, nil)
	expectStatus(t, response, http.StatusOK)
	created := createdResponse{}
	decodeBody(t, response, &created)
	if !created.Success || created.ID == 0 {
		t.Fatalf("unexpected create response: %+v", created)
	}
	return created.ID
}

func benchPressPayload(code string) map[string]any {
	return map[string]any{
		"code":         code,
		"muscle_group": "Chest",
		"name":         "Flat bench press",
		"series":       "S1 R10 F60\nS2 R8 F65",
		"type":         "fixed_series",
	}
}
