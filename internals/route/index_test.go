package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/features/hr/hrtest"
	helper "hrms_backend/internals/helpers"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func testApp(t *testing.T, pingErr error) *fiber.App {
	t.Helper()
	store := hrtest.NewMemoryStore()
	cfg := configs.AppConfig{RequestTimeout: 5 * time.Second}
	return NewApp(cfg, Deps{
		Employees:  store,
		Attendance: store.AttendanceStore(),
		DB:         fakePinger{err: pingErr},
	})
}

func do(t *testing.T, app *fiber.App, method, path string, body any, hdr ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRoot(t *testing.T) {
	app := testApp(t, nil)
	resp := do(t, app, fiber.MethodGet, "/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"HRMS Lite Backend Running 🚀"}`, readBody(t, resp))
}

func TestHealth(t *testing.T) {
	resp := do(t, testApp(t, nil), fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"OK"`)

	resp = do(t, testApp(t, errors.New("dial tcp: refused")), fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"DOWN"`)
}

func TestMetricsEndpoint(t *testing.T) {
	app := testApp(t, nil)
	do(t, app, fiber.MethodGet, "/employees", nil)

	resp := do(t, app, fiber.MethodGet, "/metrics", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "hrms_http_requests_total")
}

func TestRequestIDAndCors(t *testing.T) {
	app := testApp(t, nil)

	resp := do(t, app, fiber.MethodGet, "/employees", nil, "Origin", "https://hr.example.com")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "https://hr.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	resp = do(t, app, fiber.MethodGet, "/employees", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	resp := do(t, testApp(t, nil), fiber.MethodGet, "/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var e helper.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &e))
	assert.False(t, e.Success)
}

// Create, mark, delete, then the attendance history is gone with the employee.
func TestEmployeeLifecycle(t *testing.T) {
	app := testApp(t, nil)

	resp := do(t, app, fiber.MethodPost, "/employees", map[string]string{
		"employee_id": "EMP1", "full_name": "Alice A", "email": "a@x.com", "department": "Eng",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, readBody(t, resp))

	for _, d := range []string{"2024-01-01", "2024-01-02"} {
		resp = do(t, app, fiber.MethodPost, "/attendance", map[string]string{
			"employee_id": "EMP1", "date": d, "status": "Present",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, readBody(t, resp))
	}

	resp = do(t, app, fiber.MethodGet, "/attendance/EMP1/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"employee_id":"EMP1","total_records":2,"present_days":2,"absent_days":0}`, readBody(t, resp))

	resp = do(t, app, fiber.MethodDelete, "/employees/EMP1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, fiber.MethodGet, "/attendance/EMP1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, fiber.MethodPost, "/employees", map[string]string{
		"employee_id": "EMP1", "full_name": "Alice A", "email": "a@x.com", "department": "Eng",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = do(t, app, fiber.MethodGet, "/attendance/EMP1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, readBody(t, resp))
}
