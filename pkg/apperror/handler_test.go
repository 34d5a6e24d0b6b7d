package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runHandler(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	HTTPErrorHandler(slog.Default())(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return resp["error"].(map[string]any)
}

func TestHTTPErrorHandler_AppErrorWithDetails(t *testing.T) {
	rec := runHandler(t, http.MethodPost, NewValidation(map[string]string{"contact": "required"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	errObj := decodeError(t, rec)
	if errObj["code"] != "validation_error" {
		t.Errorf("Code = %v, want validation_error", errObj["code"])
	}
	details := errObj["details"].(map[string]any)
	if details["contact"] != "required" {
		t.Errorf("details = %v", details)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := runHandler(t, http.MethodGet, echo.NewHTTPError(http.StatusNotFound, "page not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	errObj := decodeError(t, rec)
	if errObj["code"] != "not_found" {
		t.Errorf("Code = %v, want not_found", errObj["code"])
	}
	if errObj["message"] != "page not found" {
		t.Errorf("Message = %v", errObj["message"])
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	rec := runHandler(t, http.MethodHead, ErrRateLimited)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response should be empty, got %q", rec.Body.String())
	}
}
