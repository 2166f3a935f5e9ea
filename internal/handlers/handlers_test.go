package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lambda-http-adapter/internal/config"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(&config.Config{Environment: "test"})
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want %q", body["status"], "healthy")
	}
}

func TestEcho(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantStatus int
		wantInBody string
	}{
		{
			name:       "valid payload is echoed",
			payload:    `{"name":"baguette","count":3}`,
			wantStatus: http.StatusOK,
			wantInBody: `"name":"baguette"`,
		},
		{
			name:       "missing name fails validation",
			payload:    `{"count":3}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: `"validation_errors"`,
		},
		{
			name:       "count over limit fails validation",
			payload:    `{"name":"rye","count":1000}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: `"tag":"lte"`,
		},
		{
			name:       "malformed JSON is rejected",
			payload:    `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantInBody: `"error"`,
		},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/echo", bytes.NewBufferString(tt.payload))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantInBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestGreeting(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/greetings/Maria?lang=es", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Hola, Maria!") {
		t.Errorf("body = %q, want the Spanish greeting", w.Body.String())
	}
}

func TestPixel(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/assets/pixel.png", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want %q", got, "image/png")
	}
	if !bytes.Equal(w.Body.Bytes(), pixelPNG) {
		t.Error("body does not match the embedded image")
	}
}
