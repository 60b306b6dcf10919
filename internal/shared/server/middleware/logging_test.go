package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.Configure(&buf, "info")
	t.Cleanup(func() { telemetry.Configure(os.Stdout, "info") })

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/letters/:id", func(c *gin.Context) {
		c.Set("coverLetterId", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/letters/cl-1", nil)
	req.Header.Set("X-Request-Id", "req-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}

	want := map[string]any{
		"msg":             "request.complete",
		"request_id":      "req-1",
		"method":          "GET",
		"path":            "/letters/cl-1",
		"route":           "/letters/:id",
		"status":          float64(200),
		"cover_letter_id": "cl-1",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("field %s = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Fatalf("missing duration_ms")
	}
	if got := resp.Header().Get("X-Request-Id"); got != "req-1" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}
