package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGenerationCountsOutcomes(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues(OutcomeFailure))
	ObserveGeneration(OutcomeFailure, 10*time.Millisecond)
	after := testutil.ToFloat64(generationsTotal.WithLabelValues(OutcomeFailure))

	if after-before != 1 {
		t.Fatalf("expected failure counter to grow by 1, got %v", after-before)
	}
}

func TestHandlerRendersRegisteredMetrics(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/v1/cover-letters", "200", time.Millisecond)
	ObserveGeneration(OutcomeSuccess, time.Second)

	resp := httptest.NewRecorder()
	Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"careerai_http_request_duration_seconds", "careerai_cover_letter_generations_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}
