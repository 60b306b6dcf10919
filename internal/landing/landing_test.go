package landing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRendersHero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	body := w.Body.String()
	assert.Contains(t, body, "Next AI Application for")
	assert.Contains(t, body, `href="/dashboard"`)
	assert.Contains(t, body, "Get Started")
	assert.Contains(t, body, `id="hero-image"`)
}

func TestScrollScriptUsesThresholdAndClass(t *testing.T) {
	body, err := Render(DefaultPage())
	require.NoError(t, err)
	html := string(body)

	assert.Regexp(t, `var threshold = \s*100\s*;`, html)
	assert.Contains(t, html, `var className = "scrolled";`)
	assert.Contains(t, html, "window.scrollY > threshold")
	assert.Contains(t, html, `window.removeEventListener("scroll", onScroll)`)
	assert.NotContains(t, html, "once: true")
	assert.Contains(t, html, ".hero-image.scrolled")
}

func TestScrollListenerRestoredFromBackForwardCache(t *testing.T) {
	body, err := Render(DefaultPage())
	require.NoError(t, err)
	html := string(body)

	restore := strings.Index(html, `window.addEventListener("pageshow"`)
	require.NotEqual(t, -1, restore)
	tail := html[restore:]
	assert.Contains(t, tail, "event.persisted")
	assert.Contains(t, tail, `window.addEventListener("scroll", onScroll)`)
}
