// Package landing serves the marketing hero page.
package landing

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/server/respond"
)

const (
	// ScrollThreshold is the vertical offset past which the banner tilts flat.
	ScrollThreshold = 100
	// ScrolledClass is toggled on the banner wrapper while past the threshold.
	ScrolledClass = "scrolled"
)

//go:embed templates/hero.html
var templateFS embed.FS

var heroTemplate = template.Must(template.ParseFS(templateFS, "templates/hero.html"))

// Page is the data rendered into the hero template.
type Page struct {
	Title           string
	Headline        string
	HeadlineSecond  string
	Blurb           string
	CTALabel        string
	CTAHref         string
	BannerSrc       string
	ScrollThreshold int
	ScrolledClass   string
}

// DefaultPage returns the hero content shown at the site root.
func DefaultPage() Page {
	return Page{
		Title:          "Next AI",
		Headline:       "Next AI Application for",
		HeadlineSecond: "Practice Purpose.",
		Blurb: "Advance your career with AI-powered tools that help you create a standout resume, " +
			"craft a compelling cover letter, and prepare for interviews with confidence.",
		CTALabel:        "Get Started",
		CTAHref:         "/dashboard",
		BannerSrc:       "/banner.jpeg",
		ScrollThreshold: ScrollThreshold,
		ScrolledClass:   ScrolledClass,
	}
}

// Render writes the page HTML.
func Render(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := heroTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Handler serves the landing page.
type Handler struct {
	Page Page
}

// NewHandler constructs a Handler with the default content.
func NewHandler() *Handler {
	return &Handler{Page: DefaultPage()}
}

// RegisterRoutes attaches the landing route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
}

func (h *Handler) index(c *gin.Context) {
	body, err := Render(h.Page)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render page", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
