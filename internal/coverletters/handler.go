package coverletters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/identity"
	"careerai-backend/internal/shared/server/respond"
	"careerai-backend/internal/users"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters", h.generate)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:id", h.get)
	rg.DELETE("/cover-letters/:id", h.delete)
}

type generateRequest struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generate(c *gin.Context) {
	if _, ok := identity.ExternalIDFromContext(c.Request.Context()); !ok {
		writeError(c, identity.ErrUnauthorized)
		return
	}
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	letter, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("coverLetterId", letter.ID)
	respond.JSON(c, http.StatusCreated, letter)
}

func (h *Handler) list(c *gin.Context) {
	letters, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, letters)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("coverLetterId", id)
	letter, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, letter)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("coverLetterId", id)
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	respond.NoContent(c)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized", nil)
	case errors.Is(err, users.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "User not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Cover letter not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "cover letter request failed", nil)
	}
}
