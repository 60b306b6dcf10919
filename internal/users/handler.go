package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/identity"
	"careerai-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me/profile", h.updateProfile)
}

type profileRequest struct {
	Industry   string   `json:"industry" binding:"required"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	Bio        string   `json:"bio"`
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, user)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	user, err := h.Svc.UpdateProfile(c.Request.Context(), Profile{
		Industry:   req.Industry,
		Experience: req.Experience,
		Skills:     req.Skills,
		Bio:        req.Bio,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, user)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
	}
}
