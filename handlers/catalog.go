package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "clinicbook/database/repository/catalog"
	"clinicbook/utils"
)

// CatalogHandler exposes the service and promotion catalog.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServices returns the full procedure catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListPromotions returns promotions; ?active=true narrows to live ones.
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	promotions, err := h.Repo.ListPromotions(c.Request.Context(), activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list promotions", err.Error())
		return
	}
	c.JSON(http.StatusOK, promotions)
}
