package transport

import (
	"net/http"

	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) GetServices(c *gin.Context) {
	services := h.catalogService.Services()

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    services,
		Meta: map[string]interface{}{
			"total": len(services),
		},
	})
}
