package list_services

import (
	"net/http"

	"github.com/kparturi/shop-backend/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.GetActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to fetch catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Catalog retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
