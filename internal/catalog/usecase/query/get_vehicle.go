package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// GetVehicleQuery represents the query to get a vehicle by ID
type GetVehicleQuery struct {
	ID uint
}

// GetVehicleHandler handles get vehicle query
type GetVehicleHandler struct {
	catalog domain.CatalogRepository
}

// NewGetVehicleHandler creates a new get vehicle handler
func NewGetVehicleHandler(catalog domain.CatalogRepository) *GetVehicleHandler {
	return &GetVehicleHandler{catalog: catalog}
}

// Handle executes the get vehicle query
func (h *GetVehicleHandler) Handle(query GetVehicleQuery) (*domain.Vehicle, error) {
	if query.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return h.catalog.FindVehicleByID(query.ID)
}
